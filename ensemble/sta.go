package ensemble

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rf/stimulus"
	"github.com/cwbudde/algo-rf/tensor"
)

// STA computes the spike-triggered average: the elementwise mean of the
// ensemble windows, normalized by the number of valid (non-skipped)
// windows. It returns the average filter together with its relative time
// axis 0 .. filterLength-1.
//
// When no spike has sufficient history the average is undefined and the
// returned filter is filled with NaN.
func STA(time []float64, stim *tensor.Dense, spikes []float64, filterLength int) (*tensor.Dense, []float64, error) {
	it, err := STE(time, stim, spikes, filterLength)
	if err != nil {
		return nil, nil, err
	}

	shape := append([]int{filterLength}, stim.Spatial()...)
	sum := tensor.Zeros(shape...)
	count := 0

	for {
		w, ok := it.Next()
		if !ok {
			break
		}

		vecmath.AddBlockInPlace(sum.Data(), w.Data())
		count++
	}

	tax := stimulus.RelativeTime(filterLength)
	if count == 0 {
		return tensor.NaN(shape...), tax, nil
	}

	vecmath.ScaleBlock(sum.Data(), sum.Data(), 1/float64(count))

	return sum, tax, nil
}
