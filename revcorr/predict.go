package revcorr

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rf/stimulus"
	"github.com/cwbudde/algo-rf/tensor"
)

// Predict applies a linear filter to a stimulus: a window of the filter's
// time extent slides along the stimulus and each window is reduced to the
// dot product with the filter. The output has one sample per valid window,
// stim.Lead() - filt.Lead() + 1 in total.
func Predict(filt, stim *tensor.Dense) ([]float64, error) {
	if !slices.Equal(filt.Spatial(), stim.Spatial()) {
		return nil, ErrShapeMismatch
	}
	if filt.Lead() > stim.Lead() {
		return nil, ErrFilterLength
	}

	windows, err := stimulus.Slice(stim, filt.Lead())
	if err != nil {
		return nil, err
	}

	pred := make([]float64, 0, windows.Len())
	fdata := filt.Data()

	for {
		w, ok := windows.Next()
		if !ok {
			break
		}

		pred = append(pred, floats.Dot(fdata, w.Data()))
	}

	return pred, nil
}
