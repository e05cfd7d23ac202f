package ensemble

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-rf/tensor"
)

// STC computes the spike-triggered covariance: the sample covariance
// (n-1 normalization) of the flattened, mean-subtracted ensemble windows.
// The mean subtracted is the column mean of the ensemble, which is the STA.
//
// The result is a symmetric matrix of order filterLength times the number
// of spatial locations. With fewer than two valid windows the covariance is
// undefined and every entry is NaN, mirroring the STA convention.
func STC(time []float64, stim *tensor.Dense, spikes []float64, filterLength int) (*mat.SymDense, error) {
	it, err := STE(time, stim, spikes, filterLength)
	if err != nil {
		return nil, err
	}

	dim := filterLength * stim.SpatialSize()

	var rows []float64
	n := 0
	for {
		w, ok := it.Next()
		if !ok {
			break
		}

		rows = append(rows, w.Data()...)
		n++
	}

	if n <= 1 {
		nan := make([]float64, dim*dim)
		for i := range nan {
			nan[i] = math.NaN()
		}

		return mat.NewSymDense(dim, nan), nil
	}

	x := mat.NewDense(n, dim, rows)

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)

	return &cov, nil
}
