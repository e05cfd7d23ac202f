package revcorr

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-rf/tensor"
)

// Errors returned by reverse-correlation functions.
var (
	ErrFilterLength   = errors.New("revcorr: filter length must be between 1 and the stimulus time extent")
	ErrResponseLength = errors.New("revcorr: response length must equal the stimulus time extent minus filter length plus one")
	ErrShapeMismatch  = errors.New("revcorr: filter and stimulus spatial shapes differ")
)

// Revcorr estimates a linear filter of the given length by cross-correlating
// the response against the stimulus, independently for each spatial
// location. The correlation is computed in the Fourier domain, which is
// O(N log N) in the series length instead of O(N*filterLength).
//
// The response follows the sliding-window convention of Predict: its length
// must be stim.Lead() - filterLength + 1. The estimate is unnormalized;
// callers typically rescale it, for example by its norm.
func Revcorr(response []float64, stim *tensor.Dense, filterLength int) (*tensor.Dense, error) {
	n := stim.Lead()
	if filterLength < 1 || filterLength > n {
		return nil, ErrFilterLength
	}
	if len(response) != n-filterLength+1 {
		return nil, ErrResponseLength
	}

	nspatial := stim.SpatialSize()
	fftSize := nextPowerOf2(n + filterLength)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("revcorr: failed to create FFT plan: %w", err)
	}

	// The response spectrum is shared across all spatial locations.
	buf := make([]complex128, fftSize)
	for i, v := range response {
		buf[i] = complex(v, 0)
	}

	respFreq := make([]complex128, fftSize)
	if err := plan.Forward(respFreq, buf); err != nil {
		return nil, fmt.Errorf("revcorr: forward FFT failed: %w", err)
	}

	shape := append([]int{filterLength}, stim.Spatial()...)
	filt := tensor.Zeros(shape...)
	fdata := filt.Data()

	stimFreq := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	sdata := stim.Data()

	for s := 0; s < nspatial; s++ {
		for i := range buf {
			buf[i] = 0
		}
		for t := 0; t < n; t++ {
			buf[t] = complex(sdata[t*nspatial+s], 0)
		}

		if err := plan.Forward(stimFreq, buf); err != nil {
			return nil, fmt.Errorf("revcorr: forward FFT failed: %w", err)
		}

		// Multiply the stimulus spectrum by the conjugate response
		// spectrum; the inverse transform at lag tau is then
		// sum_j response[j] * stimulus[j+tau].
		for k := range stimFreq {
			r := respFreq[k]
			stimFreq[k] *= complex(real(r), -imag(r))
		}

		if err := plan.Inverse(out, stimFreq); err != nil {
			return nil, fmt.Errorf("revcorr: inverse FFT failed: %w", err)
		}

		for tau := 0; tau < filterLength; tau++ {
			fdata[tau*nspatial+s] = real(out[tau])
		}
	}

	return filt, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
