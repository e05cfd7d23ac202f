package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-rf/tensor"
)

// GaussianNoise returns standard normal samples with a fixed seed for
// reproducibility.
func GaussianNoise(seed int64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, length)
	for i := range out {
		out[i] = rng.NormFloat64()
	}

	return out
}

// NoiseStimulus returns a white-noise stimulus with the given shape.
func NoiseStimulus(seed int64, shape ...int) *tensor.Dense {
	d := tensor.Zeros(shape...)
	copy(d.Data(), GaussianNoise(seed, d.Len()))

	return d
}

// TemporalFilter returns a unit-norm biphasic temporal kernel of length n:
// an early positive lobe followed by a shallower negative one, the
// canonical shape of a retinal temporal filter.
func TemporalFilter(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := float64(i) / float64(n-1)
		a := (x - 0.25) / 0.08
		b := (x - 0.55) / 0.16
		out[i] = math.Exp(-a*a) - 0.4*math.Exp(-b*b)
	}

	norm := 0.0
	for _, v := range out {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	for i := range out {
		out[i] /= norm
	}

	return out
}

// SpatialGaussian returns a unit-norm nx by ny Gaussian bump with the given
// sigma, centred in the map.
func SpatialGaussian(nx, ny int, sigma float64) *tensor.Dense {
	d := tensor.Zeros(nx, ny)
	data := d.Data()
	cx := float64(nx-1) / 2
	cy := float64(ny-1) / 2

	norm := 0.0
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			gx := (float64(x) - cx) / sigma
			gy := (float64(y) - cy) / sigma
			v := math.Exp(-0.5 * (gx*gx + gy*gy))
			data[x*ny+y] = v
			norm += v * v
		}
	}

	norm = math.Sqrt(norm)
	for i := range data {
		data[i] /= norm
	}

	return d
}

// SeparableFilter builds a rank-1 spatiotemporal filter as the outer
// product of a unit-norm biphasic temporal kernel and a unit-norm spatial
// Gaussian with unit sigma. It returns the filter along with its two
// components.
func SeparableFilter(filterLength, nx, ny int) (filt, spatial *tensor.Dense, temporal []float64) {
	temporal = TemporalFilter(filterLength)
	spatial = SpatialGaussian(nx, ny, 1)

	filt = tensor.Zeros(filterLength, nx, ny)
	fdata := filt.Data()
	sdata := spatial.Data()
	ns := len(sdata)
	for t, tv := range temporal {
		for i, sv := range sdata {
			fdata[t*ns+i] = tv * sv
		}
	}

	return filt, spatial, temporal
}
