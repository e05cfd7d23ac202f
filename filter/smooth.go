package filter

import (
	"math"

	"github.com/cwbudde/algo-rf/tensor"
)

// Option configures Smooth.
type Option func(*config)

type config struct {
	temporalSigma float64
	spatialSigma  float64
}

func defaultConfig() config {
	return config{temporalSigma: 1, spatialSigma: 0.5}
}

// WithTemporalSigma sets the Gaussian sigma applied along the time axis.
// A sigma of zero disables temporal smoothing.
func WithTemporalSigma(v float64) Option {
	return func(c *config) {
		c.temporalSigma = v
	}
}

// WithSpatialSigma sets the Gaussian sigma applied along each spatial axis.
// A sigma of zero disables spatial smoothing.
func WithSpatialSigma(v float64) Option {
	return func(c *config) {
		c.spatialSigma = v
	}
}

// Smooth applies separable Gaussian smoothing to a filter, axis by axis,
// with reflected boundaries. Defaults: temporal sigma 1, spatial sigma 0.5.
func Smooth(f *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.temporalSigma < 0 || cfg.spatialSigma < 0 {
		return nil, ErrSigma
	}

	out := f.Clone()
	shape := f.Shape()

	for axis := range shape {
		sigma := cfg.spatialSigma
		if axis == 0 {
			sigma = cfg.temporalSigma
		}
		if sigma == 0 {
			continue
		}

		smoothAxis(out, axis, gaussKernel(sigma))
	}

	return out, nil
}

// gaussKernel returns a normalized Gaussian kernel truncated at 4 sigma.
func gaussKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	if radius < 1 {
		radius = 1
	}

	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		x := float64(i-radius) / sigma
		kernel[i] = math.Exp(-0.5 * x * x)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// smoothAxis convolves every line of d along the given axis with kernel,
// in place, reflecting at the boundaries.
func smoothAxis(d *tensor.Dense, axis int, kernel []float64) {
	shape := d.Shape()
	n := shape[axis]
	radius := len(kernel) / 2

	inner := 1
	for _, s := range shape[axis+1:] {
		inner *= s
	}
	outer := d.Len() / (n * inner)

	data := d.Data()
	line := make([]float64, n)

	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*n*inner + i

			for k := 0; k < n; k++ {
				line[k] = data[base+k*inner]
			}

			for k := 0; k < n; k++ {
				var acc float64
				for j, kv := range kernel {
					acc += kv * line[reflect(k+j-radius, n)]
				}
				data[base+k*inner] = acc
			}
		}
	}
}

// reflect maps an out-of-range index into [0, n) by mirroring about the
// edge centers, matching the usual image-processing reflect mode.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}

	return i
}
