package filter

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/cwbudde/algo-rf/tensor"
)

// Gaussian2D describes an axis-aligned two-dimensional Gaussian profile
// with a constant offset, fitted to a spatial receptive-field map.
type Gaussian2D struct {
	Amplitude float64
	Offset    float64
	CenterX   float64 // in pixels, along the first spatial axis
	CenterY   float64 // in pixels, along the second spatial axis
	SigmaX    float64
	SigmaY    float64
}

// RFSize estimates the receptive-field size along each spatial axis by
// fitting a 2-D Gaussian to the sign-normalized spatial component. Sizes
// are reported as three standard deviations of the fitted Gaussian,
// converted to physical units by the pixel spacings dx and dy.
//
// f may be a 2-D spatial map or a 3-D spatiotemporal filter; in the latter
// case the spatial component is obtained by Decompose.
func RFSize(f *tensor.Dense, dx, dy float64) (xsize, ysize float64, err error) {
	var spatial *tensor.Dense

	switch len(f.Shape()) {
	case 2:
		spatial = f
	case 3:
		spatial, _, err = Decompose(f)
		if err != nil {
			return 0, 0, err
		}
	default:
		return 0, 0, ErrNotSpatial
	}

	g, err := FitGaussian(NormalizeSpatial(spatial))
	if err != nil {
		return 0, 0, err
	}

	return 3 * g.SigmaX * dx, 3 * g.SigmaY * dy, nil
}

// FitGaussian fits an axis-aligned 2-D Gaussian with a constant offset to
// a spatial map. The fit is initialized from the moments of the
// positive-clipped map and refined by Nelder-Mead least squares; if the
// refinement fails, the moment estimate is returned.
func FitGaussian(s *tensor.Dense) (Gaussian2D, error) {
	shape := s.Shape()
	if len(shape) != 2 {
		return Gaussian2D{}, ErrNotSpatial
	}

	nx, ny := shape[0], shape[1]
	data := s.Data()

	// Moments of the positive part give the center of mass and per-axis
	// spread.
	var total, cx, cy float64
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			w := data[x*ny+y]
			if w <= 0 {
				continue
			}
			total += w
			cx += w * float64(x)
			cy += w * float64(y)
		}
	}
	if total <= 0 {
		return Gaussian2D{}, ErrDegenerate
	}
	cx /= total
	cy /= total

	var vx, vy float64
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			w := data[x*ny+y]
			if w <= 0 {
				continue
			}
			ex := float64(x) - cx
			ey := float64(y) - cy
			vx += w * ex * ex
			vy += w * ey * ey
		}
	}
	sx := math.Sqrt(vx / total)
	sy := math.Sqrt(vy / total)
	if sx == 0 {
		sx = 0.5
	}
	if sy == 0 {
		sy = 0.5
	}

	initial := Gaussian2D{
		Amplitude: data[argAbsMax(data)],
		CenterX:   cx,
		CenterY:   cy,
		SigmaX:    sx,
		SigmaY:    sy,
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			a, mx, my, px, py, off := p[0], p[1], p[2], p[3], p[4], p[5]
			if px == 0 || py == 0 {
				return math.Inf(1)
			}

			var sse float64
			for x := 0; x < nx; x++ {
				for y := 0; y < ny; y++ {
					ex := (float64(x) - mx) / px
					ey := (float64(y) - my) / py
					r := a*math.Exp(-0.5*(ex*ex+ey*ey)) + off - data[x*ny+y]
					sse += r * r
				}
			}

			return sse
		},
	}

	p0 := []float64{initial.Amplitude, initial.CenterX, initial.CenterY, initial.SigmaX, initial.SigmaY, 0}
	result, err := optimize.Minimize(problem, p0, nil, &optimize.NelderMead{})
	if err != nil || result == nil || !finite(result.X) {
		return initial, nil
	}

	p := result.X

	return Gaussian2D{
		Amplitude: p[0],
		CenterX:   p[1],
		CenterY:   p[2],
		SigmaX:    math.Abs(p[3]),
		SigmaY:    math.Abs(p[4]),
		Offset:    p[5],
	}, nil
}

func finite(p []float64) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
