package filter

import "github.com/cwbudde/algo-rf/tensor"

// Cutout extracts the spatial sub-cube of half-width width around idx,
// spanning the full time axis: rows [c-width, c+width) along each spatial
// axis, clamped at the borders. idx must address the two spatial axes
// only; when nil, the spatial location of the filter peak is used.
func Cutout(f *tensor.Dense, idx []int, width int) (*tensor.Dense, error) {
	shape := f.Shape()
	if len(shape) != 3 {
		return nil, ErrNotSpatiotemporal
	}
	if width < 1 {
		return nil, ErrCutoutWidth
	}

	if idx == nil {
		_, idx, _ = Peak(f)
	} else if len(idx) != 2 {
		return nil, ErrCutoutIndex
	}

	nt, nx, ny := shape[0], shape[1], shape[2]
	x0, x1 := clamp(idx[0]-width, nx), clamp(idx[0]+width, nx)
	y0, y1 := clamp(idx[1]-width, ny), clamp(idx[1]+width, ny)
	if x1 <= x0 || y1 <= y0 {
		return nil, ErrCutoutIndex
	}

	out := tensor.Zeros(nt, x1-x0, y1-y0)
	src := f.Data()
	dst := out.Data()

	p := 0
	for t := 0; t < nt; t++ {
		for x := x0; x < x1; x++ {
			row := (t*nx + x) * ny
			p += copy(dst[p:], src[row+y0:row+y1])
		}
	}

	return out, nil
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}

	return v
}
