package stimulus

import "github.com/cwbudde/algo-rf/tensor"

// Upsample repeats every stimulus frame factor times along the time axis,
// returning a freshly allocated stimulus with factor times as many samples.
func Upsample(stim *tensor.Dense, factor int) (*tensor.Dense, error) {
	if factor < 1 {
		return nil, ErrFactor
	}

	stride := stim.SpatialSize()
	shape := append([]int{stim.Lead() * factor}, stim.Spatial()...)
	out := tensor.Zeros(shape...)

	src := stim.Data()
	dst := out.Data()
	p := 0
	for t := 0; t < stim.Lead(); t++ {
		frame := src[t*stride : (t+1)*stride]
		for r := 0; r < factor; r++ {
			p += copy(dst[p:], frame)
		}
	}

	return out, nil
}

// Downsample keeps every factor-th frame of the stimulus, starting with the
// first, returning a freshly allocated stimulus.
func Downsample(stim *tensor.Dense, factor int) (*tensor.Dense, error) {
	if factor < 1 {
		return nil, ErrFactor
	}

	n := (stim.Lead() + factor - 1) / factor
	stride := stim.SpatialSize()
	shape := append([]int{n}, stim.Spatial()...)
	out := tensor.Zeros(shape...)

	src := stim.Data()
	dst := out.Data()
	p := 0
	for t := 0; t < stim.Lead(); t += factor {
		p += copy(dst[p:], src[t*stride:(t+1)*stride])
	}

	return out, nil
}
