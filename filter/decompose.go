package filter

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-rf/tensor"
)

// Errors returned by filter analysis functions.
var (
	ErrSVD               = errors.New("filter: singular value decomposition failed")
	ErrRank              = errors.New("filter: rank out of range")
	ErrNoSpatial         = errors.New("filter: filter has no spatial axes")
	ErrNotSpatial        = errors.New("filter: expected a 2-D spatial map or a 3-D spatiotemporal filter")
	ErrNotSpatiotemporal = errors.New("filter: filter must have shape (time, x, y)")
	ErrCutoutIndex       = errors.New("filter: cutout index must have exactly two elements")
	ErrCutoutWidth       = errors.New("filter: cutout width must be at least 1")
	ErrDegenerate        = errors.New("filter: spatial map has no positive mass to fit")
	ErrSigma             = errors.New("filter: smoothing sigma must be non-negative")
)

// Decompose separates a spatiotemporal filter into its leading temporal and
// spatial components via singular value decomposition of the
// (time, flattened space) matrix.
//
// The spatial component has unit norm and is reshaped to the filter's
// spatial shape; the temporal component is scaled by the leading singular
// value, so their outer product is the best rank-1 approximation of the
// filter. The inherent sign ambiguity is resolved by flipping both
// components, if needed, so the spatial component's largest-magnitude
// entry is positive.
func Decompose(f *tensor.Dense) (spatial *tensor.Dense, temporal []float64, err error) {
	spatialShape := f.Spatial()
	if len(spatialShape) == 0 {
		return nil, nil, ErrNoSpatial
	}

	nt := f.Lead()
	ns := f.SpatialSize()
	m := mat.NewDense(nt, ns, append([]float64(nil), f.Data()...))

	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return nil, nil, ErrSVD
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s0 := svd.Values(nil)[0]

	space := make([]float64, ns)
	for i := range space {
		space[i] = v.At(i, 0)
	}

	temporal = make([]float64, nt)
	for t := range temporal {
		temporal[t] = u.At(t, 0) * s0
	}

	if space[argAbsMax(space)] < 0 {
		floats.Scale(-1, space)
		floats.Scale(-1, temporal)
	}

	spatial, err = tensor.New(spatialShape, space)
	if err != nil {
		return nil, nil, err
	}

	return spatial, temporal, nil
}

// LowRank reconstructs the best rank-k approximation of a spatiotemporal
// filter from its singular value decomposition, for validation and
// denoising of noisy estimates.
func LowRank(f *tensor.Dense, k int) (*tensor.Dense, error) {
	if len(f.Spatial()) == 0 {
		return nil, ErrNoSpatial
	}

	nt := f.Lead()
	ns := f.SpatialSize()
	maxRank := nt
	if ns < maxRank {
		maxRank = ns
	}
	if k < 1 || k > maxRank {
		return nil, ErrRank
	}

	m := mat.NewDense(nt, ns, append([]float64(nil), f.Data()...))

	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return nil, ErrSVD
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	out := tensor.Zeros(f.Shape()...)
	data := out.Data()
	for t := 0; t < nt; t++ {
		for i := 0; i < ns; i++ {
			var acc float64
			for j := 0; j < k; j++ {
				acc += s[j] * u.At(t, j) * v.At(i, j)
			}
			data[t*ns+i] = acc
		}
	}

	return out, nil
}

// argAbsMax returns the index of the largest-magnitude element, first
// occurrence winning ties.
func argAbsMax(data []float64) int {
	idx := 0
	best := 0.0

	for i, v := range data {
		av := math.Abs(v)
		if av > best {
			best = av
			idx = i
		}
	}

	return idx
}
