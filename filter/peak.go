package filter

import "github.com/cwbudde/algo-rf/tensor"

// Peak locates the entry with the largest absolute value in the filter.
// It returns the row-major flat index together with its decomposed spatial
// and temporal sub-indices. Ties break toward the first occurrence in
// row-major order.
func Peak(f *tensor.Dense) (flat int, space []int, timeIdx int) {
	flat = argAbsMax(f.Data())
	ns := f.SpatialSize()
	timeIdx = flat / ns
	space = tensor.Unravel(flat%ns, f.Spatial())

	return flat, space, timeIdx
}
