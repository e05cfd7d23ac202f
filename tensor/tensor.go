package tensor

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by tensor constructors.
var (
	ErrShape    = errors.New("tensor: shape must have at least one positive dimension")
	ErrDataSize = errors.New("tensor: data length does not match shape")
)

// Dense is a dense row-major float64 array whose leading axis is time.
type Dense struct {
	shape []int
	data  []float64
}

// Size returns the number of elements addressed by shape.
func Size(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}

	return n
}

func validShape(shape []int) bool {
	if len(shape) == 0 {
		return false
	}
	for _, s := range shape {
		if s <= 0 {
			return false
		}
	}

	return true
}

// New wraps data in a Dense with the given shape. The data slice is used
// directly, without copying; the shape slice is copied.
func New(shape []int, data []float64) (*Dense, error) {
	if !validShape(shape) {
		return nil, ErrShape
	}
	if len(data) != Size(shape) {
		return nil, ErrDataSize
	}

	return &Dense{shape: append([]int(nil), shape...), data: data}, nil
}

// Zeros returns a zero-filled Dense. It panics on an invalid shape, since
// callers construct shapes programmatically.
func Zeros(shape ...int) *Dense {
	if !validShape(shape) {
		panic(fmt.Sprintf("tensor: invalid shape %v", shape))
	}

	return &Dense{
		shape: append([]int(nil), shape...),
		data:  make([]float64, Size(shape)),
	}
}

// NaN returns a NaN-filled Dense, the "undefined statistic" sentinel.
// It panics on an invalid shape.
func NaN(shape ...int) *Dense {
	d := Zeros(shape...)
	for i := range d.data {
		d.data[i] = math.NaN()
	}

	return d
}

// Shape returns a copy of the array shape.
func (d *Dense) Shape() []int {
	return append([]int(nil), d.shape...)
}

// Lead returns the length of the leading (time) axis.
func (d *Dense) Lead() int {
	return d.shape[0]
}

// Spatial returns a copy of the trailing (spatial) shape. It is empty for a
// purely temporal array.
func (d *Dense) Spatial() []int {
	return append([]int(nil), d.shape[1:]...)
}

// SpatialSize returns the number of spatial locations per time sample.
func (d *Dense) SpatialSize() int {
	return Size(d.shape[1:])
}

// Len returns the total number of elements.
func (d *Dense) Len() int {
	return len(d.data)
}

// Data returns the backing slice in row-major order. Mutating it mutates
// the array.
func (d *Dense) Data() []float64 {
	return d.data
}

// At returns the element at the given multi-index. It panics if the index
// rank or any component is out of range.
func (d *Dense) At(idx ...int) float64 {
	if len(idx) != len(d.shape) {
		panic(fmt.Sprintf("tensor: index rank %d does not match shape rank %d", len(idx), len(d.shape)))
	}
	flat := 0
	for i, ix := range idx {
		if ix < 0 || ix >= d.shape[i] {
			panic(fmt.Sprintf("tensor: index %v out of range for shape %v", idx, d.shape))
		}
		flat = flat*d.shape[i] + ix
	}

	return d.data[flat]
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	return &Dense{
		shape: append([]int(nil), d.shape...),
		data:  append([]float64(nil), d.data...),
	}
}

// Window returns the block of length consecutive time samples ending at
// (and excluding) row end, as a zero-copy view sharing the backing slice.
// Callers must treat the view as read-only. It panics if the row range is
// out of bounds.
func (d *Dense) Window(end, length int) *Dense {
	if length < 1 || end < length || end > d.shape[0] {
		panic(fmt.Sprintf("tensor: window [%d, %d) out of range for %d rows", end-length, end, d.shape[0]))
	}
	stride := d.SpatialSize()
	shape := append([]int{length}, d.shape[1:]...)

	return &Dense{shape: shape, data: d.data[(end-length)*stride : end*stride]}
}

// Reshape returns a view of the same data with a new shape of equal size.
func (d *Dense) Reshape(shape ...int) (*Dense, error) {
	if !validShape(shape) {
		return nil, ErrShape
	}
	if Size(shape) != len(d.data) {
		return nil, ErrDataSize
	}

	return &Dense{shape: append([]int(nil), shape...), data: d.data}, nil
}

// SameShape reports whether a and b have identical shapes.
func SameShape(a, b *Dense) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}

	return true
}

// Unravel converts a row-major flat index into a multi-index for shape.
func Unravel(flat int, shape []int) []int {
	idx := make([]int, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		idx[i] = flat % shape[i]
		flat /= shape[i]
	}

	return idx
}
