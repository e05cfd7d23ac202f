// Package tensor provides the dense row-major array type shared by the
// receptive-field estimation packages.
//
// A Dense always has time as its leading axis; any remaining axes are
// spatial. Because the layout is row-major, a fixed-length window of
// consecutive time samples is a contiguous block of the backing slice, so
// window extraction is a zero-copy view.
package tensor
