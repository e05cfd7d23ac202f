// Package stimulus provides the windowing provider and time-axis helpers
// used by the estimation packages.
//
// The central primitive is Slice, a single-pass iterator over all
// fixed-length trailing windows of a stimulus. Windows with insufficient
// history are never produced; the first window ends at the window length
// itself. The iterator is restarted by calling Slice again.
package stimulus
