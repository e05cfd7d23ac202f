package stimulus

import (
	"errors"

	"github.com/cwbudde/algo-rf/tensor"
)

// Errors returned by stimulus functions.
var (
	ErrWindowLength = errors.New("stimulus: window length must be between 1 and the time extent")
	ErrFactor       = errors.New("stimulus: resampling factor must be at least 1")
)

// Windows is a single-pass iterator over the fixed-length trailing windows
// of a stimulus, oldest window first.
type Windows struct {
	stim   *tensor.Dense
	length int
	end    int // row index one past the current window
}

// Slice returns an iterator over the stim.Lead()-length+1 windows of the
// given length. Each window is a zero-copy view of the stimulus rows and
// must not be written through.
func Slice(stim *tensor.Dense, length int) (*Windows, error) {
	if length < 1 || length > stim.Lead() {
		return nil, ErrWindowLength
	}

	return &Windows{stim: stim, length: length, end: length}, nil
}

// Len returns the total number of windows the iterator yields.
func (w *Windows) Len() int {
	return w.stim.Lead() - w.length + 1
}

// Next returns the next window, or false when the sequence is exhausted.
func (w *Windows) Next() (*tensor.Dense, bool) {
	if w.end > w.stim.Lead() {
		return nil, false
	}

	win := w.stim.Window(w.end, w.length)
	w.end++

	return win, true
}
