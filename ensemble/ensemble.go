package ensemble

import (
	"errors"

	"github.com/cwbudde/algo-rf/stimulus"
	"github.com/cwbudde/algo-rf/tensor"
)

// Errors returned by ensemble functions.
var (
	ErrFilterLength = errors.New("ensemble: filter length must be between 1 and the time extent")
	ErrTimeLength   = errors.New("ensemble: time axis length must match the stimulus time extent")
)

// Iterator produces the spike-triggered ensemble: the stimulus window
// preceding each spike, in spike order. It is single-pass; restart by
// calling STE again. Windows are zero-copy views of the stimulus and must
// not be written through.
type Iterator struct {
	time         []float64
	stim         *tensor.Dense
	spikes       []float64
	filterLength int
	pos          int
	dropped      int
}

// STE returns the lazy spike-triggered ensemble of the stimulus for the
// given spike times. Each spike is matched to the nearest sample of the
// time axis; spikes with fewer than filterLength preceding samples are
// silently skipped. An empty spike set yields an empty sequence.
func STE(time []float64, stim *tensor.Dense, spikes []float64, filterLength int) (*Iterator, error) {
	if len(time) != stim.Lead() {
		return nil, ErrTimeLength
	}
	if filterLength < 1 || filterLength > stim.Lead() {
		return nil, ErrFilterLength
	}

	return &Iterator{
		time:         time,
		stim:         stim,
		spikes:       spikes,
		filterLength: filterLength,
	}, nil
}

// Next returns the window preceding the next qualifying spike, or false
// when the spike set is exhausted.
func (it *Iterator) Next() (*tensor.Dense, bool) {
	for it.pos < len(it.spikes) {
		idx := stimulus.SearchTime(it.time, it.spikes[it.pos])
		it.pos++

		if idx < it.filterLength {
			it.dropped++
			continue
		}

		return it.stim.Window(idx, it.filterLength), true
	}

	return nil, false
}

// Dropped returns the number of spikes skipped so far because they had
// insufficient stimulus history.
func (it *Iterator) Dropped() int {
	return it.dropped
}
