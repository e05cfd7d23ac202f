package stimulus

import "sort"

// SearchTime returns the index of the sample in time nearest to t.
// time must be strictly increasing; ties round toward the earlier sample.
func SearchTime(time []float64, t float64) int {
	i := sort.SearchFloat64s(time, t)
	if i == 0 {
		return 0
	}
	if i == len(time) {
		return len(time) - 1
	}
	if t-time[i-1] <= time[i]-t {
		return i - 1
	}

	return i
}

// RelativeTime returns the relative time axis 0, 1, ..., filterLength-1
// associated with an estimated filter.
func RelativeTime(filterLength int) []float64 {
	tax := make([]float64, filterLength)
	for i := range tax {
		tax[i] = float64(i)
	}

	return tax
}
