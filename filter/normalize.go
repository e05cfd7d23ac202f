package filter

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rf/tensor"
)

// NormalizeSpatial brings a spatial component to a canonical orientation:
// the mean is removed and the sign is flipped, if necessary, so the
// largest-magnitude feature is positive. The overall magnitude is left
// untouched; callers that need a unit component divide by the norm.
func NormalizeSpatial(s *tensor.Dense) *tensor.Dense {
	out := s.Clone()
	data := out.Data()

	mean := floats.Sum(data) / float64(len(data))
	for i := range data {
		data[i] -= mean
	}

	if data[argAbsMax(data)] < 0 {
		floats.Scale(-1, data)
	}

	return out
}
