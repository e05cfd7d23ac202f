package filter

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rf/internal/testutil"
	"github.com/cwbudde/algo-rf/tensor"
)

func TestDecomposeRecoversComponents(t *testing.T) {
	const (
		filterLength = 50
		nx, ny       = 10, 10
		noiseStd     = 0.01
	)

	filt, wantSpatial, wantTemporal := testutil.SeparableFilter(filterLength, nx, ny)

	noisy := filt.Clone()
	noise := testutil.GaussianNoise(1, noisy.Len())
	for i := range noisy.Data() {
		noisy.Data()[i] += noise[i] * noiseStd
	}

	spatial, temporal, err := Decompose(noisy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const atol = 0.1
	testutil.RequireSliceNearlyEqual(t, spatial.Data(), wantSpatial.Data(), atol)
	testutil.RequireSliceNearlyEqual(t, temporal, wantTemporal, atol)
}

func TestDecomposeSignConvention(t *testing.T) {
	filt, _, _ := testutil.SeparableFilter(20, 6, 6)

	negated := filt.Clone()
	floats.Scale(-1, negated.Data())

	spatial, temporal, err := Decompose(filt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spatialNeg, temporalNeg, err := Decompose(negated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The spatial peak stays positive; the flip lands on the temporal side.
	testutil.RequireSliceNearlyEqual(t, spatialNeg.Data(), spatial.Data(), 1e-10)
	floats.Scale(-1, temporalNeg)
	testutil.RequireSliceNearlyEqual(t, temporalNeg, temporal, 1e-10)
}

func TestDecomposeNoSpatial(t *testing.T) {
	temporalOnly := tensor.Zeros(10)

	if _, _, err := Decompose(temporalOnly); !errors.Is(err, ErrNoSpatial) {
		t.Errorf("expected ErrNoSpatial, got %v", err)
	}
}

func TestLowRankReconstructsSeparable(t *testing.T) {
	filt, _, _ := testutil.SeparableFilter(30, 8, 8)

	approx, err := LowRank(filt, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A rank-1 filter is reproduced exactly by its rank-1 approximation.
	testutil.RequireSliceNearlyEqual(t, approx.Data(), filt.Data(), 1e-10)
}

func TestLowRankDenoises(t *testing.T) {
	filt, _, _ := testutil.SeparableFilter(30, 8, 8)

	noisy := filt.Clone()
	noise := testutil.GaussianNoise(2, noisy.Len())
	for i := range noisy.Data() {
		noisy.Data()[i] += noise[i] * 0.01
	}

	approx, err := LowRank(noisy, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, approx.Data(), filt.Data(), 0.1)
}

func TestLowRankErrors(t *testing.T) {
	filt, _, _ := testutil.SeparableFilter(30, 8, 8)

	if _, err := LowRank(filt, 0); !errors.Is(err, ErrRank) {
		t.Errorf("expected ErrRank, got %v", err)
	}

	if _, err := LowRank(filt, 31); !errors.Is(err, ErrRank) {
		t.Errorf("expected ErrRank, got %v", err)
	}

	if _, err := LowRank(tensor.Zeros(10), 1); !errors.Is(err, ErrNoSpatial) {
		t.Errorf("expected ErrNoSpatial, got %v", err)
	}
}
