package revcorr

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rf/internal/testutil"
	"github.com/cwbudde/algo-rf/tensor"
)

func TestRevcorrErrors(t *testing.T) {
	stim := testutil.NoiseStimulus(1, 10, 2)

	// Response not matching the sliding-window convention.
	if _, err := Revcorr(make([]float64, 10), stim, 2); !errors.Is(err, ErrResponseLength) {
		t.Errorf("expected ErrResponseLength, got %v", err)
	}

	wide := testutil.NoiseStimulus(2, 10, 3)
	if _, err := Revcorr(make([]float64, 10), wide, 2); !errors.Is(err, ErrResponseLength) {
		t.Errorf("expected ErrResponseLength, got %v", err)
	}

	if _, err := Revcorr(make([]float64, 9), stim, 0); !errors.Is(err, ErrFilterLength) {
		t.Errorf("expected ErrFilterLength, got %v", err)
	}

	if _, err := Revcorr(make([]float64, 9), stim, 11); !errors.Is(err, ErrFilterLength) {
		t.Errorf("expected ErrFilterLength, got %v", err)
	}
}

func TestRevcorrMatchesDirect(t *testing.T) {
	const (
		n            = 256
		filterLength = 8
	)

	stim := testutil.NoiseStimulus(3, n)
	response := testutil.GaussianNoise(4, n-filterLength+1)

	got, err := Revcorr(response, stim, filterLength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Direct O(N*L) cross-correlation.
	want := make([]float64, filterLength)
	sdata := stim.Data()
	for tau := 0; tau < filterLength; tau++ {
		for j, r := range response {
			want[tau] += r * sdata[j+tau]
		}
	}

	testutil.RequireSliceNearlyEqual(t, got.Data(), want, 1e-8)
}

func TestRevcorrRecovers1D(t *testing.T) {
	const (
		filterLength = 100
		stimLength   = 10000
	)

	trueFilter := testutil.TemporalFilter(filterLength)
	filt, err := tensor.New([]int{filterLength}, trueFilter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stim := testutil.NoiseStimulus(5, stimLength)

	response, err := Predict(filt, stim)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recovered, err := Revcorr(response, stim, filterLength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := recovered.Data()
	floats.Scale(1/floats.Norm(data, 2), data)

	testutil.RequireSliceNearlyEqual(t, data, trueFilter, 0.1)
}

func TestRevcorrRecovers3D(t *testing.T) {
	const (
		filterLength = 100
		stimLength   = 10000
	)

	trueFilter, _, _ := testutil.SeparableFilter(filterLength, 10, 10)
	stim := testutil.NoiseStimulus(6, stimLength, 10, 10)

	response, err := Predict(trueFilter, stim)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recovered, err := Revcorr(response, stim, filterLength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := recovered.Data()
	floats.Scale(1/floats.Norm(data, 2), data)

	testutil.RequireSliceNearlyEqual(t, data, trueFilter.Data(), 0.1)
}

func TestPredict1D(t *testing.T) {
	filt, err := tensor.New([]int{3}, []float64{1, -1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stim := testutil.NoiseStimulus(7, 20)

	pred, err := Predict(filt, stim)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pred) != 18 {
		t.Fatalf("prediction length = %d, want 18", len(pred))
	}

	sdata := stim.Data()
	want := make([]float64, 18)
	for i := range want {
		want[i] = sdata[i] - sdata[i+1] + 2*sdata[i+2]
	}

	testutil.RequireSliceNearlyEqual(t, pred, want, 1e-12)
}

func TestPredictSpatial(t *testing.T) {
	const (
		filterLength = 4
		n            = 50
		nx, ny       = 3, 2
	)

	filt := testutil.NoiseStimulus(8, filterLength, nx, ny)
	stim := testutil.NoiseStimulus(9, n, nx, ny)

	pred, err := Predict(filt, stim)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pred) != n-filterLength+1 {
		t.Fatalf("prediction length = %d, want %d", len(pred), n-filterLength+1)
	}

	// Naive flattened dot product per window.
	stride := nx * ny
	fdata := filt.Data()
	sdata := stim.Data()
	want := make([]float64, len(pred))
	for i := range want {
		for k, fv := range fdata {
			want[i] += fv * sdata[i*stride+k]
		}
	}

	testutil.RequireSliceNearlyEqual(t, pred, want, 1e-10)
}

func TestPredictErrors(t *testing.T) {
	temporal := testutil.NoiseStimulus(10, 10)
	spatial2 := testutil.NoiseStimulus(11, 10, 2)
	spatial3 := testutil.NoiseStimulus(12, 10, 3)

	if _, err := Predict(temporal, spatial2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}

	if _, err := Predict(spatial2, spatial3); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}

	long := testutil.NoiseStimulus(13, 20)
	if _, err := Predict(long, temporal); !errors.Is(err, ErrFilterLength) {
		t.Errorf("expected ErrFilterLength, got %v", err)
	}
}
