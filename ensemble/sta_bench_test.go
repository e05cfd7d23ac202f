package ensemble

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-rf/internal/testutil"
)

func BenchmarkSTA(b *testing.B) {
	const (
		npoints      = 100000
		nspikes      = 5000
		filterLength = 50
	)

	stim := testutil.NoiseStimulus(1, npoints, 4, 4)
	tax := make([]float64, npoints)
	for i := range tax {
		tax[i] = float64(i)
	}

	rng := rand.New(rand.NewSource(2))
	spikes := make([]float64, nspikes)
	for i := range spikes {
		spikes[i] = float64(rng.Intn(npoints))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := STA(tax, stim, spikes, filterLength); err != nil {
			b.Fatal(err)
		}
	}
}
