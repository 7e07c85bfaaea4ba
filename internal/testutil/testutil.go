// Package testutil provides deterministic trace generators and tolerance
// helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"
)

// SineCycles generates a sine covering exactly the given number of whole
// periods over length samples. Whole periods keep the DC bin at zero; note
// the last sample is sin(-2*pi*cycles/length), not zero, so round-trip
// comparisons must account for endpoint detrending.
func SineCycles(length, cycles int, amplitude float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*float64(cycles)*float64(i)/float64(length))
	}

	return out
}

// NoiseTrace generates seeded white noise, reproducible per seed.
func NoiseTrace(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// MaxAbsDiff returns the maximum absolute elementwise difference between two
// equally long slices.
func MaxAbsDiff(t *testing.T, a, b []float64) float64 {
	t.Helper()

	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}

	var maxDiff float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff
}

// RequireFinite fails t if any element is NaN or infinite.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
