// Package testutil holds assertions and fixtures for spectrum tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). The worst sample is
// reported.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	diff, at, err := MaxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if diff > eps {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", at, got[at], want[at], diff, eps)
	}
}

// RequireIntensities fails t unless every sample is finite and not
// negative.
func RequireIntensities(t *testing.T, y []float64) {
	t.Helper()
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			t.Fatalf("index %d: invalid intensity %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest absolute difference between a and b and
// the index where it occurs.
func MaxAbsDiff(a, b []float64) (float64, int, error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("length mismatch: got %d, want %d", len(a), len(b))
	}
	worst, at := 0.0, 0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > worst {
			worst, at = d, i
		}
	}
	return worst, at, nil
}
