package xrf

import (
	"math"
	"testing"
)

func TestMoseley(t *testing.T) {
	tests := []struct {
		energy float64
		want   float64
		eps    float64
	}{
		{energy: 0, want: 1, eps: 0},
		{energy: 10.2e-3, want: 2, eps: 1e-12},
		{energy: 6.4038, want: 26, eps: 0.1},
		{energy: 8.0478, want: 29, eps: 0.1},
		{energy: 22.1629, want: 47, eps: 1},
	}

	for _, tt := range tests {
		if got := Moseley(tt.energy); math.Abs(got-tt.want) > tt.eps {
			t.Fatalf("Moseley(%v) = %v, want %v", tt.energy, got, tt.want)
		}
	}

	if !math.IsNaN(Moseley(-1)) {
		t.Fatal("Moseley of a negative energy should be NaN")
	}
}

func TestMoseleyMonotonic(t *testing.T) {
	prev := Moseley(0)
	for e := 0.5; e <= 100; e += 0.5 {
		z := Moseley(e)
		if !(z > prev) {
			t.Fatalf("Moseley not increasing at %v keV", e)
		}
		prev = z
	}
}

func TestKAlphaEnergyInvertsMoseley(t *testing.T) {
	for z := 1.0; z <= 92; z++ {
		if got := Moseley(KAlphaEnergy(z)); math.Abs(got-z) > 1e-9 {
			t.Fatalf("Moseley(KAlphaEnergy(%v)) = %v", z, got)
		}
	}

	got := MoseleyAll([]float64{0, 10.2e-3})
	if len(got) != 2 || got[0] != 1 || math.Abs(got[1]-2) > 1e-12 {
		t.Fatalf("MoseleyAll = %v", got)
	}
}
