package xrf

import "testing"

func TestAttributeNearestLine(t *testing.T) {
	lines := []EmissionLine{
		{Label: "L3M5", EnergyKeV: 0.705},
		{Label: "KL3", EnergyKeV: 6.4038},
		{Label: "KM3", EnergyKeV: 7.058},
	}
	ps := []Peak{{EnergyKeV: 0.71}, {EnergyKeV: 6.40}, {EnergyKeV: 7.2}, {EnergyKeV: 30}}

	got := Attribute(ps, lines)
	want := []string{"L3M5", "KL3", "KM3", "KM3"}
	for i, label := range want {
		if !got[i].Attributed || got[i].Line.Label != label {
			t.Fatalf("peak %d: %+v, want %s", i, got[i], label)
		}
	}
	if ps[0].Attributed {
		t.Fatal("Attribute modified its input")
	}
}

func TestAttributeTieGoesToFirstLine(t *testing.T) {
	lines := []EmissionLine{{Label: "low", EnergyKeV: 4.5}, {Label: "high", EnergyKeV: 5.5}}

	got := Attribute([]Peak{{EnergyKeV: 5}}, lines)
	if got[0].Line.Label != "low" {
		t.Fatalf("tie attributed to %s, want low", got[0].Line.Label)
	}
}

func TestAttributeWithoutLines(t *testing.T) {
	got := Attribute([]Peak{{EnergyKeV: 5}}, nil)
	if len(got) != 1 || got[0].Attributed {
		t.Fatalf("got %+v, want one unattributed peak", got)
	}
	if Attribute(nil, []EmissionLine{{Label: "KL3"}}) != nil {
		t.Fatal("no peaks should give nil")
	}
}

func TestFindPeaks(t *testing.T) {
	s := Spectrum{
		X: []float64{0, 1, 2, 3, 4, 5, 6},
		Y: []float64{0, 1, 0.2, 0.2005, 0.2, 0.6, 0},
	}

	got := FindPeaks(s, 0.001)
	if len(got) != 2 {
		t.Fatalf("peaks = %+v, want two", got)
	}
	if got[0].EnergyKeV != 1 || got[0].Intensity != 1 || got[1].EnergyKeV != 5 {
		t.Fatalf("unexpected peaks: %+v", got)
	}

	if FindPeaks(Spectrum{}, 0) != nil {
		t.Fatal("empty spectrum should give no peaks")
	}
}

func TestUnionLines(t *testing.T) {
	got := UnionLines(
		[]EmissionLine{{Label: "L3M5", EnergyKeV: 0.7}},
		[]EmissionLine{{Label: "KL3", EnergyKeV: 6.4}, {Label: "L3M5", EnergyKeV: 0.7, Rate: 9}},
	)
	if len(got) != 2 || got[0].Label != "L3M5" || got[0].Rate != 0 || got[1].Label != "KL3" {
		t.Fatalf("UnionLines = %+v", got)
	}
}
