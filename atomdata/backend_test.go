package atomdata

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-xrf/ptable"
	"github.com/cwbudde/algo-xrf/xrf"
)

func openBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return b
}

func labels(lines []xrf.EmissionLine) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Label
	}
	return strings.Join(out, ",")
}

func TestOpenCoversSodiumToUranium(t *testing.T) {
	b := openBackend(t)

	for _, e := range b.Table().Elements() {
		want := e.AtomicNumber >= 11 && e.AtomicNumber <= 92
		if got := b.HasData(e.Symbol); got != want {
			t.Fatalf("%s: HasData = %v, want %v", e.Symbol, got, want)
		}
	}
}

func TestExcitationLinesIron(t *testing.T) {
	b := openBackend(t)

	lines, err := b.ExcitationLines("Fe", 20)
	if err != nil {
		t.Fatalf("ExcitationLines: %v", err)
	}
	if got, want := labels(lines), "KL3,KL2,KM3,L3M5,L2M4"; got != want {
		t.Fatalf("labels = %s, want %s", got, want)
	}
	if lines[0].EnergyKeV != 6.4038 {
		t.Fatalf("KL3 energy = %v, want 6.4038", lines[0].EnergyKeV)
	}
	if r := lines[0].Rate / lines[1].Rate; math.Abs(r-2) > 1e-12 {
		t.Fatalf("KL3/KL2 = %v, want 2", r)
	}
	for _, l := range lines {
		if !(l.Rate > 0) {
			t.Fatalf("%s: rate %v not positive", l.Label, l.Rate)
		}
	}
	if lines[2].Rate >= lines[0].Rate {
		t.Fatalf("KM3 rate %v should be below KL3 rate %v", lines[2].Rate, lines[0].Rate)
	}
}

func TestExcitationLinesRespectEdges(t *testing.T) {
	b := openBackend(t)

	tests := []struct {
		name   string
		symbol string
		energy float64
		want   string
	}{
		{name: "above K edge", symbol: "Fe", energy: 7.2, want: "KL3,KL2,KM3,L3M5,L2M4"},
		{name: "below K edge", symbol: "Fe", energy: 7.0, want: "L3M5,L2M4"},
		{name: "between L3 and L2", symbol: "Fe", energy: 0.71, want: "L3M5"},
		{name: "below L3 edge", symbol: "Fe", energy: 0.5, want: ""},
		{name: "zero energy", symbol: "Fe", energy: 0, want: ""},
		{name: "negative energy", symbol: "Fe", energy: -3, want: ""},
		{name: "lead below K edge", symbol: "Pb", energy: 40, want: "L3M5,L2M4"},
		{name: "sodium has no Kbeta", symbol: "Na", energy: 5, want: "KL3,KL2"},
		{name: "silicon has no tabulated L lines", symbol: "Si", energy: 5, want: "KL3,KL2,KM3"},
		{name: "no tabulated data", symbol: "H", energy: 20, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := b.ExcitationLines(tt.symbol, tt.energy)
			if err != nil {
				t.Fatalf("ExcitationLines: %v", err)
			}
			if got := labels(lines); got != tt.want {
				t.Fatalf("labels = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExcitationLinesRateFallsWithEnergy(t *testing.T) {
	b := openBackend(t)

	low, err := b.ExcitationLines("Cu", 10)
	if err != nil {
		t.Fatal(err)
	}
	high, err := b.ExcitationLines("Cu", 40)
	if err != nil {
		t.Fatal(err)
	}
	if !(high[0].Rate < low[0].Rate) {
		t.Fatalf("KL3 rate at 40 keV (%v) should be below rate at 10 keV (%v)", high[0].Rate, low[0].Rate)
	}
}

func TestExcitationLinesUnknownSymbol(t *testing.T) {
	b := openBackend(t)

	for _, symbol := range []string{"Xx", "fe", ""} {
		_, err := b.ExcitationLines(symbol, 20)
		if !errors.Is(err, ptable.ErrNotFound) {
			t.Fatalf("%q: err = %v, want ErrNotFound", symbol, err)
		}
	}
}

func TestEdges(t *testing.T) {
	b := openBackend(t)

	e, err := b.Edges("Cu")
	if err != nil {
		t.Fatalf("Edges: %v", err)
	}
	if e.K != 8.9789 || e.L3 != 0.9327 {
		t.Fatalf("Cu edges = %+v", e)
	}
	if !(e.L2 > e.L3 && e.L2 < e.K) {
		t.Fatalf("L2 edge %v not between L3 and K", e.L2)
	}

	if _, err := b.Edges("He"); !errors.Is(err, ErrNoData) {
		t.Fatalf("He: err = %v, want ErrNoData", err)
	}
	if _, err := b.Edges("Zz"); !errors.Is(err, ptable.ErrNotFound) {
		t.Fatalf("Zz: err = %v, want ErrNotFound", err)
	}
}

func TestMoseleyRecoversAtomicNumber(t *testing.T) {
	b := openBackend(t)

	for _, e := range b.Table().Range(20, 50) {
		lines, err := b.ExcitationLines(e.Symbol, 60)
		if err != nil {
			t.Fatal(err)
		}
		z := xrf.Moseley(lines[0].EnergyKeV)
		if math.Abs(z-float64(e.AtomicNumber)) > 1 {
			t.Fatalf("%s: Moseley(%v) = %v, want about %d", e.Symbol, lines[0].EnergyKeV, z, e.AtomicNumber)
		}
	}
}

func TestYields(t *testing.T) {
	if w := KYield(26); math.Abs(w-0.347) > 0.01 {
		t.Fatalf("KYield(Fe) = %v, want about 0.35", w)
	}
	prev := 0.0
	for z := 11; z <= 92; z++ {
		k, l := KYield(z), LYield(z)
		if !(k > prev && k < 1) {
			t.Fatalf("KYield(%d) = %v not increasing in (0,1)", z, k)
		}
		if !(l > 0 && l < k) {
			t.Fatalf("LYield(%d) = %v not in (0, KYield)", z, l)
		}
		prev = k
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	table, err := ptable.Load()
	if err != nil {
		t.Fatal(err)
	}

	const head = "atomic_number,symbol,k_edge,l3_edge,ka1,ka2,kb1,la1,lb1\n"
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "bad header", data: "z,symbol,k_edge,l3_edge,ka1,ka2,kb1,la1,lb1\n"},
		{name: "no rows", data: head},
		{name: "symbol mismatch", data: head + "26,Co,7.112,0.7069,6.4038,6.3908,7.058,0.705,0.7185\n"},
		{name: "unknown number", data: head + "200,Fe,7.112,0.7069,6.4038,6.3908,7.058,0.705,0.7185\n"},
		{name: "duplicate", data: head + "26,Fe,7.112,0.7069,6.4038,6.3908,7.058,,\n26,Fe,7.112,0.7069,6.4038,6.3908,7.058,,\n"},
		{name: "bad number", data: head + "26,Fe,seven,0.7069,6.4038,6.3908,7.058,,\n"},
		{name: "line above edge", data: head + "26,Fe,7.0,0.7069,6.4038,6.3908,7.058,,\n"},
		{name: "half L pair", data: head + "26,Fe,7.112,0.7069,6.4038,6.3908,7.058,0.705,\n"},
		{name: "missing K", data: head + "26,Fe,7.112,0.7069,,6.3908,7.058,,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse(strings.NewReader(tt.data), table); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
