package ptable

import (
	"errors"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 118 {
		t.Fatalf("Len = %d, want 118", table.Len())
	}

	elements := table.Elements()
	for i, e := range elements {
		if e.AtomicNumber != i+1 {
			t.Fatalf("element %d has atomic number %d", i, e.AtomicNumber)
		}
		if e.Period < 1 || e.Period > 7 {
			t.Fatalf("%s: period %d", e.Symbol, e.Period)
		}
	}
}

func TestRegularMask(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	mask := table.Regular()
	irregular := 0
	for i, ok := range mask {
		if !ok {
			irregular++
			z := i + 1
			if !(z >= 57 && z <= 71) && !(z >= 89 && z <= 103) {
				t.Fatalf("Z=%d unexpectedly irregular", z)
			}
		}
	}
	if irregular != 30 {
		t.Fatalf("irregular count = %d, want 30", irregular)
	}
}

func TestLookup(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		symbol string
		z      int
		group  int
		period int
	}{
		{"H", 1, 1, 1},
		{"Fe", 26, 8, 4},
		{"Pb", 82, 14, 6},
		{"Og", 118, 18, 7},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			e, err := table.Lookup(tt.symbol)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if e.AtomicNumber != tt.z || e.Group != tt.group || e.Period != tt.period {
				t.Fatalf("got %+v", e)
			}
			byZ, err := table.ByNumber(tt.z)
			if err != nil || byZ != e {
				t.Fatalf("ByNumber(%d) = %+v, %v", tt.z, byZ, err)
			}
		})
	}
}

func TestLookupNotFound(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, sym := range []string{"Xx", "fe", ""} {
		if _, err := table.Lookup(sym); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Lookup(%q): expected ErrNotFound, got %v", sym, err)
		}
	}
	for _, z := range []int{0, -3, 119} {
		if _, err := table.ByNumber(z); !errors.Is(err, ErrNotFound) {
			t.Fatalf("ByNumber(%d): expected ErrNotFound, got %v", z, err)
		}
	}
}

func TestRange(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	siPb := table.Range(14, 82)
	if len(siPb) != 69 || siPb[0].Symbol != "Si" || siPb[len(siPb)-1].Symbol != "Pb" {
		t.Fatalf("Range(14, 82) = %d elements %s..%s", len(siPb), siPb[0].Symbol, siPb[len(siPb)-1].Symbol)
	}
	if got := table.Range(117, 200); len(got) != 2 {
		t.Fatalf("clipped range len = %d, want 2", len(got))
	}
	if got := table.Range(10, 5); got != nil {
		t.Fatalf("inverted range = %v, want nil", got)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"header":   "z,symbol,name,group_id,period\n1,H,Hydrogen,1,1\n",
		"sequence": "atomic_number,symbol,name,group_id,period\n2,He,Helium,18,1\n",
		"group":    "atomic_number,symbol,name,group_id,period\n1,H,Hydrogen,19,1\n",
		"empty":    "atomic_number,symbol,name,group_id,period\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
