package ptable

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed data/elements.csv
var elementsCSV []byte

var header = []string{"atomic_number", "symbol", "name", "group_id", "period"}

// Element is one row of the periodic table.
type Element struct {
	AtomicNumber int
	Symbol       string
	Name         string
	Group        int // 0 for lanthanides and actinides
	Period       int
}

// Regular reports whether the element sits in the main 18-column block.
func (e Element) Regular() bool {
	return e.Group > 0
}

// Table is an immutable, atomic-number ordered periodic table.
type Table struct {
	elements []Element
	bySymbol map[string]int
}

// Load parses the embedded element table.
func Load() (*Table, error) {
	return Parse(bytes.NewReader(elementsCSV))
}

// Parse reads a table in the embedded CSV layout from r. Rows must be
// ordered by atomic number starting at 1.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)

	head, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("ptable: failed to read header: %w", err)
	}
	for i, name := range header {
		if strings.TrimSpace(head[i]) != name {
			return nil, fmt.Errorf("ptable: unexpected column %d: %q, want %q", i, head[i], name)
		}
	}

	t := &Table{bySymbol: make(map[string]int)}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ptable: %w", err)
		}

		e, err := parseRow(rec)
		if err != nil {
			return nil, err
		}
		if e.AtomicNumber != len(t.elements)+1 {
			return nil, fmt.Errorf("ptable: atomic number %d out of sequence at row %d", e.AtomicNumber, len(t.elements)+1)
		}
		if _, dup := t.bySymbol[e.Symbol]; dup {
			return nil, fmt.Errorf("ptable: duplicate symbol %q", e.Symbol)
		}

		t.bySymbol[e.Symbol] = len(t.elements)
		t.elements = append(t.elements, e)
	}

	if len(t.elements) == 0 {
		return nil, fmt.Errorf("ptable: empty table")
	}

	return t, nil
}

func parseRow(rec []string) (Element, error) {
	z, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return Element{}, fmt.Errorf("ptable: atomic number %q: %w", rec[0], err)
	}

	group := 0
	if g := strings.TrimSpace(rec[3]); g != "" {
		group, err = strconv.Atoi(g)
		if err != nil {
			return Element{}, fmt.Errorf("ptable: group of Z=%d %q: %w", z, g, err)
		}
		if group < 1 || group > 18 {
			return Element{}, fmt.Errorf("ptable: group of Z=%d must be in [1,18]: %d", z, group)
		}
	}

	period, err := strconv.Atoi(strings.TrimSpace(rec[4]))
	if err != nil {
		return Element{}, fmt.Errorf("ptable: period of Z=%d %q: %w", z, rec[4], err)
	}

	return Element{
		AtomicNumber: z,
		Symbol:       strings.TrimSpace(rec[1]),
		Name:         strings.TrimSpace(rec[2]),
		Group:        group,
		Period:       period,
	}, nil
}

// Len returns the number of elements.
func (t *Table) Len() int { return len(t.elements) }

// Elements returns a copy of all elements ordered by atomic number.
func (t *Table) Elements() []Element {
	out := make([]Element, len(t.elements))
	copy(out, t.elements)
	return out
}

// Regular returns a mask aligned with Elements that is true for main-block
// elements.
func (t *Table) Regular() []bool {
	mask := make([]bool, len(t.elements))
	for i, e := range t.elements {
		mask[i] = e.Regular()
	}
	return mask
}

// Symbols returns all chemical symbols ordered by atomic number.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.elements))
	for i, e := range t.elements {
		out[i] = e.Symbol
	}
	return out
}

// Lookup returns the element with the given chemical symbol.
// Symbols are case-sensitive ("Fe", not "FE").
func (t *Table) Lookup(symbol string) (Element, error) {
	i, ok := t.bySymbol[symbol]
	if !ok {
		return Element{}, fmt.Errorf("%w: symbol %q", ErrNotFound, symbol)
	}
	return t.elements[i], nil
}

// ByNumber returns the element with atomic number z.
func (t *Table) ByNumber(z int) (Element, error) {
	if z < 1 || z > len(t.elements) {
		return Element{}, fmt.Errorf("%w: atomic number %d", ErrNotFound, z)
	}
	return t.elements[z-1], nil
}

// Range returns the elements with atomic numbers in [fromZ, toZ].
// Bounds outside the table are clipped.
func (t *Table) Range(fromZ, toZ int) []Element {
	fromZ = max(fromZ, 1)
	toZ = min(toZ, len(t.elements))
	if fromZ > toZ {
		return nil
	}
	out := make([]Element, toZ-fromZ+1)
	copy(out, t.elements[fromZ-1:toZ])
	return out
}
