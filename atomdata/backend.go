package atomdata

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-xrf/ptable"
	"github.com/cwbudde/algo-xrf/xrf"
)

//go:embed data/xray.csv
var xrayCSV []byte

var header = []string{"atomic_number", "symbol", "k_edge", "l3_edge", "ka1", "ka2", "kb1", "la1", "lb1"}

// Edges are the absorption edge energies of an element in keV.
type Edges struct {
	K  float64
	L2 float64
	L3 float64
}

// record is one row of the X-ray table. la1 and lb1 are zero for light
// elements whose L lines fall below the tabulated range.
type record struct {
	z      int
	kEdge  float64
	l3Edge float64
	ka1    float64
	ka2    float64
	kb1    float64
	la1    float64
	lb1    float64
}

// l2Edge approximates the L2 edge from the L3 edge and the Kα doublet
// splitting, which equals the L2-L3 spin-orbit splitting.
func (r record) l2Edge() float64 {
	return r.l3Edge + r.ka1 - r.ka2
}

func (r record) hasL() bool { return r.la1 > 0 }

// Backend answers line lookups from the embedded tables.
type Backend struct {
	table   *ptable.Table
	records map[string]record
}

var _ xrf.LineSource = (*Backend)(nil)

// Open loads the periodic table and the X-ray line table.
func Open(opts ...Option) (*Backend, error) {
	cfg := applyOptions(opts...)
	start := time.Now()

	table, err := ptable.Load()
	if err != nil {
		return nil, fmt.Errorf("atomdata: %w", err)
	}

	records, err := parse(bytes.NewReader(xrayCSV), table)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("atomic data loaded",
		zap.Int("elements", table.Len()),
		zap.Int("xray_records", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Backend{table: table, records: records}, nil
}

// Table returns the periodic table the backend was loaded with.
func (b *Backend) Table() *ptable.Table { return b.table }

// HasData reports whether line data is tabulated for symbol.
func (b *Backend) HasData(symbol string) bool {
	_, ok := b.records[symbol]
	return ok
}

// Edges returns the absorption edges of symbol.
func (b *Backend) Edges(symbol string) (Edges, error) {
	if _, err := b.table.Lookup(symbol); err != nil {
		return Edges{}, err
	}
	r, ok := b.records[symbol]
	if !ok {
		return Edges{}, fmt.Errorf("%w: %s", ErrNoData, symbol)
	}
	return Edges{K: r.kEdge, L2: r.l2Edge(), L3: r.l3Edge}, nil
}

// ExcitationLines returns the lines of symbol excited by photons of
// energyKeV, in the order KL3, KL2, KM3, L3M5, L2M4. Shells whose edge lies
// above energyKeV contribute nothing. Elements without tabulated data give
// no lines.
func (b *Backend) ExcitationLines(symbol string, energyKeV float64) ([]xrf.EmissionLine, error) {
	if _, err := b.table.Lookup(symbol); err != nil {
		return nil, err
	}
	r, ok := b.records[symbol]
	if !ok {
		return nil, nil
	}
	return r.lines(energyKeV), nil
}

func parse(src io.Reader, table *ptable.Table) (map[string]record, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = len(header)

	head, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("atomdata: failed to read header: %w", err)
	}
	for i, name := range header {
		if strings.TrimSpace(head[i]) != name {
			return nil, fmt.Errorf("atomdata: unexpected column %d: %q, want %q", i, head[i], name)
		}
	}

	out := make(map[string]record)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("atomdata: %w", err)
		}

		symbol := strings.TrimSpace(rec[1])
		r, err := parseRow(rec)
		if err != nil {
			return nil, err
		}

		el, err := table.ByNumber(r.z)
		if err != nil {
			return nil, fmt.Errorf("atomdata: %w", err)
		}
		if el.Symbol != symbol {
			return nil, fmt.Errorf("atomdata: Z=%d is %s, not %s", r.z, el.Symbol, symbol)
		}
		if _, dup := out[symbol]; dup {
			return nil, fmt.Errorf("atomdata: duplicate element %s", symbol)
		}
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("atomdata: %s: %w", symbol, err)
		}

		out[symbol] = r
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("atomdata: empty x-ray table")
	}
	return out, nil
}

func parseRow(rec []string) (record, error) {
	z, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return record{}, fmt.Errorf("atomdata: atomic number %q: %w", rec[0], err)
	}

	vals := make([]float64, len(header)-2)
	for i := range vals {
		field := strings.TrimSpace(rec[i+2])
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return record{}, fmt.Errorf("atomdata: %s of Z=%d: %w", header[i+2], z, err)
		}
		vals[i] = v
	}

	return record{
		z:      z,
		kEdge:  vals[0],
		l3Edge: vals[1],
		ka1:    vals[2],
		ka2:    vals[3],
		kb1:    vals[4],
		la1:    vals[5],
		lb1:    vals[6],
	}, nil
}

func (r record) validate() error {
	if r.kEdge <= 0 || r.l3Edge <= 0 || r.ka1 <= 0 || r.ka2 <= 0 || r.kb1 <= 0 {
		return fmt.Errorf("K and L3 columns must be positive")
	}
	if r.ka2 > r.ka1 || r.ka1 >= r.kb1 || r.kb1 >= r.kEdge {
		return fmt.Errorf("K energies out of order: ka2=%g ka1=%g kb1=%g edge=%g", r.ka2, r.ka1, r.kb1, r.kEdge)
	}
	if (r.la1 > 0) != (r.lb1 > 0) {
		return fmt.Errorf("la1 and lb1 must both be set or both be empty")
	}
	if r.hasL() && (r.la1 >= r.l3Edge || r.lb1 >= r.l2Edge()) {
		return fmt.Errorf("L line above its edge: la1=%g l3=%g lb1=%g l2=%g", r.la1, r.l3Edge, r.lb1, r.l2Edge())
	}
	return nil
}
