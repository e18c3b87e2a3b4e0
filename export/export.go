// Package export writes synthesised spectra and their peaks as JSON or
// MessagePack records.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/cwbudde/algo-xrf/xrf"
)

// Format is a record encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat accepts "json" and "msgpack" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "msgpack", "messagepack":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath maps .json to JSON and .msgpack or .mp to MessagePack.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
}

// Source mirrors xrf.Source.
type Source struct {
	EnergyKeV float64 `json:"energy_kev"`
	Weight    float64 `json:"weight"`
}

// Line mirrors xrf.EmissionLine.
type Line struct {
	Label     string  `json:"label"`
	EnergyKeV float64 `json:"energy_kev"`
	Rate      float64 `json:"rate"`
}

// Peak is a detected peak with the label of its attributed line, if any.
type Peak struct {
	Index      int     `json:"index"`
	EnergyKeV  float64 `json:"energy_kev"`
	Intensity  float64 `json:"intensity"`
	Prominence float64 `json:"prominence"`
	Line       string  `json:"line,omitempty"`
	LineKeV    float64 `json:"line_kev,omitempty"`
}

// Record is the serialised form of an xrf.Result.
type Record struct {
	Element string    `json:"element"`
	Sources []Source  `json:"sources"`
	Scale   float64   `json:"scale"`
	Empty   bool      `json:"empty"`
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Lines   []Line    `json:"lines"`
	Peaks   []Peak    `json:"peaks"`
}

// NewRecord flattens res.
func NewRecord(res *xrf.Result) Record {
	rec := Record{
		Element: res.Element,
		Sources: make([]Source, len(res.Sources)),
		Scale:   res.Scale,
		Empty:   res.Spectrum.Empty,
		X:       res.Spectrum.X,
		Y:       res.Spectrum.Y,
		Lines:   make([]Line, len(res.Lines)),
		Peaks:   make([]Peak, len(res.Peaks)),
	}
	for i, s := range res.Sources {
		rec.Sources[i] = Source{EnergyKeV: s.EnergyKeV, Weight: s.Weight}
	}
	for i, l := range res.Lines {
		rec.Lines[i] = Line{Label: l.Label, EnergyKeV: l.EnergyKeV, Rate: l.Rate}
	}
	for i, p := range res.Peaks {
		rec.Peaks[i] = Peak{
			Index:      p.Index,
			EnergyKeV:  p.EnergyKeV,
			Intensity:  p.Intensity,
			Prominence: p.Prominence,
		}
		if p.Attributed {
			rec.Peaks[i].Line = p.Line.Label
			rec.Peaks[i].LineKeV = p.Line.EnergyKeV
		}
	}
	return rec
}

// Result rebuilds an xrf.Result. Peak lines are resolved against the
// record's line table by label; per-source line tables are not stored.
func (r Record) Result() *xrf.Result {
	res := &xrf.Result{
		Element:  r.Element,
		Sources:  make([]xrf.Source, len(r.Sources)),
		Spectrum: xrf.Spectrum{X: r.X, Y: r.Y, Empty: r.Empty},
		Scale:    r.Scale,
		Lines:    make([]xrf.EmissionLine, len(r.Lines)),
		Peaks:    make([]xrf.Peak, len(r.Peaks)),
	}
	for i, s := range r.Sources {
		res.Sources[i] = xrf.Source{EnergyKeV: s.EnergyKeV, Weight: s.Weight}
	}

	byLabel := make(map[string]xrf.EmissionLine, len(r.Lines))
	for i, l := range r.Lines {
		res.Lines[i] = xrf.EmissionLine{Label: l.Label, EnergyKeV: l.EnergyKeV, Rate: l.Rate}
		byLabel[l.Label] = res.Lines[i]
	}

	for i, p := range r.Peaks {
		res.Peaks[i] = xrf.Peak{
			Index:      p.Index,
			EnergyKeV:  p.EnergyKeV,
			Intensity:  p.Intensity,
			Prominence: p.Prominence,
		}
		if p.Line == "" {
			continue
		}
		line, ok := byLabel[p.Line]
		if !ok {
			line = xrf.EmissionLine{Label: p.Line, EnergyKeV: p.LineKeV}
		}
		res.Peaks[i].Line = line
		res.Peaks[i].Attributed = true
	}
	return res
}

// Write encodes res to w.
func Write(w io.Writer, res *xrf.Result, format Format) error {
	return WriteRecord(w, NewRecord(res), format)
}

// WriteRecord encodes rec to w.
func WriteRecord(w io.Writer, rec Record, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(rec)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Read decodes one record from r.
func Read(r io.Reader, format Format) (Record, error) {
	var rec Record
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&rec); err != nil {
			return Record{}, fmt.Errorf("export: %w", err)
		}
	case FormatMsgpack:
		dec := msgpack.NewDecoder(r)
		dec.SetCustomStructTag("json")
		if err := dec.Decode(&rec); err != nil {
			return Record{}, fmt.Errorf("export: %w", err)
		}
	default:
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return rec, nil
}
