package xrf

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-xrf/dsp/peaks"
)

// FindPeaks returns the local maxima of s whose prominence is at least
// minProminence, in ascending energy order. Peaks are not attributed.
func FindPeaks(s Spectrum, minProminence float64) []Peak {
	found := peaks.Find(s.Y, minProminence)
	if len(found) == 0 {
		return nil
	}

	out := make([]Peak, len(found))
	for i, p := range found {
		out[i] = Peak{
			Index:      p.Index,
			EnergyKeV:  s.X[p.Index],
			Intensity:  p.Height,
			Prominence: p.Prominence,
		}
	}
	return out
}

// Attribute returns a copy of ps where each peak carries the line whose
// energy minimises the squared distance to the peak energy. Ties go to the
// earliest line. With no lines the peaks are returned unattributed.
func Attribute(ps []Peak, lines []EmissionLine) []Peak {
	if len(ps) == 0 {
		return nil
	}

	out := make([]Peak, len(ps))
	copy(out, ps)
	if len(lines) == 0 {
		return out
	}

	dist := make([]float64, len(lines))
	for i := range out {
		for j, l := range lines {
			d := l.EnergyKeV - out[i].EnergyKeV
			dist[j] = d * d
		}
		out[i].Line = lines[floats.MinIdx(dist)]
		out[i].Attributed = true
	}
	return out
}

func attributionTable(perSource [][]EmissionLine, mode Attribution) []EmissionLine {
	if len(perSource) == 0 {
		return nil
	}
	if mode == AttributeLastSource {
		return append([]EmissionLine(nil), perSource[len(perSource)-1]...)
	}
	return UnionLines(perSource...)
}

// UnionLines merges line tables, keeping the first occurrence of each label.
func UnionLines(tables ...[]EmissionLine) []EmissionLine {
	var out []EmissionLine
	seen := make(map[string]bool)
	for _, table := range tables {
		for _, l := range table {
			if seen[l.Label] {
				continue
			}
			seen[l.Label] = true
			out = append(out, l)
		}
	}
	return out
}
