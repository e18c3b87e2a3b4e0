package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cwbudde/algo-xrf/ptable"
)

// DefaultColor fills elements that are not highlighted.
var DefaultColor = drawing.Color{
	R: drawing.ColorChannelFromFloat(0.4),
	G: drawing.ColorChannelFromFloat(0.4),
	B: drawing.ColorChannelFromFloat(0.9),
	A: drawing.ColorChannelFromFloat(0.3),
}

// Colorize assigns a colour to every element of table. Selected symbols get
// bright colours sampled evenly from a qualitative map, handed out in
// atomic-number order; everything else gets DefaultColor. The returned
// indices point into table.Elements() and are ascending.
//
// An unknown symbol fails with ptable.ErrNotFound. Repeated symbols count
// once.
func Colorize(table *ptable.Table, selected []string) ([]drawing.Color, []int, error) {
	picked := make(map[int]bool, len(selected))
	for _, s := range selected {
		e, err := table.Lookup(s)
		if err != nil {
			return nil, nil, err
		}
		picked[e.AtomicNumber-1] = true
	}

	colors := make([]drawing.Color, table.Len())
	for i := range colors {
		colors[i] = DefaultColor
	}

	var indices []int
	for i := range colors {
		if picked[i] {
			indices = append(indices, i)
		}
	}

	sample := colorMap(len(indices))
	for k, t := range linspace(len(indices)) {
		colors[indices[k]] = sample(t)
	}
	return colors, indices, nil
}

// ColorOf returns the colour Colorize gives symbol, or DefaultColor when it
// is not listed.
func ColorOf(table *ptable.Table, colors []drawing.Color, symbol string) drawing.Color {
	e, err := table.Lookup(symbol)
	if err != nil || e.AtomicNumber > len(colors) {
		return DefaultColor
	}
	return colors[e.AtomicNumber-1]
}
