package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cwbudde/algo-xrf/internal/numeric"
)

// Palette is a listed colour map. Sampling at t in [0,1] picks entry
// floor(t*len), with t = 1 mapping to the last entry.
type Palette []drawing.Color

func hexPalette(codes ...string) Palette {
	p := make(Palette, len(codes))
	for i, c := range codes {
		p[i] = drawing.ColorFromHex(c)
	}
	return p
}

var (
	tab10 = hexPalette(
		"1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd",
		"8c564b", "e377c2", "7f7f7f", "bcbd22", "17becf",
	)
	tab20 = hexPalette(
		"1f77b4", "aec7e8", "ff7f0e", "ffbb78", "2ca02c",
		"98df8a", "d62728", "ff9896", "9467bd", "c5b0d5",
		"8c564b", "c49c94", "e377c2", "f7b6d2", "7f7f7f",
		"c7c7c7", "bcbd22", "dbdb8d", "17becf", "9edae5",
	)
)

// Tab10 returns the ten-colour qualitative palette.
func Tab10() Palette { return append(Palette(nil), tab10...) }

// Tab20 returns the twenty-colour qualitative palette.
func Tab20() Palette { return append(Palette(nil), tab20...) }

// At samples the palette.
func (p Palette) At(t float64) drawing.Color {
	if len(p) == 0 {
		return drawing.Color{}
	}
	t = numeric.Clamp(t, 0, 1)
	i := min(int(t*float64(len(p))), len(p)-1)
	return p[i]
}

// autumnLevels is the lookup table resolution of Autumn.
const autumnLevels = 256

// Autumn samples the red-to-yellow map: red is saturated, green rises with t
// and blue stays off.
func Autumn(t float64) drawing.Color {
	t = numeric.Clamp(t, 0, 1)
	level := min(int(t*autumnLevels), autumnLevels-1)
	return drawing.Color{R: 255, G: uint8(level), B: 0, A: 255}
}

// colorMap returns a sampler suited to n highlighted items.
func colorMap(n int) func(float64) drawing.Color {
	switch {
	case n <= len(tab10):
		return Palette(tab10).At
	case n <= len(tab20):
		return Palette(tab20).At
	default:
		return Autumn
	}
}

// linspace returns n evenly spaced values over [0,1]. A single value is 0.
func linspace(n int) []float64 {
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}
