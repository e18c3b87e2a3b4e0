package render

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cwbudde/algo-xrf/xrf"
)

// LabelMode selects how much text is attached to each peak.
type LabelMode int

const (
	// LabelsNone draws the curve only: no markers, lines or text.
	LabelsNone LabelMode = iota
	// LabelsSimple marks peaks and labels them with the element symbol.
	LabelsSimple
	// LabelsFull adds the transition and peak energy to the symbol.
	LabelsFull
)

// String returns the mode name.
func (m LabelMode) String() string {
	switch m {
	case LabelsNone:
		return "none"
	case LabelsSimple:
		return "simple"
	case LabelsFull:
		return "full"
	default:
		return "unknown"
	}
}

// ParseLabelMode parses "none", "simple" or "full".
func ParseLabelMode(s string) (LabelMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return LabelsNone, nil
	case "simple":
		return LabelsSimple, nil
	case "full":
		return LabelsFull, nil
	default:
		return LabelsNone, fmt.Errorf("render: unknown label mode %q", s)
	}
}

// Chart sizes in pixels.
const (
	SpectrumWidth  = 1200
	SpectrumHeight = 500
)

// fillAlpha matches the translucent area under a spectrum.
const fillAlpha = 77

// SpectrumOptions controls how one spectrum is drawn.
type SpectrumOptions struct {
	Color  drawing.Color // zero selects the first Tab10 colour
	Name   string        // legend entry; empty keeps it out of the legend
	Offset float64       // baseline of the curve
	Height float64       // scale applied to the normalised curve; zero means 1
	Labels LabelMode
	// Fill shades the area under the curve. It only applies at a zero
	// offset because the chart fills down to y = 0.
	Fill bool
}

// DefaultSpectrumOptions returns options for a standalone spectrum plot.
func DefaultSpectrumOptions() SpectrumOptions {
	return SpectrumOptions{Color: tab10[0], Height: 1, Labels: LabelsFull, Fill: true}
}

func (o SpectrumOptions) withDefaults() SpectrumOptions {
	if o.Color.IsZero() {
		o.Color = tab10[0]
	}
	if o.Height == 0 {
		o.Height = 1
	}
	return o
}

// PeakLabel returns the annotation text of p for the given mode.
func PeakLabel(element string, p xrf.Peak, mode LabelMode) string {
	switch mode {
	case LabelsSimple:
		return element
	case LabelsFull:
		if !p.Attributed {
			return fmt.Sprintf("%s %.2fkeV", element, p.EnergyKeV)
		}
		return fmt.Sprintf("%s %s %.2fkeV", element, p.Line.Label, p.EnergyKeV)
	default:
		return ""
	}
}

// SpectrumChart returns a chart holding a single spectrum with energy on the
// x axis.
func SpectrumChart(res *xrf.Result, opts SpectrumOptions) chart.Chart {
	opts = opts.withDefaults()

	top := opts.Offset + 1.15*opts.Height
	c := chart.Chart{
		Title:  spectrumTitle(res),
		Width:  SpectrumWidth,
		Height: SpectrumHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 12},
		},
		XAxis: chart.XAxis{
			Name:  "energy (keV)",
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax(res.Spectrum)},
		},
		YAxis: chart.YAxis{
			Name:  "intensity",
			Range: &chart.ContinuousRange{Min: min(opts.Offset, 0), Max: top},
		},
	}

	AddSpectrum(&c, res, opts)
	if opts.Name != "" {
		c.Elements = []chart.Renderable{chart.Legend(&c)}
	}
	return c
}

// AddSpectrum appends the series of one spectrum to c: the curve, and unless
// opts.Labels is LabelsNone, a marker at every peak with a faint vertical
// line through the plot and optional text.
func AddSpectrum(c *chart.Chart, res *xrf.Result, opts SpectrumOptions) {
	opts = opts.withDefaults()
	col := opts.Color
	s := res.Spectrum

	y := make([]float64, len(s.Y))
	for i, v := range s.Y {
		y[i] = opts.Offset + opts.Height*v
	}

	curve := chart.Style{StrokeColor: col, StrokeWidth: 1}
	if opts.Fill && opts.Offset == 0 {
		curve.FillColor = col.WithAlpha(fillAlpha)
	}
	c.Series = append(c.Series, chart.ContinuousSeries{
		Name:    opts.Name,
		Style:   curve,
		XValues: s.X,
		YValues: y,
	})

	if opts.Labels == LabelsNone || len(res.Peaks) == 0 {
		return
	}

	lo, hi := yBounds(c, opts)
	px := make([]float64, len(res.Peaks))
	py := make([]float64, len(res.Peaks))
	for i, p := range res.Peaks {
		px[i] = p.EnergyKeV
		py[i] = opts.Offset + opts.Height*p.Intensity

		c.Series = append(c.Series, chart.ContinuousSeries{
			Style:   chart.Style{StrokeColor: col.WithAlpha(fillAlpha), StrokeWidth: 1},
			XValues: []float64{p.EnergyKeV, p.EnergyKeV},
			YValues: []float64{lo, hi},
		})
	}

	c.Series = append(c.Series, chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorTransparent,
			StrokeWidth: 1,
			DotColor:    col,
			DotWidth:    3,
		},
		XValues: px,
		YValues: py,
	})

	notes := make([]chart.Value2, len(res.Peaks))
	for i, p := range res.Peaks {
		notes[i] = chart.Value2{XValue: px[i], YValue: py[i], Label: PeakLabel(res.Element, p, opts.Labels)}
	}
	c.Series = append(c.Series, chart.AnnotationSeries{
		Style: chart.Style{
			FontColor:   col,
			FillColor:   chart.ColorTransparent,
			StrokeColor: chart.ColorTransparent,
		},
		Annotations: notes,
	})
}

func yBounds(c *chart.Chart, opts SpectrumOptions) (float64, float64) {
	if c.YAxis.Range != nil && !c.YAxis.Range.IsZero() {
		return c.YAxis.Range.GetMin(), c.YAxis.Range.GetMax()
	}
	return opts.Offset, opts.Offset + opts.Height
}

// axisMax keeps the x range non-degenerate for an axis collapsed at zero.
func axisMax(s xrf.Spectrum) float64 {
	if s.Len() == 0 || s.X[s.Len()-1] <= 0 {
		return 1
	}
	return s.X[s.Len()-1]
}

func spectrumTitle(res *xrf.Result) string {
	energies := make([]string, len(res.Sources))
	for i, src := range res.Sources {
		energies[i] = fmt.Sprintf("%g", src.EnergyKeV)
	}
	return fmt.Sprintf("%s fluorescence (x-ray tube at %s keV)", res.Element, strings.Join(energies, ", "))
}
