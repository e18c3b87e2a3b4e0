package render

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-xrf/ptable"
	"github.com/cwbudde/algo-xrf/xrf"
)

// Elements drawn on the Moseley chart: silicon through lead.
const (
	MoseleyFirstZ = 14
	MoseleyLastZ  = 82
)

const (
	MoseleyWidth  = 1200
	MoseleyHeight = 800

	moseleyLawSamples = 2000
	moseleyPeakHeight = 4
	moseleyTopZ       = 90
)

// LineTable is a line source that also knows the periodic table, such as
// *atomdata.Backend.
type LineTable interface {
	xrf.LineSource
	Table() *ptable.Table
}

// MoseleyOptions controls MoseleyChart.
type MoseleyOptions struct {
	// Selected elements are drawn in bright colours and repeated at the
	// bottom of the chart with simple labels.
	Selected []string
	// HideLaw leaves out the Moseley's law curve.
	HideLaw bool
	// Synth configures the spectrum synthesis of every element.
	Synth []xrf.Option
	// Workers bounds concurrent synthesis. Zero uses GOMAXPROCS.
	Workers int
}

// MoseleyChart draws the spectra of silicon to lead stacked by atomic
// number, so that the Kα peaks trace Moseley's law. Heavier elements are
// drawn first so lighter ones overlap them.
func MoseleyChart(ctx context.Context, src LineTable, sources []xrf.Source, opts MoseleyOptions) (chart.Chart, error) {
	table := src.Table()
	colors, _, err := Colorize(table, opts.Selected)
	if err != nil {
		return chart.Chart{}, err
	}

	elements := table.Range(MoseleyFirstZ, MoseleyLastZ)
	results, err := synthesizeAll(ctx, xrf.NewSynthesizer(src, opts.Synth...), elements, sources, opts.Workers)
	if err != nil {
		return chart.Chart{}, err
	}

	maxE := xrf.MaxEnergy(sources)
	c := chart.Chart{
		Title:  fmt.Sprintf("Moseley plot (x-ray tube at %g keV)", maxE),
		Width:  MoseleyWidth,
		Height: MoseleyHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 12},
		},
		XAxis: chart.XAxis{
			Name:  "energy (keV)",
			Ticks: energyTicks(maxE),
		},
		YAxis: chart.YAxis{
			Name:  "Atomic number",
			Range: &chart.ContinuousRange{Min: 0, Max: moseleyTopZ},
		},
	}

	if !opts.HideLaw {
		c.Series = append(c.Series, moseleyLaw(maxE))
	}

	selected := make(map[string]bool, len(opts.Selected))
	for _, s := range opts.Selected {
		selected[s] = true
	}

	for i := len(elements) - 1; i >= 0; i-- {
		e := elements[i]
		col := colors[e.AtomicNumber-1]
		res := results[i]

		if selected[e.Symbol] {
			AddSpectrum(&c, res, SpectrumOptions{
				Color:  col,
				Name:   e.Symbol,
				Height: moseleyPeakHeight,
				Labels: LabelsSimple,
				Fill:   true,
			})
		}
		AddSpectrum(&c, res, SpectrumOptions{
			Color:  col,
			Offset: float64(e.AtomicNumber),
			Height: moseleyPeakHeight,
			Labels: LabelsNone,
		})
	}

	c.Elements = []chart.Renderable{chart.Legend(&c)}
	return c, nil
}

func synthesizeAll(ctx context.Context, syn *xrf.Synthesizer, elements []ptable.Element, sources []xrf.Source, workers int) ([]*xrf.Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*xrf.Result, len(elements))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, e := range elements {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := syn.Synthesize(e.Symbol, sources)
			if err != nil {
				return fmt.Errorf("render: %s: %w", e.Symbol, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func moseleyLaw(maxE float64) chart.ContinuousSeries {
	x := floats.Span(make([]float64, moseleyLawSamples), 0, maxE)
	return chart.ContinuousSeries{
		Name: "Moseley's law",
		Style: chart.Style{
			StrokeColor:     drawing.ColorBlack,
			StrokeWidth:     1,
			StrokeDashArray: []float64{2, 3},
		},
		XValues: x,
		YValues: xrf.MoseleyAll(x),
	}
}

// energyTicks labels every keV up to the tube energy. The chart takes its x
// range from the outermost ticks.
func energyTicks(maxE float64) []chart.Tick {
	top := max(int(math.Ceil(maxE)), 1)
	ticks := make([]chart.Tick, top+1)
	for k := range ticks {
		ticks[k] = chart.Tick{Value: float64(k), Label: strconv.Itoa(k)}
	}
	return ticks
}
