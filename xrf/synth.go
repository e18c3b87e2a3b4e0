package xrf

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-xrf/dsp/lineshape"
)

// Synthesizer builds spectra for elements from a line source. It holds no
// mutable state; every call allocates fresh arrays.
type Synthesizer struct {
	lines LineSource
	cfg   Config
}

// NewSynthesizer creates a Synthesizer reading lines from src.
func NewSynthesizer(src LineSource, opts ...Option) *Synthesizer {
	return &Synthesizer{lines: src, cfg: ApplyOptions(opts...)}
}

// Config returns the effective settings.
func (s *Synthesizer) Config() Config { return s.cfg }

// Raw builds the weighted, unnormalised spectrum of element. It also returns
// the lines looked up for each source in sorted source order.
//
// Negative source energies are clamped to zero; the axis spans
// [0, max source energy].
func (s *Synthesizer) Raw(element string, sources []Source) (Spectrum, [][]EmissionLine, error) {
	sorted, err := prepareSources(sources)
	if err != nil {
		return Spectrum{}, nil, err
	}
	return s.raw(element, sorted)
}

func (s *Synthesizer) raw(element string, sorted []Source) (Spectrum, [][]EmissionLine, error) {
	x := make([]float64, s.cfg.Samples)
	floats.Span(x, 0, MaxEnergy(sorted))
	y := make([]float64, len(x))

	perSource := make([][]EmissionLine, len(sorted))
	for j, src := range sorted {
		energy := max(src.EnergyKeV, 0)

		lines, err := s.lines.ExcitationLines(element, energy)
		if err != nil {
			return Spectrum{}, nil, fmt.Errorf("xrf: lines of %q at %g keV: %w", element, energy, err)
		}
		perSource[j] = lines

		s.cfg.Logger.Debug("excitation lines",
			zap.String("element", element),
			zap.Float64("energy_kev", energy),
			zap.Float64("weight", src.Weight),
			zap.Int("lines", len(lines)),
		)

		if src.Weight == 0 || len(lines) == 0 {
			continue
		}

		shape, err := s.lineSpectrum(x, lines)
		if err != nil {
			return Spectrum{}, nil, err
		}
		floats.AddScaled(y, src.Weight, shape)
	}

	return Spectrum{X: x, Y: y}, perSource, nil
}

func (s *Synthesizer) lineSpectrum(x []float64, lines []EmissionLine) ([]float64, error) {
	shapes := make([]lineshape.Line, len(lines))
	for i, l := range lines {
		shapes[i] = lineshape.Line{Center: l.EnergyKeV, Amplitude: l.Rate}
	}

	if s.cfg.Method == MethodConvolution {
		out, err := lineshape.SumConvolved(x, shapes, s.cfg.Width)
		if err != nil {
			return nil, fmt.Errorf("xrf: %w", err)
		}
		return out, nil
	}
	return lineshape.SumDirect(x, shapes, s.cfg.Width), nil
}

// Normalized returns a copy of s scaled so its maximum is 1. When every
// sample is zero the copy is left unscaled and marked Empty.
func (s Spectrum) Normalized() Spectrum {
	out := Spectrum{
		X: append([]float64(nil), s.X...),
		Y: make([]float64, len(s.Y)),
	}

	peak := 0.0
	if len(s.Y) > 0 {
		peak = vecmath.MaxAbs(s.Y)
	}
	if peak == 0 {
		copy(out.Y, s.Y)
		out.Empty = true
		return out
	}

	for i, v := range s.Y {
		out.Y[i] = v / peak
	}
	return out
}

// Synthesize builds the normalised spectrum of element, detects its peaks
// and attributes them to emission lines.
func (s *Synthesizer) Synthesize(element string, sources []Source) (*Result, error) {
	sorted, err := prepareSources(sources)
	if err != nil {
		return nil, err
	}

	raw, perSource, err := s.raw(element, sorted)
	if err != nil {
		return nil, err
	}

	scale := 0.0
	if len(raw.Y) > 0 {
		scale = floats.Max(raw.Y)
	}

	spectrum := raw.Normalized()
	if spectrum.Empty {
		s.cfg.Logger.Warn("spectrum has no intensity",
			zap.String("element", element),
			zap.Float64("max_energy_kev", MaxEnergy(sorted)),
		)
	}

	table := attributionTable(perSource, s.cfg.Attribution)
	peaks := Attribute(FindPeaks(spectrum, s.cfg.MinProminence), table)

	return &Result{
		Element:     element,
		Sources:     sorted,
		Spectrum:    spectrum,
		Scale:       scale,
		SourceLines: perSource,
		Lines:       table,
		Peaks:       peaks,
	}, nil
}

// Simulate is a one-shot helper: it pairs energies with weights, then
// synthesises element with the given options. Nil weights mean uniform
// weighting.
func Simulate(src LineSource, element string, energies, weights []float64, opts ...Option) (*Result, error) {
	sources, err := NewSources(energies, weights)
	if err != nil {
		return nil, err
	}
	return NewSynthesizer(src, opts...).Synthesize(element, sources)
}
