package xrf

// EmissionLine is one characteristic X-ray line of an element as excited by
// a particular source energy.
type EmissionLine struct {
	Label     string  // IUPAC transition label, e.g. "KL3"
	EnergyKeV float64 // emission energy
	Rate      float64 // relative intensity, unitless
}

// Source is an excitation energy with its relative weight.
type Source struct {
	EnergyKeV float64
	Weight    float64
}

// Spectrum is a sampled intensity curve. X is the energy axis in keV and Y
// the intensity at each sample.
type Spectrum struct {
	X []float64
	Y []float64

	// Empty is set by Normalized when every intensity is zero and no
	// scaling could be applied.
	Empty bool
}

// Len returns the number of samples.
func (s Spectrum) Len() int { return len(s.X) }

// Step returns the axis spacing, or 0 for fewer than two samples.
func (s Spectrum) Step() float64 {
	if len(s.X) < 2 {
		return 0
	}
	return (s.X[len(s.X)-1] - s.X[0]) / float64(len(s.X)-1)
}

// Peak is a detected local maximum of a normalised spectrum.
type Peak struct {
	Index      int
	EnergyKeV  float64
	Intensity  float64
	Prominence float64

	// Line is the emission line closest in energy. It is only meaningful
	// when Attributed is true.
	Line       EmissionLine
	Attributed bool
}

// Result bundles a synthesised spectrum with its detected peaks.
type Result struct {
	Element string
	Sources []Source // sorted by energy

	Spectrum Spectrum // normalised
	Scale    float64  // maximum of the raw spectrum before normalisation

	// SourceLines holds the lines returned for each entry of Sources.
	SourceLines [][]EmissionLine
	// Lines is the table used for peak attribution.
	Lines []EmissionLine

	Peaks []Peak
}

// LineSource looks up the emission lines of an element excited at the given
// energy. Implementations return an error wrapping a not-found condition for
// unknown symbols and an empty slice when nothing is excited.
type LineSource interface {
	ExcitationLines(symbol string, energyKeV float64) ([]EmissionLine, error)
}

// LineSourceFunc adapts a function to [LineSource].
type LineSourceFunc func(symbol string, energyKeV float64) ([]EmissionLine, error)

// ExcitationLines calls f.
func (f LineSourceFunc) ExcitationLines(symbol string, energyKeV float64) ([]EmissionLine, error) {
	return f(symbol, energyKeV)
}
