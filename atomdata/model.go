package atomdata

import (
	"math"

	"github.com/cwbudde/algo-xrf/internal/numeric"
	"github.com/cwbudde/algo-xrf/xrf"
)

// Line labels in IUPAC notation.
const (
	LabelKL3  = "KL3"  // Kα1
	LabelKL2  = "KL2"  // Kα2
	LabelKM3  = "KM3"  // Kβ1
	LabelL3M5 = "L3M5" // Lα1
	LabelL2M4 = "L2M4" // Lβ1
)

// Branching ratios within a shell.
const (
	kAlpha1Share = 2.0 / 3
	lAlpha1Share = 0.8
	lBeta1Share  = 0.75
	l3Share      = 0.5
	l2Share      = 0.25
)

// photoScale is the energy dependence of the photo-ionisation cross-section.
func photoScale(energyKeV float64) float64 {
	return math.Pow(energyKeV, -8.0/3)
}

// kJumpRatio approximates the K-edge jump ratio.
func kJumpRatio(z float64) float64 {
	return 125/z + 3.5
}

// kShare is the fraction of absorption above the K edge that ionises the K
// shell.
func kShare(z float64) float64 {
	r := kJumpRatio(z)
	return (r - 1) / r
}

// KYield is the K-shell fluorescence yield from the Bambynek fit.
func KYield(z int) float64 {
	zf := float64(z)
	a := 0.015 + 0.0327*zf - 0.64e-6*zf*zf*zf
	a4 := a * a * a * a
	return a4 / (1 + a4)
}

// LYield is the average L-shell fluorescence yield.
func LYield(z int) float64 {
	z4 := math.Pow(float64(z), 4)
	return z4 / (z4 + 8.9e7)
}

// kBetaFraction is the share of K vacancies filled from the M shell.
// Elements lighter than aluminium have no populated 3p level.
func kBetaFraction(z int) float64 {
	if z < 13 {
		return 0
	}
	return numeric.Clamp(0.10+0.0015*float64(z-26), 0.01, 0.25)
}

func (r record) lines(energyKeV float64) []xrf.EmissionLine {
	if energyKeV <= 0 || energyKeV < r.l3Edge {
		return nil
	}

	z := float64(r.z)
	photo := photoScale(energyKeV)
	remaining := 1.0

	var out []xrf.EmissionLine
	if energyKeV >= r.kEdge {
		share := kShare(z)
		remaining -= share

		k := share * photo * KYield(r.z)
		beta := kBetaFraction(r.z)
		alpha := k * (1 - beta)
		out = append(out,
			xrf.EmissionLine{Label: LabelKL3, EnergyKeV: r.ka1, Rate: alpha * kAlpha1Share},
			xrf.EmissionLine{Label: LabelKL2, EnergyKeV: r.ka2, Rate: alpha * (1 - kAlpha1Share)},
		)
		if beta > 0 {
			out = append(out, xrf.EmissionLine{Label: LabelKM3, EnergyKeV: r.kb1, Rate: k * beta})
		}
	}

	if !r.hasL() {
		return out
	}

	l := remaining * photo * LYield(r.z)
	out = append(out, xrf.EmissionLine{Label: LabelL3M5, EnergyKeV: r.la1, Rate: l * l3Share * lAlpha1Share})
	if energyKeV >= r.l2Edge() {
		out = append(out, xrf.EmissionLine{Label: LabelL2M4, EnergyKeV: r.lb1, Rate: l * l2Share * lBeta1Share})
	}
	return out
}
