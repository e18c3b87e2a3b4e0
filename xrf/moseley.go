package xrf

import "math"

// moseleyEV is three quarters of the Rydberg energy in eV, rounded as in
// Moseley's original fit.
const moseleyEV = 10.2

// Moseley predicts the atomic number of an element from its Kα energy in keV
// using Z = 1 + sqrt(1000*E/10.2). Negative energies give NaN.
func Moseley(eKeV float64) float64 {
	return 1 + math.Sqrt(1000*eKeV/moseleyEV)
}

// MoseleyAll applies Moseley to every element of energies.
func MoseleyAll(energies []float64) []float64 {
	out := make([]float64, len(energies))
	for i, e := range energies {
		out[i] = Moseley(e)
	}
	return out
}

// KAlphaEnergy is the inverse of Moseley: the Kα energy in keV predicted for
// atomic number z.
func KAlphaEnergy(z float64) float64 {
	d := z - 1
	return moseleyEV * d * d / 1000
}
