// Package xrf synthesises idealised X-ray fluorescence spectra and attributes
// their peaks to atomic emission lines.
//
// A spectrum is built from one or more excitation sources (tube energies
// with weights). For every source the emission lines of the target element
// are looked up through a [LineSource], broadened with a shared Gaussian
// profile, weighted and summed. The combined spectrum is sampled on a linear
// axis from 0 to the highest source energy and normalised to a maximum of 1.
//
// Peaks are located with a prominence threshold and matched to the closest
// emission line by energy. [Moseley] maps a Kα energy back to an atomic
// number using the square-root form of Moseley's law.
//
// The model ignores detector response, absorption and matrix effects; it is
// meant for visualisation, not quantitative spectroscopy.
package xrf
