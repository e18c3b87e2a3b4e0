// Package atomdata is the atomic-data backend used to look up the
// characteristic X-ray lines an element emits when excited at a given
// energy.
//
// Line energies and absorption edges are tabulated for sodium through
// uranium and embedded in the binary. Relative line rates come from a small
// analytical model: the photo-ionisation share of each shell (from the edge
// jump ratio), an E^-8/3 cross-section scaling, fitted fluorescence yields
// and fixed branching ratios. The model is good enough to reproduce the
// familiar shape of K and L spectra; it is not a substitute for a full
// fundamental-parameters database.
//
// [Open] pays the parsing cost once and returns an immutable [Backend] that
// is safe for concurrent use.
package atomdata
