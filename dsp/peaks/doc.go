// Package peaks locates local maxima in sampled 1-D data and measures their
// topographic prominence.
//
// Flat plateaus count as a single maximum located at the plateau's middle
// sample (rounded down). The first and last samples are never peaks. The
// prominence of a peak is its height above the higher of the two lowest
// points reached on each side before the data climbs above the peak again
// or the signal ends.
package peaks
