package testutil

import "math"

// GaussianLine samples amp*exp(-(x-center)^2/width) over x.
func GaussianLine(x []float64, center, amp, width float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := v - center
		out[i] = amp * math.Exp(-d*d/width)
	}
	return out
}

// Axis returns n equally spaced samples from lo to hi inclusive.
func Axis(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}
