// Package lineshape turns discrete emission lines into sampled spectra.
//
// Every line is broadened with the same Gaussian profile
//
//	y(x) = amplitude * exp(-(x - center)^2 / width)
//
// where width has units of energy squared. Two evaluation strategies are
// available: [SumDirect] evaluates every line at every sample, and
// [SumConvolved] deposits the line amplitudes onto the sample grid and
// convolves the result with a sampled Gaussian kernel via FFT.
package lineshape
