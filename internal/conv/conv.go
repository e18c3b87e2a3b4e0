// Package conv broadens stick spectra by linear convolution with a sampled
// line shape.
//
// Short kernels are applied directly; longer ones go through FFT
// overlap-add. Same returns the part of the result aligned with the input.
package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
	ErrEvenKernel  = errors.New("conv: kernel length must be odd")
)

// directKernelLimit is the kernel length below which Auto uses Direct.
const directKernelLimit = 32

// Direct computes the full linear convolution of a and b, of length
// len(a) + len(b) - 1. Zero samples of a are skipped, which makes sparse
// stick spectra cheap.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	scaled := make([]float64, len(b))
	for i, v := range a {
		if v == 0 {
			continue
		}
		vecmath.ScaleBlock(scaled, b, v)
		vecmath.AddBlockInPlace(result[i:i+len(b)], scaled)
	}
	return result, nil
}

// Auto computes the full linear convolution, choosing Direct for short
// kernels and overlap-add otherwise.
func Auto(signal, kernel []float64) ([]float64, error) {
	if len(kernel) < directKernelLimit {
		return Direct(signal, kernel)
	}
	return OverlapAddConvolve(signal, kernel)
}

// Same convolves signal with an odd-length kernel centred on its middle
// sample and returns len(signal) samples aligned with signal.
func Same(signal, kernel []float64) ([]float64, error) {
	if len(kernel)%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEvenKernel, len(kernel))
	}
	full, err := Auto(signal, kernel)
	if err != nil {
		return nil, err
	}
	half := len(kernel) / 2
	return full[half : half+len(signal)], nil
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
