package lineshape

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-xrf/internal/conv"
)

// kernelReach is the exponent at which the Gaussian kernel is truncated
// (exp(-27.6) ~ 1e-12).
const kernelReach = 27.6

// ErrNonUniformAxis is returned by SumConvolved when the sample axis is not
// equally spaced.
var ErrNonUniformAxis = errors.New("lineshape: axis is not uniformly spaced")

// Line is a single spectral line.
type Line struct {
	Center    float64
	Amplitude float64
}

// Gaussian evaluates exp(-(x-center)^2/width).
func Gaussian(x, center, width float64) float64 {
	d := x - center
	return math.Exp(-d * d / width)
}

// AddGaussian accumulates amp*exp(-(x-center)^2/width) into dst.
// dst and x must have equal length; width must be > 0.
func AddGaussian(dst, x []float64, center, amp, width float64) {
	addGaussian(dst, x, make([]float64, len(x)), center, amp, width)
}

func addGaussian(dst, x, scratch []float64, center, amp, width float64) {
	if amp == 0 {
		return
	}

	for i, v := range x {
		scratch[i] = v - center
	}
	vecmath.MulBlockInPlace(scratch, scratch)

	inv := -1 / width
	for i, d2 := range scratch {
		scratch[i] = math.Exp(d2 * inv)
	}
	vecmath.ScaleBlockInPlace(scratch, amp)
	vecmath.AddBlockInPlace(dst, scratch)
}

// SumDirect evaluates the sum of all broadened lines at every sample of x.
func SumDirect(x []float64, lines []Line, width float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 || len(lines) == 0 {
		return out
	}

	scratch := make([]float64, len(x))
	for _, l := range lines {
		addGaussian(out, x, scratch, l.Center, l.Amplitude, width)
	}
	return out
}

// SumConvolved approximates SumDirect by linear deposit of each amplitude on
// an extended sample grid followed by an FFT convolution with the sampled
// kernel. The interpolation error is bounded by step^2/(4*width) times the
// largest amplitude. Axes with fewer than two samples or zero span fall back
// to SumDirect.
func SumConvolved(x []float64, lines []Line, width float64) ([]float64, error) {
	n := len(x)
	if n < 2 || len(lines) == 0 {
		return SumDirect(x, lines, width), nil
	}

	step := (x[n-1] - x[0]) / float64(n-1)
	if !(step > 0) {
		return SumDirect(x, lines, width), nil
	}
	if err := checkUniform(x, step); err != nil {
		return nil, err
	}

	half := int(math.Ceil(math.Sqrt(kernelReach*width) / step))
	kernel := make([]float64, 2*half+1)
	for j := range kernel {
		d := float64(j-half) * step
		kernel[j] = math.Exp(-d * d / width)
	}

	grid := make([]float64, n+2*half)
	lastCell := float64(len(grid) - 1)
	for _, l := range lines {
		pos := (l.Center-x[0])/step + float64(half)
		if pos < 0 || pos > lastCell {
			continue
		}
		i := int(math.Floor(pos))
		if i >= len(grid)-1 {
			grid[len(grid)-1] += l.Amplitude
			continue
		}
		frac := pos - float64(i)
		grid[i] += l.Amplitude * (1 - frac)
		grid[i+1] += l.Amplitude * frac
	}

	same, err := conv.Same(grid, kernel)
	if err != nil {
		return nil, fmt.Errorf("lineshape: %w", err)
	}

	out := make([]float64, n)
	copy(out, same[half:half+n])
	for i, v := range out {
		if v < 0 {
			out[i] = 0
		}
	}
	return out, nil
}

func checkUniform(x []float64, step float64) error {
	tol := 1e-6 * step
	for i := range x {
		want := x[0] + step*float64(i)
		if math.Abs(x[i]-want) > tol {
			return fmt.Errorf("%w: sample %d is %g, want %g", ErrNonUniformAxis, i, x[i], want)
		}
	}
	return nil
}
