package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minBlockSize is the smallest input block used by NewOverlapAdd.
const minBlockSize = 256

// OverlapAdd convolves real signals with a fixed real kernel by FFT block
// convolution. Input blocks are transformed two at a time: one in the real
// part and one in the imaginary part of the same complex buffer. The kernel
// is real, so the two block results separate again into the real and
// imaginary parts of the inverse transform.
type OverlapAdd struct {
	spectrum  []complex128
	kernelLen int
	blockSize int

	plan *algofft.Plan[complex128]
	work []complex128
}

// NewOverlapAdd prepares the kernel spectrum. If blockSize is 0 it is chosen
// from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(len(kernel)), minBlockSize)
	}

	size := nextPowerOf2(blockSize + len(kernel) - 1)
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		spectrum:  make([]complex128, size),
		kernelLen: len(kernel),
		blockSize: blockSize,
		plan:      plan,
		work:      make([]complex128, size),
	}
	for i, v := range kernel {
		oa.work[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.spectrum, oa.work); err != nil {
		return nil, fmt.Errorf("conv: kernel FFT failed: %w", err)
	}
	return oa, nil
}

// FFTSize returns the transform length.
func (oa *OverlapAdd) FFTSize() int { return len(oa.spectrum) }

// Process returns the full linear convolution of input with the kernel,
// of length len(input) + kernel length - 1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(input)+oa.kernelLen-1)
	blocks := (len(input) + oa.blockSize - 1) / oa.blockSize

	for b := 0; b < blocks; b += 2 {
		re := oa.block(input, b)
		im := oa.block(input, b+1)

		clear(oa.work)
		for i, v := range re {
			oa.work[i] = complex(v, 0)
		}
		for i, v := range im {
			oa.work[i] += complex(0, v)
		}

		if err := oa.plan.Forward(oa.work, oa.work); err != nil {
			return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
		}
		for i, k := range oa.spectrum {
			oa.work[i] *= k
		}
		if err := oa.plan.Inverse(oa.work, oa.work); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		oa.accumulate(out, b*oa.blockSize, len(re), realPart)
		oa.accumulate(out, (b+1)*oa.blockSize, len(im), imagPart)
	}
	return out, nil
}

// block returns input block b, or nil past the end.
func (oa *OverlapAdd) block(input []float64, b int) []float64 {
	start := b * oa.blockSize
	if start >= len(input) {
		return nil
	}
	return input[start:min(start+oa.blockSize, len(input))]
}

// accumulate adds one block result, taken from the work buffer through part,
// into out at offset.
func (oa *OverlapAdd) accumulate(out []float64, offset, blockLen int, part func(complex128) float64) {
	if blockLen == 0 {
		return
	}
	n := min(blockLen+oa.kernelLen-1, len(out)-offset)
	for i := 0; i < n; i++ {
		out[offset+i] += part(oa.work[i])
	}
}

func realPart(c complex128) float64 { return real(c) }

func imagPart(c complex128) float64 { return imag(c) }

// OverlapAddConvolve performs one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
