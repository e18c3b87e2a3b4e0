package conv

import (
	"errors"
	"math"
	"testing"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
		{
			name:     "sparse input",
			a:        []float64{0, 0, 2, 0},
			b:        []float64{1, 3},
			expected: []float64{0, 0, 2, 6, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(result) != len(tt.expected) {
				t.Fatalf("length mismatch: got %d, expected %d", len(result), len(tt.expected))
			}

			for i := range result {
				if math.Abs(result[i]-tt.expected[i]) > 1e-10 {
					t.Errorf("result[%d] = %v, expected %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{}, []float64{1, 2})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestOverlapAddMatchesDirect(t *testing.T) {
	signal := makeTestSignal(1500)
	for _, kernelLen := range []int{1, 7, 64, 301} {
		kernel := makeTestKernel(kernelLen)

		want, err := Direct(signal, kernel)
		if err != nil {
			t.Fatalf("Direct: %v", err)
		}

		got, err := OverlapAddConvolve(signal, kernel)
		if err != nil {
			t.Fatalf("OverlapAddConvolve: %v", err)
		}

		if len(got) != len(want) {
			t.Fatalf("kernel %d: length %d, want %d", kernelLen, len(got), len(want))
		}
		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-9 {
				t.Fatalf("kernel %d: index %d got %v want %v", kernelLen, i, got[i], want[i])
			}
		}
	}
}

func TestOverlapAddSmallBlocks(t *testing.T) {
	oa, err := NewOverlapAdd([]float64{1, 0.5}, 4)
	if err != nil {
		t.Fatalf("NewOverlapAdd: %v", err)
	}
	if oa.FFTSize() != 8 {
		t.Fatalf("FFTSize = %d, want 8", oa.FFTSize())
	}

	got, err := oa.Process([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	want := []float64{1, 2.5, 4, 1.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Two, three and four blocks exercise both halves of the packed
	// transform, including a final pair with no imaginary block.
	for _, n := range []int{8, 9, 13, 16} {
		signal := makeTestSignal(n)
		want, _ := Direct(signal, []float64{1, 0.5})
		got, err := oa.Process(signal)
		if err != nil {
			t.Fatalf("Process(%d): %v", n, err)
		}
		if len(got) != len(want) {
			t.Fatalf("n=%d: length %d, want %d", n, len(got), len(want))
		}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Fatalf("n=%d index %d: got %v want %v", n, i, got[i], want[i])
			}
		}
	}
}

func TestSame(t *testing.T) {
	got, err := Same([]float64{0, 0, 1, 0, 0, 2}, []float64{0.5, 1, 0.5})
	if err != nil {
		t.Fatalf("Same: %v", err)
	}
	want := []float64{0, 0.5, 1, 0.5, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := Same([]float64{1, 2}, []float64{1, 1}); !errors.Is(err, ErrEvenKernel) {
		t.Errorf("expected ErrEvenKernel, got %v", err)
	}
}

func TestSameLongKernelIsCentred(t *testing.T) {
	signal := make([]float64, 400)
	signal[200] = 1
	kernel := makeTestKernel(101)

	got, err := Same(signal, kernel)
	if err != nil {
		t.Fatalf("Same: %v", err)
	}
	for i := range got {
		if got[i] > got[200]+1e-12 {
			t.Fatalf("maximum at %d, want 200", i)
		}
	}
	if math.Abs(got[200]-1) > 1e-9 || math.Abs(got[190]-got[210]) > 1e-9 {
		t.Fatalf("response not centred: got[190]=%v got[200]=%v got[210]=%v", got[190], got[200], got[210])
	}
}

func TestOverlapAddErrors(t *testing.T) {
	if _, err := NewOverlapAdd(nil, 0); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("expected ErrEmptyKernel, got %v", err)
	}

	oa, err := NewOverlapAdd([]float64{1}, 0)
	if err != nil {
		t.Fatalf("NewOverlapAdd: %v", err)
	}
	if _, err := oa.Process(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestAutoSelectsEquivalentResult(t *testing.T) {
	signal := makeTestSignal(200)
	for _, n := range []int{5, 80} {
		kernel := makeTestKernel(n)
		want, _ := Direct(signal, kernel)
		got, err := Auto(signal, kernel)
		if err != nil {
			t.Fatalf("Auto: %v", err)
		}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-9 {
				t.Fatalf("kernel %d index %d: got %v want %v", n, i, got[i], want[i])
			}
		}
	}
}

func makeTestSignal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(0.05*float64(i)) + 0.25*math.Cos(0.31*float64(i))
	}
	return out
}

func makeTestKernel(n int) []float64 {
	out := make([]float64, n)
	center := float64(n-1) / 2
	for i := range out {
		d := float64(i) - center
		out[i] = math.Exp(-d * d / float64(n+1))
	}
	return out
}
