package lineshape

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-xrf/internal/testutil"
)

func TestGaussian(t *testing.T) {
	if got := Gaussian(3, 3, 0.01); got != 1 {
		t.Fatalf("Gaussian at center = %v, want 1", got)
	}
	want := math.Exp(-1)
	if got := Gaussian(3.1, 3, 0.01); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Gaussian one width away = %v, want %v", got, want)
	}
}

func TestAddGaussianAccumulates(t *testing.T) {
	x := testutil.Axis(0, 2, 201)
	dst := make([]float64, len(x))
	AddGaussian(dst, x, 1, 2, 0.05)
	AddGaussian(dst, x, 1, 1, 0.05)
	AddGaussian(dst, x, 1, 0, 0.05)

	want := testutil.GaussianLine(x, 1, 3, 0.05)
	testutil.RequireSliceNearlyEqual(t, dst, want, 1e-12)
}

func TestSumDirect(t *testing.T) {
	x := testutil.Axis(0, 10, 1001)
	lines := []Line{{Center: 2, Amplitude: 1}, {Center: 6.4, Amplitude: 0.5}}
	got := SumDirect(x, lines, 0.01)

	want := testutil.GaussianLine(x, 2, 1, 0.01)
	second := testutil.GaussianLine(x, 6.4, 0.5, 0.01)
	for i := range want {
		want[i] += second[i]
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	if got := SumDirect(x, nil, 0.01); len(got) != len(x) || got[200] != 0 {
		t.Fatal("expected zero spectrum for no lines")
	}
	if got := SumDirect(nil, lines, 0.01); len(got) != 0 {
		t.Fatal("expected empty output for empty axis")
	}
}

func TestSumConvolvedMatchesDirect(t *testing.T) {
	tests := []struct {
		name  string
		hi    float64
		n     int
		width float64
		lines []Line
	}{
		{
			name:  "iron at 20 keV",
			hi:    20,
			n:     2000,
			width: 0.01,
			lines: []Line{{6.4038, 1}, {6.3908, 0.5}, {7.058, 0.15}, {0.705, 0.01}},
		},
		{
			name:  "line beyond axis end",
			hi:    10,
			n:     1000,
			width: 0.02,
			lines: []Line{{10.05, 1}, {3, 0.4}},
		},
		{
			name:  "wide kernel",
			hi:    5,
			n:     500,
			width: 0.5,
			lines: []Line{{2.5, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := testutil.Axis(0, tt.hi, tt.n)
			want := SumDirect(x, tt.lines, tt.width)
			got, err := SumConvolved(x, tt.lines, tt.width)
			if err != nil {
				t.Fatalf("SumConvolved: %v", err)
			}
			testutil.RequireIntensities(t, got)

			diff, at, err := testutil.MaxAbsDiff(got, want)
			if err != nil {
				t.Fatal(err)
			}
			if diff > 5e-3 {
				t.Fatalf("max deviation from direct sum = %v at sample %d", diff, at)
			}
		})
	}
}

func TestSumConvolvedFallbacks(t *testing.T) {
	lines := []Line{{Center: 0, Amplitude: 1}}

	zeroSpan := []float64{0, 0, 0}
	got, err := SumConvolved(zeroSpan, lines, 0.01)
	if err != nil {
		t.Fatalf("zero span: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 1, 1}, 1e-12)

	single, err := SumConvolved([]float64{0}, lines, 0.01)
	if err != nil || len(single) != 1 || single[0] != 1 {
		t.Fatalf("single sample = %v, %v", single, err)
	}
}

func TestSumConvolvedRejectsNonUniformAxis(t *testing.T) {
	x := []float64{0, 1, 3, 4}
	_, err := SumConvolved(x, []Line{{Center: 1, Amplitude: 1}}, 0.1)
	if !errors.Is(err, ErrNonUniformAxis) {
		t.Fatalf("expected ErrNonUniformAxis, got %v", err)
	}
}
