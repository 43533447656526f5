package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-motion/internal/testutil"
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
			name:     "4-tap box",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1, 1},
			expected: []float64{1, 3, 6, 6, 5, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-10)
		})
	}
}

func TestDirectPathsAgree(t *testing.T) {
	signal := testutil.DeterministicNoise(17, 1.0, 257)
	kernel := testutil.DeterministicNoise(23, 0.5, 31)

	n := len(signal)
	m := len(kernel)

	fast := make([]float64, n+m-1)
	directToSIMD(fast, signal, kernel, n, m)

	slow := make([]float64, n+m-1)
	directToScalar(slow, signal, kernel, n, m)

	testutil.RequireSliceNearlyEqual(t, fast, slow, 1e-12)
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

func TestFFTConvolveMatchesDirect(t *testing.T) {
	signal := testutil.DeterministicNoise(7, 1.0, 300)
	kernel := testutil.DeterministicNoise(11, 0.5, 90)

	direct, err := Direct(signal, kernel)
	if err != nil {
		t.Fatalf("Direct: %v", err)
	}

	fft, err := FFTConvolve(signal, kernel)
	if err != nil {
		t.Fatalf("FFTConvolve: %v", err)
	}

	maxDiff, err := testutil.MaxAbsDiff(fft, direct)
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}
	if maxDiff > 1e-9 {
		t.Fatalf("max diff = %g, want <= 1e-9", maxDiff)
	}
	testutil.RequireFinite(t, fft)
}

func TestConvolveSelectsFFTForLongKernels(t *testing.T) {
	signal := testutil.DeterministicNoise(3, 1.0, 256)

	kernel := make([]float64, 100)
	for i := range kernel {
		kernel[i] = 1 / float64(i+1)
	}

	got, err := Convolve(signal, kernel)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}

	want, err := Direct(signal, kernel)
	if err != nil {
		t.Fatalf("Direct: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestConvolveSwapsShorterFirst(t *testing.T) {
	a := []float64{1, 2, 1}
	b := []float64{1, 2, 3, 4, 5}

	ab, err := Convolve(a, b)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}

	ba, err := Convolve(b, a)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
}

func TestConvolveModeLengths(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{1, 1, 1}

	full, err := ConvolveMode(a, b, ModeFull)
	if err != nil {
		t.Fatalf("ModeFull: %v", err)
	}
	if len(full) != len(a)+len(b)-1 {
		t.Fatalf("full length = %d, want %d", len(full), len(a)+len(b)-1)
	}

	same, err := ConvolveMode(a, b, ModeSame)
	if err != nil {
		t.Fatalf("ModeSame: %v", err)
	}
	if len(same) != len(a) {
		t.Fatalf("same length = %d, want %d", len(same), len(a))
	}

	valid, err := ConvolveMode(a, b, ModeValid)
	if err != nil {
		t.Fatalf("ModeValid: %v", err)
	}
	if len(valid) != len(a)-len(b)+1 {
		t.Fatalf("valid length = %d, want %d", len(valid), len(a)-len(b)+1)
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 8: 8, 9: 16, 1000: 1024}

	for n, want := range cases {
		if got := nextPowerOf2(n); got != want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", n, got, want)
		}
	}
}
