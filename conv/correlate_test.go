package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-motion/internal/testutil"
)

func TestCorrelateImpulseLag(t *testing.T) {
	a := testutil.Impulse(4, 2)
	b := testutil.Impulse(3, 0)

	corr, err := Correlate(a, b)
	if err != nil {
		t.Fatalf("Correlate: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, corr, []float64{0, 0, 0, 0, 1, 0}, 1e-12)

	idx, val := FindPeak(corr)
	if idx != 4 || val != 1 {
		t.Fatalf("FindPeak = (%d, %v), want (4, 1)", idx, val)
	}

	if lag := LagFromIndex(idx, len(b)); lag != 2 {
		t.Fatalf("LagFromIndex = %d, want 2", lag)
	}

	if back := IndexFromLag(2, len(b)); back != idx {
		t.Fatalf("IndexFromLag = %d, want %d", back, idx)
	}
}

func TestCorrelateModeSame(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 1, 1}

	got, err := CorrelateMode(a, b, ModeSame)
	if err != nil {
		t.Fatalf("CorrelateMode: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 6, 9, 12, 9}, 1e-12)
}

func TestCorrelateModeValid(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 1, 1}

	got, err := CorrelateMode(a, b, ModeValid)
	if err != nil {
		t.Fatalf("CorrelateMode: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{6, 9, 12}, 1e-12)
}

func TestCorrelateFFTMatchesDirect(t *testing.T) {
	a := testutil.DeterministicNoise(13, 1.0, 120)
	b := testutil.DeterministicNoise(41, 1.0, 27)

	want, err := CorrelateDirect(a, b)
	if err != nil {
		t.Fatalf("CorrelateDirect: %v", err)
	}

	got, err := CorrelateFFT(a, b)
	if err != nil {
		t.Fatalf("CorrelateFFT: %v", err)
	}

	maxDiff, err := testutil.MaxAbsDiff(got, want)
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}
	if maxDiff > 1e-9 {
		t.Fatalf("max diff = %g, want <= 1e-9", maxDiff)
	}
}

func TestCorrelateNormalizedRange(t *testing.T) {
	a := []float64{1, 2, 3, 2, 1}

	corr, err := CorrelateNormalized(a, a)
	if err != nil {
		t.Fatalf("CorrelateNormalized: %v", err)
	}

	// Zero lag of a self-correlation is exactly 1.
	zeroLag := corr[len(a)-1]
	if math.Abs(zeroLag-1) > 1e-12 {
		t.Fatalf("zero-lag = %v, want 1", zeroLag)
	}

	for i, v := range corr {
		if v > 1+1e-12 || v < -1-1e-12 {
			t.Fatalf("corr[%d] = %v outside [-1, 1]", i, v)
		}
	}
}

func TestCorrelateNormalizedZeroSignal(t *testing.T) {
	corr, err := CorrelateNormalized([]float64{0, 0, 0}, []float64{0, 0})
	if err != nil {
		t.Fatalf("CorrelateNormalized: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, corr, []float64{0, 0, 0, 0}, 1e-12)
}

func TestCorrelateErrors(t *testing.T) {
	if _, err := Correlate(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	if _, err := Correlate([]float64{1}, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestFindPeakEmpty(t *testing.T) {
	idx, val := FindPeak(nil)
	if idx != -1 || val != 0 {
		t.Fatalf("FindPeak(nil) = (%d, %v), want (-1, 0)", idx, val)
	}
}
