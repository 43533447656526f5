package conv

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// FFTConvolve performs linear convolution of a and b via the FFT.
// Returns the full result of length len(a) + len(b) - 1.
//
// Both inputs are zero-padded to the next power of two covering the full
// output, multiplied in the frequency domain and transformed back.
func FFTConvolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	outputLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(outputLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)

	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, aFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, outputLen)
	for i := range result {
		result[i] = real(resultTime[i])
	}

	return result, nil
}

// CorrelateFFT computes the full cross-correlation of a and b using the FFT.
// This is more efficient than CorrelateDirect for longer signals.
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	// For FFT-based correlation: IFFT(FFT(a) * conj(FFT(b)))
	n := len(a)
	m := len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i := 0; i < n; i++ {
		aPadded[i] = complex(a[i], 0)
	}
	for i := 0; i < m; i++ {
		bPadded[i] = complex(b[i], 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)

	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	resultFreq := make([]complex128, fftSize)
	for i := range resultFreq {
		bConj := complex(real(bFreq[i]), -imag(bFreq[i]))
		resultFreq[i] = aFreq[i] * bConj
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, resultFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// The circular correlation holds positive lags at the start of the
	// buffer and negative lags at the end; rearrange to linear layout.
	result := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		result[m-1+i] = real(resultTime[i])
	}
	for i := 0; i < m-1; i++ {
		result[i] = real(resultTime[fftSize-m+1+i])
	}

	return result, nil
}
