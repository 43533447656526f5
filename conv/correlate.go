package conv

import "math"

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1.
// Output index k corresponds to lag k - (len(b) - 1).
//
// Cross-correlation is related to convolution: corr(a,b) = conv(a, reverse(b))
// For real signals, this is equivalent to sliding b over a and computing the dot product.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return Convolve(a, reversed(b))
}

// CorrelateDirect computes cross-correlation using direct computation.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return Direct(a, reversed(b))
}

// CorrelateMode computes cross-correlation with specified output mode.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// CorrelateNormalized computes normalized cross-correlation.
// The result is normalized by the product of the L2 norms of a and b,
// producing values in the range [-1, 1].
func CorrelateNormalized(a, b []float64) ([]float64, error) {
	result, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	normProduct := l2Norm(a) * l2Norm(b)
	if normProduct == 0 {
		return result, nil
	}

	for i := range result {
		result[i] /= normProduct
	}

	return result, nil
}

// FindPeak finds the index and value of the maximum in a correlation result.
// Useful for finding the displacement that best aligns two signals.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]

	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation result index to a lag value.
// For a correlation of signals with lengths lenA and lenB,
// the lag at index i is i - (lenB - 1).
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag value to a correlation result index.
// Returns the index in the correlation result array for the given lag.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}

func reversed(b []float64) []float64 {
	out := make([]float64, len(b))
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return out
}

// l2Norm computes the L2 (Euclidean) norm of a signal.
func l2Norm(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum)
}
