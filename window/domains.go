package window

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Range is a half-open index interval [Start, End) over spatial bins.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bins covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Domains returns, for every window row in weights, the half-open index
// interval from its first to one past its last non-zero weight.
// A window with no non-zero weight is an error.
func Domains(weights *mat.Dense) ([]Range, error) {
	rows, cols := weights.Dims()

	domains := make([]Range, rows)
	for i := 0; i < rows; i++ {
		first, last := -1, -1
		for j := 0; j < cols; j++ {
			if weights.At(i, j) != 0 {
				if first < 0 {
					first = j
				}
				last = j
			}
		}

		if first < 0 {
			return nil, fmt.Errorf("%w: window %d", ErrAllZeroWindow, i)
		}

		domains[i] = Range{Start: first, End: last + 1}
	}

	return domains, nil
}

// Domains returns the non-zero index range of every window in the set.
func (s *Set) Domains() ([]Range, error) {
	return Domains(s.Weights)
}
