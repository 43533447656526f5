package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-motion/conv"
)

func ExampleCorrelate() {
	// Find how far an activity bump moved between two histograms.
	histogram := []float64{0, 0, 1, 2, 1, 0, 0, 0}
	reference := []float64{1, 2, 1}

	corr, _ := conv.Correlate(histogram, reference)

	peakIdx, peakVal := conv.FindPeak(corr)
	lag := conv.LagFromIndex(peakIdx, len(reference))

	fmt.Printf("Peak at index %d (lag %d) with value %.2f\n", peakIdx, lag, peakVal)

	// Output:
	// Peak at index 4 (lag 2) with value 6.00
}

func ExampleCorrelateBatch() {
	// Smooth two depth histograms with a shared box kernel.
	histograms := [][]float64{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
	}
	kernels := [][]float64{
		{1, 1, 1},
	}

	out, _ := conv.CorrelateBatch(histograms, kernels, conv.PadSame)

	fmt.Printf("Batches: %d, filters: %d, length: %d\n", len(out), len(out[0]), len(out[0][0]))
	fmt.Printf("First row: %.0f\n", out[0][0])

	// Output:
	// Batches: 2, filters: 1, length: 5
	// First row: [3 6 9 12 9]
}

func ExampleCorrelateBatch_valid() {
	// Valid padding trims positions where the kernel hangs off the edge.
	histograms := [][]float64{{1, 1, 1, 1, 1, 1, 1}}
	kernels := [][]float64{{1, 1, 1, 1, 1}}

	out, _ := conv.CorrelateBatch(histograms, kernels, conv.PadValid)

	fmt.Printf("Input length: %d\n", len(histograms[0]))
	fmt.Printf("Output length: %d\n", len(out[0][0]))

	// Output:
	// Input length: 7
	// Output length: 3
}
