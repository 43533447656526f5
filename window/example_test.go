package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-motion/window"
)

func ExampleBuild() {
	// A probe spanning 0..100 um, binned every 20 um, with contacts at
	// the outermost bin centers.
	edges := []float64{0, 20, 40, 60, 80, 100}
	contacts := []float64{10, 90}

	set, _ := window.Build(contacts, edges,
		window.WithShape(window.ShapeGaussian),
		window.WithStep(40),
		window.WithSigma(20),
	)

	fmt.Printf("Windows: %d\n", set.Len())
	fmt.Printf("Centers: %.0f\n", set.Centers)

	// Output:
	// Windows: 3
	// Centers: [10 50 90]
}

func ExampleBuild_rigid() {
	edges := []float64{0, 20, 40, 60, 80, 100}

	set, _ := window.Build(nil, edges, window.WithRigid())

	weights := set.Weights.RawRowView(0)
	fmt.Printf("Windows: %d\n", set.Len())
	fmt.Printf("Center: %.0f\n", set.Centers[0])
	fmt.Printf("Weights: %.0f\n", weights)

	// Output:
	// Windows: 1
	// Center: 50
	// Weights: [1 1 1 1 1]
}

func ExampleDomains() {
	edges := []float64{0, 20, 40, 60, 80, 100}

	set, _ := window.Build([]float64{10, 90}, edges,
		window.WithShape(window.ShapeTriangle),
		window.WithStep(40),
		window.WithSigma(80),
	)

	domains, _ := set.Domains()
	for i, d := range domains {
		fmt.Printf("window %d covers bins [%d, %d)\n", i, d.Start, d.End)
	}

	// Output:
	// window 0 covers bins [0, 2)
	// window 1 covers bins [1, 4)
	// window 2 covers bins [3, 5)
}
