package pca_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alexthie/cqs-machine-learning/pca"
)

// ////////////////////////////////////////////////////////////////////////////
// ExamplePCA
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four observations of two perfectly correlated features (y = x).
//	All variance lies along the diagonal, so a single component captures
//	100% of it and the 2-D table compresses to one coordinate per row.
//
// Use case:
//
//	The smallest possible dimensionality-reduction demo: fit, inspect the
//	variance split, pick K by threshold, project.
func ExamplePCA() {
	x := mat.NewDense(4, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
		4, 4,
	})

	p := pca.New()
	if err := p.Fit(x); err != nil {
		fmt.Println("error:", err)

		return
	}

	ratios, _ := p.ExplainedVarianceRatio()
	fmt.Printf("explained: PC1=%.2f PC2=%.2f\n", ratios[0], ratios[1])

	k, _ := p.ComponentsForVariance(0.95)
	fmt.Println("components for 95%:", k)

	y, _ := p.Transform(x, k)
	fmt.Printf("first score: %.4f\n", y.At(0, 0))
	// Output:
	// explained: PC1=1.00 PC2=0.00
	// components for 95%: 1
	// first score: -2.1213
}

// ExamplePCA_varianceTable prints the variance bookkeeping for a small
// three-feature table, the shape of a classic scree report.
func ExamplePCA_varianceTable() {
	x := mat.NewDense(5, 3, []float64{
		2.5, 2.4, 0.5,
		0.5, 0.7, 1.9,
		2.2, 2.9, 0.4,
		1.9, 2.2, 0.8,
		3.1, 3.0, 0.2,
	})

	p := pca.New()
	if err := p.Fit(x); err != nil {
		fmt.Println("error:", err)

		return
	}

	table, _ := p.VarianceTable()
	for _, row := range table {
		fmt.Printf("PC%d ratio=%.3f cumulative=%.3f\n", row.Component, row.Ratio, row.Cumulative)
	}
	k, _ := p.ComponentsForVariance(0.99)
	fmt.Println("K(0.99) =", k)
}
