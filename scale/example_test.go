package scale_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alexthie/cqs-machine-learning/scale"
)

// ExampleScaler demonstrates fit, transform and exact inversion on a
// small two-feature table.
func ExampleScaler() {
	x := mat.NewDense(4, 2, []float64{
		180, 80,
		160, 60,
		170, 70,
		150, 50,
	})

	s := scale.NewScaler()
	z, err := s.FitTransform(x)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("mean: %v\n", s.Mean())
	fmt.Printf("z[0]: [%.3f %.3f]\n", z.At(0, 0), z.At(0, 1))

	back, _ := s.InverseTransform(z)
	fmt.Printf("back[0]: [%.0f %.0f]\n", back.At(0, 0), back.At(0, 1))
	// Output:
	// mean: [165 65]
	// z[0]: [1.162 1.162]
	// back[0]: [180 80]
}
