package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/standwave/matrix"
)

// ExampleHadamard builds a separable product of a column and a row profile,
// the same shape of computation the wave evaluator performs per slice.
func ExampleHadamard() {
	rowProfile, _ := matrix.NewDenseFrom(2, 2, []float64{1, 1, 2, 2})
	colProfile, _ := matrix.NewDenseFrom(2, 2, []float64{1, 3, 1, 3})

	prod, _ := matrix.Hadamard(rowProfile, colProfile)
	lo, hi, _ := matrix.Extrema(prod)

	fmt.Print(prod.(*matrix.Dense).String())
	fmt.Println("min:", lo, "max:", hi)
	// Output:
	// [1, 3]
	// [2, 6]
	// min: 1 max: 6
}
