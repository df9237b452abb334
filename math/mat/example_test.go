package mat_test

import (
	"fmt"

	"github.com/phil-mansfield/cspline/math/mat"
)

func ExampleFactorize() {
	luf, err := mat.Factorize(
		[]float64{2, 2},     // sub-diagonal
		[]float64{10, 8, 8}, // diagonal
		[]float64{3, 2},     // super-diagonal
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	xs, err := luf.SolveVector([]float64{28.5, 33, -6})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("alpha = %.4f\n", luf.Alpha)
	fmt.Printf("x = %.4f\n", xs)

	// Output:
	// alpha = [10.0000 7.4000 7.4595]
	// x = [1.5978 4.1739 -1.7935]
}

func ExampleFactorize_singular() {
	_, err := mat.Factorize([]float64{2, 2}, []float64{0, 8, 8}, []float64{3, 2})
	fmt.Println(err)

	// Output:
	// mat.Factorize: singular pivot: pivot alpha[0] is zero
}
