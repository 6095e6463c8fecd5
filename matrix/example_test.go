// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvspline/matrix"
)

// ExampleSolveTridiagonal solves a small dominant system and checks it by substitution.
func ExampleSolveTridiagonal() {
	A, _ := matrix.NewDenseFromRows([][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 4},
	})
	b := []float64{5, 10, 5}

	x, err := matrix.SolveTridiagonal(A, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x = [%.4f %.4f %.4f]\n", x[0], x[1], x[2])

	r, _ := matrix.Residual(A, x, b)
	fmt.Printf("max residual < 1e-12: %v\n", MaxAbs(r) < 1e-12)

	// Output:
	// x = [2.1429 3.5714 2.1429]
	// max residual < 1e-12: true
}

// ExampleIsTridiagonalDominant shows a rejected matrix and the legacy zero fill.
func ExampleIsTridiagonalDominant() {
	A, _ := matrix.NewDenseFromRows([][]float64{
		{1, 5, 0},
		{1, 1, 1},
		{0, 1, 1},
	})
	ok, _ := matrix.IsTridiagonalDominant(A)
	fmt.Println("dominant:", ok)

	x, err := matrix.SolveTridiagonal(A, []float64{1, 1, 1}, matrix.WithZeroFillOnViolation())
	fmt.Println(x, errors.Is(err, matrix.ErrNotDiagonallyDominant))

	// Output:
	// dominant: false
	// [0 0 0] true
}
