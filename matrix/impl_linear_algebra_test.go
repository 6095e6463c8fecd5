// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the verification kernels
// (MatVec, Residual) used to check tridiagonal solutions.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvspline/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{6, 6},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestMatVec_FastPath_5x4_Correctness(t *testing.T) {
	t.Parallel()
	const r, c = 5, 4
	M := MustDense(t, r, c)
	// M[i,j] = i - 2j, with zeros on the j == i/2 entries exercising the skip
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, M, i, j, float64(i-2*j))
		}
	}
	x := []float64{1, 2, 3, 4}
	y, err := matrix.MatVec(M, x)
	require.NoError(t, err)

	var sum float64
	for i = 0; i < r; i++ {
		sum = 0
		for j = 0; j < c; j++ {
			sum += float64(i-2*j) * x[j]
		}
		if y[i] != sum {
			t.Fatalf("y[%d]: want %.6g, got %.6g", i, sum, y[i])
		}
	}
}

func TestMatVec_Fallback_Wrapped(t *testing.T) {
	t.Parallel()
	sub, diag, sup, _ := RandomDominantBands(12, 7)
	A := MustTridiagonal(t, sub, diag, sup)
	x := make([]float64, 12)
	for i := range x {
		x[i] = float64(i%5) - 2.5
	}

	y1, err := matrix.MatVec(A, x)
	require.NoError(t, err)
	y2, err := matrix.MatVec(hide{A}, x)
	require.NoError(t, err)
	// same row order and zero entries contribute exactly 0
	require.Equal(t, y1, y2)
}

func TestMatVec_Errors(t *testing.T) {
	t.Parallel()
	M := MustDense(t, 3, 4)

	_, err := matrix.MatVec(M, []float64{1, 2, 3}) // len=3, need 4
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(M, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestResidual_SolvedSystem checks that the solver output makes m·x − b vanish
// on both the fast and the fallback path.
func TestResidual_SolvedSystem(t *testing.T) {
	t.Parallel()
	sub, diag, sup, b := RandomDominantBands(40, 11)
	A := MustTridiagonal(t, sub, diag, sup)
	x, err := matrix.SolveTridiagonal(A, b)
	require.NoError(t, err)

	for _, m := range []matrix.Matrix{A, hide{A}} {
		r, err := matrix.Residual(m, x, b)
		require.NoError(t, err)
		require.LessOrEqual(t, MaxAbs(r), 1e-12)
	}

	_, err = matrix.Residual(A, x, b[:3])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Residual(A, x[:3], b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
