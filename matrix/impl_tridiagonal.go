// SPDX-License-Identifier: MIT
// Package matrix - tridiagonal kernels (dominance check & Thomas sweep).
//
// Purpose:
//   - Extract the three central diagonals of a square matrix into bands.
//   - Decide the diagonal-dominance precondition that makes elimination
//     without pivoting safe.
//   - Solve A·x = b in O(n) with the Thomas algorithm ("through method").
//
// Band layout (shared by every function in this file):
//   - sub[i]  = a[i][i-1]  for i ≥ 1; sub[0]   is unused and read as 0.
//   - diag[i] = a[i][i].
//   - sup[i]  = a[i][i+1]  for i ≤ n-2; sup[n-1] is unused and read as 0.
//   - All three bands have length n.
//
// Determinism:
//   - Fixed forward (0→n-1) and backward (n-1→0) sweeps, no pivoting, no maps.
//
// AI-Hints:
//   - Pass *Dense to SolveTridiagonal to extract bands from the flat buffer.
//   - When you already hold bands, call SolveBands directly and skip the n×n matrix.

package matrix

import (
	"fmt"
	"math"
)

// TridiagonalBands extracts the sub-, main- and super-diagonal of a square matrix.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: *Dense fast-path reads the flat buffer at offsets i*n+i-1, i*n+i, i*n+i+1;
//     otherwise falls back to At.
//
// Behavior highlights:
//   - Entries outside the band are never inspected.
//   - The input is not mutated.
//
// Returns:
//   - sub, diag, sup: three slices of length n (see band layout above).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "TridiagonalBands").
//
// Complexity:
//   - Time O(n), Space O(n).
func TridiagonalBands(m Matrix) (sub, diag, sup []float64, err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opBands, err)
	}
	n := m.Rows()
	sub = make([]float64, n)
	diag = make([]float64, n)
	sup = make([]float64, n)

	// Fast-path: direct flat reads.
	if d, ok := m.(*Dense); ok {
		var i, base int
		for i = 0; i < n; i++ {
			base = i * n
			diag[i] = d.data[base+i]
			if i > 0 {
				sub[i] = d.data[base+i-1]
			}
			if i < n-1 {
				sup[i] = d.data[base+i+1]
			}
		}

		return sub, diag, sup, nil
	}

	// Fallback: bounds-safe At calls.
	var i int
	for i = 0; i < n; i++ {
		if diag[i], err = m.At(i, i); err != nil {
			return nil, nil, nil, matrixErrorf(opBands, err)
		}
		if i > 0 {
			if sub[i], err = m.At(i, i-1); err != nil {
				return nil, nil, nil, matrixErrorf(opBands, err)
			}
		}
		if i < n-1 {
			if sup[i], err = m.At(i, i+1); err != nil {
				return nil, nil, nil, matrixErrorf(opBands, err)
			}
		}
	}

	return sub, diag, sup, nil
}

// IsTridiagonalDominant reports whether m satisfies the dominance precondition
// of the Thomas sweep.
// Implementation:
//   - Stage 1: extract bands (O(n)).
//   - Stage 2: apply the row rules below in i order, stopping at the first failure.
//
// Behavior highlights:
//   - (a) |a00| ≥ |a01|.
//   - (b) |a[n-1][n-1]| ≥ |a[n-1][n-2]|.
//   - (c) |a_ii| ≥ |a_i,i-1| + |a_i,i+1| for every interior row.
//   - (d) no diagonal entry equals zero.
//   - A 1×1 matrix is dominant iff its single entry is non-zero.
//   - Comparisons involving NaN are false, so a NaN band entry fails the check.
//
// Returns:
//   - bool: true when every rule holds.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch only; a failed rule is (false, nil).
//
// Complexity:
//   - Time O(n), Space O(n) for the extracted bands.
func IsTridiagonalDominant(m Matrix) (bool, error) {
	sub, diag, sup, err := TridiagonalBands(m)
	if err != nil {
		return false, matrixErrorf(opIsTridiagonal, err)
	}

	return bandsDominant(sub, diag, sup), nil
}

// bandsDominant evaluates rules (a)-(d) on bands of equal length n ≥ 1.
func bandsDominant(sub, diag, sup []float64) bool {
	n := len(diag)
	var i int
	// (d) every pivot candidate must be non-zero. Written as !(x != 0) so NaN fails too.
	for i = 0; i < n; i++ {
		if !(diag[i] != ZeroPivot) {
			return false
		}
	}
	if n == 1 {
		return true
	}
	// (a) first row.
	if !(math.Abs(diag[0]) >= math.Abs(sup[0])) {
		return false
	}
	// (c) interior rows.
	for i = 1; i < n-1; i++ {
		if !(math.Abs(diag[i]) >= math.Abs(sub[i])+math.Abs(sup[i])) {
			return false
		}
	}

	// (b) last row.
	return math.Abs(diag[n-1]) >= math.Abs(sub[n-1])
}

// SolveTridiagonal solves m·x = rhs for a tridiagonal diagonally dominant m.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); ValidateVecLen(rhs, n).
//   - Stage 2: TridiagonalBands(m), then the shared Thomas kernel (see SolveBands).
//
// Behavior highlights:
//   - Neither m nor rhs is mutated; x is freshly allocated.
//   - Only the three central diagonals are read.
//
// Inputs:
//   - m: n×n matrix (n ≥ 1).
//   - rhs: right-hand side of length n.
//   - opts: WithZeroFillOnViolation, WithNoValidateNaNInf.
//
// Returns:
//   - []float64: solution vector of length n.
//
// Errors (priority order):
//   - ErrNilMatrix, ErrDimensionMismatch (shape / rhs length).
//   - ErrNaNInf (non-finite band or rhs entry, when validation is on).
//   - ErrNotDiagonallyDominant (zeros also returned under WithZeroFillOnViolation).
//   - ErrSingular (zero pivot or zero final denominator).
//   - ErrNumericInstability (non-finite coefficient or component).
//
// Determinism:
//   - Fixed forward then backward sweep; bit-identical across runs.
//
// Complexity:
//   - Time O(n), Space O(n).
//
// AI-Hints:
//   - For repeated solves on one matrix, extract bands once and call SolveBands.
func SolveTridiagonal(m Matrix, rhs []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSolveTridiagonal, err)
	}
	if err := ValidateVecLen(rhs, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolveTridiagonal, err)
	}
	sub, diag, sup, err := TridiagonalBands(m)
	if err != nil {
		return nil, matrixErrorf(opSolveTridiagonal, err)
	}
	x, err := solveBands(sub, diag, sup, rhs, gatherOptions(opts...))
	if err != nil {
		return x, matrixErrorf(opSolveTridiagonal, err)
	}

	return x, nil
}

// SolveBands runs the Thomas sweep directly on band slices.
// Implementation:
//   - Stage 1: len(diag) ≥ 1; sub, sup, rhs have length len(diag).
//   - Stage 2: optional finite scan, dominance check, forward sweep, back substitution.
//
// Behavior highlights:
//   - Forward sweep: A0 = −sup0/diag0, B0 = rhs0/diag0; for 1 ≤ i ≤ n−2:
//     e = sub_i·A_{i−1} + diag_i, A_i = −sup_i/e, B_i = (rhs_i − sub_i·B_{i−1})/e.
//   - Last unknown: x_{n−1} = (rhs_{n−1} − sub_{n−1}·B_{n−2}) / (diag_{n−1} + sub_{n−1}·A_{n−2}).
//   - Back substitution: x_i = A_i·x_{i+1} + B_i.
//
// Errors:
//   - As SolveTridiagonal; ErrInvalidDimensions for empty diag.
//
// Complexity:
//   - Time O(n), Space O(n).
func SolveBands(sub, diag, sup, rhs []float64, opts ...Option) ([]float64, error) {
	if len(diag) == 0 {
		return nil, matrixErrorf(opSolveBands, ErrInvalidDimensions)
	}
	n := len(diag)
	if err := ValidateVecLen(sub, n); err != nil {
		return nil, matrixErrorf(opSolveBands, fmt.Errorf("sub: %w", err))
	}
	if err := ValidateVecLen(sup, n); err != nil {
		return nil, matrixErrorf(opSolveBands, fmt.Errorf("sup: %w", err))
	}
	if err := ValidateVecLen(rhs, n); err != nil {
		return nil, matrixErrorf(opSolveBands, fmt.Errorf("rhs: %w", err))
	}
	x, err := solveBands(sub, diag, sup, rhs, gatherOptions(opts...))
	if err != nil {
		return x, matrixErrorf(opSolveBands, err)
	}

	return x, nil
}

// solveBands is the shared kernel; inputs are length-checked by the callers.
func solveBands(sub, diag, sup, rhs []float64, o Options) ([]float64, error) {
	n := len(diag)

	// Numeric policy: reject NaN/Inf before touching the sweep.
	if o.validateNaNInf {
		if err := ValidateFinite(diag); err != nil {
			return nil, fmt.Errorf("diag: %w", err)
		}
		// Padding cells sub[0] and sup[n-1] are outside the band; skip them.
		if err := ValidateFinite(sub[1:]); err != nil {
			return nil, fmt.Errorf("sub: %w", err)
		}
		if err := ValidateFinite(sup[:n-1]); err != nil {
			return nil, fmt.Errorf("sup: %w", err)
		}
		if err := ValidateFinite(rhs); err != nil {
			return nil, fmt.Errorf("rhs: %w", err)
		}
	}

	// Structural precondition.
	if !bandsDominant(sub, diag, sup) {
		if o.zeroFillOnViolation {
			return make([]float64, n), ErrNotDiagonallyDominant
		}

		return nil, ErrNotDiagonallyDominant
	}

	x := make([]float64, n)

	// 1×1: a single division.
	if n == 1 {
		if diag[0] == ZeroPivot {
			return nil, fmt.Errorf("pivot 0: %w", ErrSingular)
		}
		x[0] = rhs[0] / diag[0]
		if isNonFinite(x[0]) {
			return nil, fmt.Errorf("x[0]: %w", ErrNumericInstability)
		}

		return x, nil
	}

	// Sweep coefficients A[i], B[i] for i = 0..n-2.
	A := make([]float64, n-1)
	B := make([]float64, n-1)
	if diag[0] == ZeroPivot {
		return nil, fmt.Errorf("pivot 0: %w", ErrSingular)
	}
	A[0] = -sup[0] / diag[0]
	B[0] = rhs[0] / diag[0]

	var i int
	var e float64
	for i = 1; i < n-1; i++ { // forward sweep over interior rows
		e = sub[i]*A[i-1] + diag[i]
		if e == ZeroPivot {
			return nil, fmt.Errorf("pivot %d: %w", i, ErrSingular)
		}
		A[i] = -sup[i] / e
		B[i] = (rhs[i] - sub[i]*B[i-1]) / e
		if isNonFinite(A[i]) || isNonFinite(B[i]) {
			return nil, fmt.Errorf("sweep %d: %w", i, ErrNumericInstability)
		}
	}

	// Last unknown closes the sweep.
	den := diag[n-1] + sub[n-1]*A[n-2]
	if den == ZeroPivot {
		return nil, fmt.Errorf("pivot %d: %w", n-1, ErrSingular)
	}
	x[n-1] = (rhs[n-1] - sub[n-1]*B[n-2]) / den
	if isNonFinite(x[n-1]) {
		return nil, fmt.Errorf("x[%d]: %w", n-1, ErrNumericInstability)
	}

	// Back substitution.
	for i = n - 2; i >= 0; i-- {
		x[i] = A[i]*x[i+1] + B[i]
		if isNonFinite(x[i]) {
			return nil, fmt.Errorf("x[%d]: %w", i, ErrNumericInstability)
		}
	}

	return x, nil
}
