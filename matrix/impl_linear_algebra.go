// SPDX-License-Identifier: MIT
// Package matrix provides the generic kernels shared by the tridiagonal
// solver: matrix-vector product and residual evaluation. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Define operation tags and shared constants for determinism and error reporting.
//   - Offer MatVec/Residual so a solution can be checked by direct substitution.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot products and substitution sweeps.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in elimination routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec           = "MatVec"
	opResidual         = "Residual"
	opIsTridiagonal    = "IsTridiagonalDominant"
	opBands            = "TridiagonalBands"
	opSolveBands       = "SolveBands"
	opSolveTridiagonal = "SolveTridiagonal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - Use *Dense to keep a single pass per row with flat indexing.
//   - Skipping zero x[j] helps when x is sparse-ish; banded matrices skip zero entries instead.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and match with number of columns
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Prepare result vector y with length rows.
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int // indices and row base offset
		var acc, av float64
		for i = 0; i < d.r; i++ { // iterate rows deterministically
			acc = ZeroSum             // reset accumulator per row
			base = i * d.c            // compute flat base offset for row i
			for j = 0; j < d.c; j++ { // iterate columns
				av = d.data[base+j]
				if av != 0 { // band structure: most entries are zero
					acc += av * x[j] // accumulate a(i,j)*x(j)
				}
			}
			y[i] = acc // store y(i)
		}

		return y, nil // return on fast-path
	}

	// Fallback: interface-based dot-products via At.
	var i, j int   // loop indices
	var mv float64 // temporary to hold m(i,j)
	var err error
	for i = 0; i < rows; i++ { // iterate rows
		y[i] = ZeroSum             // initialize y(i) to zero
		for j = 0; j < cols; j++ { // iterate columns
			mv, err = m.At(i, j) // read m(i,j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j] // accumulate
		}
	}

	return y, nil // return computed vector
}

// Residual computes r = m*x − b, the componentwise defect of a candidate
// solution x. A correct solve yields entries within floating-point rounding
// of zero.
//
// Implementation:
//   - Stage 1: validate len(b) == m.Rows().
//   - Stage 2: y := MatVec(m, x); r[i] = y[i] − b[i].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Residual").
//
// Complexity:
//   - Time O(r*c), Space O(r).
func Residual(m Matrix, x, b []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	y, err := MatVec(m, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	var i int
	for i = 0; i < len(y); i++ {
		y[i] -= b[i] // reuse y as the residual buffer
	}

	return y, nil
}
