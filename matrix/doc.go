// SPDX-License-Identifier: MIT

// Package matrix offers dense matrix storage and the tridiagonal kernels used
// by the spline builder.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-safe At/Set and an
//     optional NaN/Inf rejection policy.
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateFinite) shared by every kernel.
//   - IsTridiagonalDominant, the structural precondition for elimination
//     without pivoting.
//   - SolveTridiagonal / SolveBands, the Thomas algorithm ("through method"):
//     a forward sweep of coefficients A[i], B[i] followed by back substitution,
//     O(n) time and O(n) extra space.
//   - MatVec and Residual to verify a solution by direct substitution.
//
// Only the main diagonal and its two neighbours are read by the tridiagonal
// kernels. Entries outside the band are never inspected, so callers must keep
// them zero.
//
// Errors are package sentinels (ErrNotDiagonallyDominant, ErrSingular,
// ErrNumericInstability, ...) wrapped with an operation tag; match them with
// errors.Is.
package matrix
