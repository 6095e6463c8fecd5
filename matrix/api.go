// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewTridiagonal to assemble a Dense from bands for printing or cross-checks.

package matrix

import "fmt"

const opNewTridiagonal = "NewTridiagonal"

// ---------- Constructors & Utilities ----------

// NewTridiagonal assembles an n×n Dense from bands laid out as in
// TridiagonalBands (sub[0] and sup[n-1] are ignored).
// Complexity: O(n^2) zeroing + O(n) writes.
func NewTridiagonal(sub, diag, sup []float64) (*Dense, error) {
	n := len(diag)
	if n == 0 {
		return nil, matrixErrorf(opNewTridiagonal, ErrInvalidDimensions)
	}
	if err := ValidateVecLen(sub, n); err != nil {
		return nil, matrixErrorf(opNewTridiagonal, fmt.Errorf("sub: %w", err))
	}
	if err := ValidateVecLen(sup, n); err != nil {
		return nil, matrixErrorf(opNewTridiagonal, fmt.Errorf("sup: %w", err))
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewTridiagonal, err)
	}
	var i int
	for i = 0; i < n; i++ {
		if err = m.Set(i, i, diag[i]); err != nil {
			return nil, matrixErrorf(opNewTridiagonal, err)
		}
		if i > 0 {
			if err = m.Set(i, i-1, sub[i]); err != nil {
				return nil, matrixErrorf(opNewTridiagonal, err)
			}
		}
		if i < n-1 {
			if err = m.Set(i, i+1, sup[i]); err != nil {
				return nil, matrixErrorf(opNewTridiagonal, err)
			}
		}
	}

	return m, nil
}

// ThomasSolve is SolveTridiagonal under its textbook name.
func ThomasSolve(m Matrix, rhs []float64, opts ...Option) ([]float64, error) {
	return SolveTridiagonal(m, rhs, opts...)
}
