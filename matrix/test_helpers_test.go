// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the tridiagonal kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvspline/matrix"
)

// vecTol is the absolute tolerance used when comparing solved vectors.
const vecTol = 1e-12

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense from a [][]float64 literal or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomDominantBands RETURNS bands of a strictly dominant tridiagonal system.
// Implementation:
//   - Stage 1: off-diagonals and rhs ~ U(-1,1) from a seeded source.
//   - Stage 2: diag[i] = |sub[i]| + |sup[i]| + 1 + U(0,1), random sign.
//
// Determinism:
//   - Deterministic for a fixed seed.
func RandomDominantBands(n int, seed int64) (sub, diag, sup, rhs []float64) {
	rng := rand.New(rand.NewSource(seed))
	sub = make([]float64, n)
	diag = make([]float64, n)
	sup = make([]float64, n)
	rhs = make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		if i > 0 {
			sub[i] = rng.Float64()*2 - 1
		}
		if i < n-1 {
			sup[i] = rng.Float64()*2 - 1
		}
		diag[i] = math.Abs(sub[i]) + math.Abs(sup[i]) + 1 + rng.Float64()
		if rng.Intn(2) == 0 {
			diag[i] = -diag[i]
		}
		rhs[i] = rng.Float64()*2 - 1
	}

	return sub, diag, sup, rhs
}

// MustTridiagonal ASSEMBLES a Dense from bands or fails the test.
func MustTridiagonal(t testing.TB, sub, diag, sup []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewTridiagonal(sub, diag, sup)
	if err != nil {
		t.Fatalf("NewTridiagonal: %v", err)
	}

	return m
}

// MaxAbs RETURNS max_i |v[i]|.
func MaxAbs(v []float64) float64 {
	var out float64
	for _, x := range v {
		if a := math.Abs(x); a > out {
			out = a
		}
	}

	return out
}
