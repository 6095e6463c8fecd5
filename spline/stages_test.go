// SPDX-License-Identifier: MIT
package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvspline/matrix"
	"github.com/katalvlaran/lvspline/spline"
	"github.com/stretchr/testify/require"
)

// TestSampleNodes covers spacing and every degenerate input.
func TestSampleNodes(t *testing.T) {
	nodes, err := spline.SampleNodes(cosine, 3, 6, 5)
	require.NoError(t, err)
	require.Len(t, nodes, 6)
	require.Equal(t, 0.0, nodes[0].H)
	require.False(t, nodes[0].HasSpacing())
	for i := 1; i < len(nodes); i++ {
		require.Greater(t, nodes[i].X, nodes[i-1].X)
		require.Equal(t, nodes[i].X-nodes[i-1].X, nodes[i].H)
	}

	tests := []struct {
		name       string
		fn         spline.TargetFunc
		start, end float64
		segments   int
	}{
		{"nil target", nil, 3, 6, 5},
		{"one segment", cosine, 3, 6, 1},
		{"empty domain", cosine, 3, 3, 5},
		{"reversed domain", cosine, 6, 3, 5},
		{"nan bound", cosine, math.NaN(), 6, 5},
		{"inf bound", cosine, 3, math.Inf(1), 5},
		{"nan sample", func(float64) float64 { return math.NaN() }, 3, 6, 5},
		{"spacing underflow", cosine, 1e16, 1e16 + 2, 4}, // step 0.5 rounds to zero spacing
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := spline.SampleNodes(tc.fn, tc.start, tc.end, tc.segments)
			require.ErrorIs(t, err, spline.ErrDegenerateSampling)
		})
	}
}

// TestBuildSystemMinimal checks the three-node system by hand.
func TestBuildSystemMinimal(t *testing.T) {
	nodes := []spline.Node{
		{Index: 0, X: 0, F: 0},
		{Index: 1, X: 1, F: 1, H: 1},
		{Index: 2, X: 3, F: 0, H: 2},
	}
	a, rhs, err := spline.BuildSystem(nodes)
	require.NoError(t, err)
	require.Equal(t, "[1, 0, 0]\n[1, 6, 2]\n[0, 0, 1]\n", a.String())
	require.Equal(t, []float64{0, 6 * (-0.5 - 1), 0}, rhs)

	ok, err := matrix.IsTridiagonalDominant(a)
	require.NoError(t, err)
	require.True(t, ok)

	c, err := matrix.SolveTridiagonal(a, rhs)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, -1.5, 0}, c, 1e-15)

	segs, err := spline.DeriveSegments(nodes, c)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	require.InDelta(t, 0.5, segs[0].B, 1e-15)  // 1 + (-1.5)/3
	require.InDelta(t, -1.5, segs[0].D, 1e-15) // (-1.5 - 0)/1
	require.InDelta(t, 0.75, segs[1].D, 1e-15) // (0 + 1.5)/2
}

// TestBuildSystemRejectsBadNodes covers the node checks.
func TestBuildSystemRejectsBadNodes(t *testing.T) {
	good := []spline.Node{{Index: 0, X: 0}, {Index: 1, X: 1, H: 1}, {Index: 2, X: 2, H: 1}}

	_, _, err := spline.BuildSystem(good[:2])
	require.ErrorIs(t, err, spline.ErrDegenerateSampling)

	bad := append([]spline.Node(nil), good...)
	bad[2].H = 0
	_, _, err = spline.BuildSystem(bad)
	require.ErrorIs(t, err, spline.ErrDegenerateSampling)

	bad = append([]spline.Node(nil), good...)
	bad[1].F = math.Inf(-1)
	_, _, err = spline.BuildSystem(bad)
	require.ErrorIs(t, err, spline.ErrDegenerateSampling)

	bad = append([]spline.Node(nil), good...)
	bad[2].X = 0.5 // not increasing
	_, _, err = spline.BuildSystem(bad)
	require.ErrorIs(t, err, spline.ErrDegenerateSampling)
}

// TestBuildBandsSpacingMismatch rejects H_i that disagrees with x_i − x_{i−1}.
func TestBuildBandsSpacingMismatch(t *testing.T) {
	tests := []struct {
		name  string
		h     float64
		valid bool
	}{
		{"exact", 2, true},
		{"within tolerance", 2 * (1 + 1e-12), true},
		{"too small", 1, false},
		{"too large", 2.5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nodes := []spline.Node{
				{Index: 0, X: 0, F: 0},
				{Index: 1, X: 1, F: 1, H: 1},
				{Index: 2, X: 3, F: 0, H: tc.h},
			}
			_, err := spline.BuildBands(nodes)
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, spline.ErrDegenerateSampling)
			require.Contains(t, err.Error(), "node 2 spacing")
		})
	}
}

// TestBuildBandsMatchesDense checks the band form against BuildSystem.
func TestBuildBandsMatchesDense(t *testing.T) {
	nodes, err := spline.SampleNodes(cosine, 3, 6, 5)
	require.NoError(t, err)

	b, err := spline.BuildBands(nodes)
	require.NoError(t, err)
	require.Equal(t, 6, b.Len())
	require.Equal(t, []float64{1, 0, 0, 0, 0, 1}, []float64{b.Diag[0], b.Sup[0], b.Sub[5], b.RHS[0], b.RHS[5], b.Diag[5]})

	a, rhs, err := spline.BuildSystem(nodes)
	require.NoError(t, err)
	require.Equal(t, b.RHS, rhs)

	sub, diag, sup, err := matrix.TridiagonalBands(a)
	require.NoError(t, err)
	require.Equal(t, b.Diag, diag)
	require.Equal(t, b.Sub[1:], sub[1:])
	require.Equal(t, b.Sup[:5], sup[:5])

	fromBands, err := b.Dense()
	require.NoError(t, err)
	require.Equal(t, a.String(), fromBands.String())

	c, err := matrix.SolveBands(b.Sub, b.Diag, b.Sup, b.RHS)
	require.NoError(t, err)
	require.InDelta(t, -2.017120, c[2], 1e-6)
}

// TestDeriveSegmentsErrors covers length mismatch and non-finite coefficients.
func TestDeriveSegmentsErrors(t *testing.T) {
	nodes, err := spline.SampleNodes(cosine, 3, 6, 5)
	require.NoError(t, err)

	_, err = spline.DeriveSegments(nodes, make([]float64, 5))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	second := make([]float64, 6)
	second[3] = math.Inf(1)
	_, err = spline.DeriveSegments(nodes, second)
	require.ErrorIs(t, err, spline.ErrNumericInstability)
}
