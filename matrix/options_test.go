// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvspline/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that gathered defaults equal the documented constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
	require.Equal(t, matrix.DefaultZeroFillOnViolation, o.ZeroFillOnViolation)

	pub := matrix.NewMatrixOptions()
	require.Equal(t, matrix.NewMatrixOptions(), pub) // deterministic
}

// TestOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestOptions_LastWriterWins(t *testing.T) {
	o1 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o1.ValidateNaNInf)
	require.Equal(t, matrix.DefaultZeroFillOnViolation, o1.ZeroFillOnViolation)

	o2 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o2.ValidateNaNInf)

	o3 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithZeroFillOnViolation(), matrix.WithZeroFillOnViolation())
	require.True(t, o3.ZeroFillOnViolation) // idempotent
	require.Equal(t, matrix.DefaultValidateNaNInf, o3.ValidateNaNInf)
}

// TestOptions_NilSetterSkipped keeps nil entries harmless.
func TestOptions_NilSetterSkipped(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(nil, matrix.WithZeroFillOnViolation(), nil)
	require.True(t, o.ZeroFillOnViolation)
}

// TestBandsDominant_NaN ensures NaN entries fail every rule they touch.
func TestBandsDominant_NaN(t *testing.T) {
	nan := math.NaN()
	require.False(t, matrix.BandsDominant_TestOnly([]float64{0, 1}, []float64{nan, 3}, []float64{1, 0}))
	require.False(t, matrix.BandsDominant_TestOnly([]float64{0, nan}, []float64{2, 3}, []float64{1, 0}))
	require.True(t, matrix.BandsDominant_TestOnly([]float64{0, 1}, []float64{2, 3}, []float64{1, 0}))
}
