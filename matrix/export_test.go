// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the internal options snapshot.
//
// Purpose:
//   - Expose a read-only view of the unexported Options to matrix_test ONLY.
//   - Lives in a _test.go file, so it never widens the production API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// OptionsSnapshot mirrors Options with exported fields.
type OptionsSnapshot struct {
	ValidateNaNInf      bool
	ZeroFillOnViolation bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		ValidateNaNInf:      o.validateNaNInf,
		ZeroFillOnViolation: o.zeroFillOnViolation,
	}
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as the kernels do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// BandsDominant_TestOnly exposes the band-level dominance rules.
var BandsDominant_TestOnly = bandsDominant
