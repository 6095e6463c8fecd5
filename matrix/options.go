// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the tridiagonal kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - validateNaNInf controls whether solver inputs (matrix bands and
//     right-hand side) are scanned for NaN/Inf before elimination.
//   - zeroFillOnViolation restores the historical "return zeros" answer for a
//     matrix that fails the dominance check. The error is returned as well,
//     so a zero vector is never mistaken for a real solution.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion,
	// Set, and solver inputs.
	DefaultValidateNaNInf = true

	// DefaultZeroFillOnViolation keeps the solver strict: a dominance violation
	// yields (nil, ErrNotDiagonallyDominant).
	DefaultZeroFillOnViolation = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf      bool // DefaultValidateNaNInf
	zeroFillOnViolation bool // DefaultZeroFillOnViolation
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation of solver inputs.
// This is the default; use WithNoValidateNaNInf to relax.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the up-front NaN/Inf scan.
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Non-finite inputs then propagate into the sweep, where they are caught
//     as ErrNumericInstability instead of ErrNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithZeroFillOnViolation makes SolveTridiagonal/SolveBands return an
// all-zero vector of length n together with ErrNotDiagonallyDominant.
//
// Behavior highlights:
//   - The error is still returned; only the vector changes from nil to zeros.
//   - Other failures (ErrSingular, ErrNumericInstability) are unaffected.
//
// AI-Hints:
//   - Use only when a caller must keep printing a vector for a rejected system.
func WithZeroFillOnViolation() Option {
	return func(o *Options) { o.zeroFillOnViolation = true }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
// Complexity: Time O(k), Space O(1) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf:      DefaultValidateNaNInf,
		zeroFillOnViolation: DefaultZeroFillOnViolation,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
