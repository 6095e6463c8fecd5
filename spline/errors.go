// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"
)

// Sentinel errors for spline construction and evaluation.
var (
	// ErrDegenerateSampling is returned for a bad domain, fewer than three
	// nodes, non-positive spacing, a non-finite sample, or a nil target.
	ErrDegenerateSampling = errors.New("spline: degenerate sampling")

	// ErrNumericInstability is returned when a derived coefficient is not finite.
	ErrNumericInstability = errors.New("spline: non-finite coefficient")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spline: invalid option supplied")

	// ErrUnsupportedBoundary is returned for any boundary mode but natural.
	ErrUnsupportedBoundary = errors.New("spline: unsupported boundary condition")

	// ErrOutOfDomain is returned when evaluating outside [x_0, x_m].
	ErrOutOfDomain = errors.New("spline: abscissa outside sampled domain")

	// ErrDerivativeOrder is returned for a negative derivative order.
	ErrDerivativeOrder = errors.New("spline: derivative order must be >= 0")
)

// Operation tags used when wrapping errors.
const (
	opSampleNodes    = "SampleNodes"
	opBuildSystem    = "BuildSystem"
	opDeriveSegments = "DeriveSegments"
	opSolve          = "Solve"
	opBuild          = "Build"
	opEval           = "Eval"
	opParseBoundary  = "ParseBoundary"
)

// splineErrorf wraps err with an operation tag, keeping it matchable by errors.Is.
func splineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
