// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"strings"
	"time"
)

// TargetFunc is the function being interpolated. It must be pure and cheap.
type TargetFunc func(x float64) float64

// Boundary selects the end conditions of the spline.
type Boundary int

// BoundaryNatural forces zero curvature at both ends (c_0 = c_m = 0).
const BoundaryNatural Boundary = iota

// String returns the lower-case name used in configuration files.
func (b Boundary) String() string {
	if b == BoundaryNatural {
		return "natural"
	}

	return fmt.Sprintf("boundary(%d)", int(b))
}

// ParseBoundary maps a configuration name to a Boundary.
// Matching is case-insensitive; only "natural" is supported.
func ParseBoundary(name string) (Boundary, error) {
	if strings.EqualFold(strings.TrimSpace(name), "natural") {
		return BoundaryNatural, nil
	}

	return 0, splineErrorf(opParseBoundary, fmt.Errorf("%q: %w", name, ErrUnsupportedBoundary))
}

// Node is one sample of the target function.
// H is the spacing x_i − x_{i−1}; it is zero (absent) for Index 0.
type Node struct {
	Index int
	X     float64
	F     float64
	H     float64
}

// HasSpacing reports whether H is defined (every node but the first).
func (n Node) HasSpacing() bool { return n.Index > 0 }

// Segment is the cubic valid on the interval (Left, Right) = (x_{i−1}, x_i).
// Coefficients are expanded around the right endpoint:
//
//	S(x) = A + B·t + C/2·t² + D/6·t³,  t = x − Right.
//
// A is f_i, C is the second derivative at node i.
type Segment struct {
	Index       int
	Left, Right float64
	A, B, C, D  float64
}

// Eval returns S(x). It does not check that x lies in the segment.
func (s Segment) Eval(x float64) float64 {
	t := x - s.Right

	return s.A + t*(s.B+t*(s.C/2+t*s.D/6))
}

// Slope returns S'(x) = B + C·t + D/2·t².
func (s Segment) Slope(x float64) float64 {
	t := x - s.Right

	return s.B + t*(s.C+t*s.D/2)
}

// Curvature returns the second derivative C + D·t.
func (s Segment) Curvature(x float64) float64 {
	return s.C + s.D*(x-s.Right)
}

// Contains reports whether x lies in the open interval (Left, Right).
func (s Segment) Contains(x float64) bool {
	return x > s.Left && x < s.Right
}

// Stage names one step of the Build pipeline.
type Stage string

// Pipeline stages in execution order; StageBuild reports the whole run.
const (
	StageSample Stage = "sample"
	StageSystem Stage = "system"
	StageSolve  Stage = "solve"
	StageDerive Stage = "derive"
	StageBuild  Stage = "build"
)

// Event describes one finished stage.
type Event struct {
	Stage    Stage
	Nodes    int           // node count known at this stage (0 if sampling failed)
	Duration time.Duration // wall time spent in the stage
	Err      error         // nil on success
}

// Observer receives pipeline events synchronously, in stage order.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }
