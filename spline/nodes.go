// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerances for H_i against x_i − x_{i−1} in caller-supplied nodes.
const (
	spacingAbsTol = 1e-12
	spacingRelTol = 1e-9
)

// SampleNodes evaluates fn at segments+1 evenly spaced abscissas over
// [start, end]: x_i = start + step*i with step = (end−start)/segments.
//
// Returns ErrDegenerateSampling when fn is nil, segments < MinSegments, the
// domain is not finite with start < end, a spacing is not positive after
// rounding, or fn returns NaN/Inf.
func SampleNodes(fn TargetFunc, start, end float64, segments int) ([]Node, error) {
	if fn == nil {
		return nil, splineErrorf(opSampleNodes, fmt.Errorf("nil target: %w", ErrDegenerateSampling))
	}
	if segments < MinSegments {
		return nil, splineErrorf(opSampleNodes, fmt.Errorf("%d segments < %d: %w", segments, MinSegments, ErrDegenerateSampling))
	}
	if !isFinite(start) || !isFinite(end) || !(start < end) {
		return nil, splineErrorf(opSampleNodes, fmt.Errorf("domain [%g, %g]: %w", start, end, ErrDegenerateSampling))
	}

	xs := floats.Span(make([]float64, segments+1), start, end)
	nodes := make([]Node, len(xs))
	var i int
	for i = range xs {
		nodes[i] = Node{Index: i, X: xs[i], F: fn(xs[i])}
		if !isFinite(nodes[i].F) {
			return nil, splineErrorf(opSampleNodes, fmt.Errorf("f(%g) = %g: %w", xs[i], nodes[i].F, ErrDegenerateSampling))
		}
		if i == 0 {
			continue
		}
		nodes[i].H = xs[i] - xs[i-1]
		if !(nodes[i].H > 0) {
			return nil, splineErrorf(opSampleNodes, fmt.Errorf("h[%d] = %g: %w", i, nodes[i].H, ErrDegenerateSampling))
		}
	}

	return nodes, nil
}

// checkNodes validates a caller-supplied node sequence: at least three nodes,
// finite samples, increasing abscissas, and each H_i positive and equal to
// x_i − x_{i−1} within spacingAbsTol or spacingRelTol.
func checkNodes(nodes []Node) error {
	if len(nodes) < MinSegments+1 {
		return fmt.Errorf("%d nodes: %w", len(nodes), ErrDegenerateSampling)
	}
	var i int
	for i = range nodes {
		if !isFinite(nodes[i].X) || !isFinite(nodes[i].F) {
			return fmt.Errorf("node %d not finite: %w", i, ErrDegenerateSampling)
		}
		if i == 0 {
			continue
		}
		if !(nodes[i].H > 0) || !(nodes[i].X > nodes[i-1].X) {
			return fmt.Errorf("node %d spacing %g: %w", i, nodes[i].H, ErrDegenerateSampling)
		}
		if dx := nodes[i].X - nodes[i-1].X; !scalar.EqualWithinAbsOrRel(nodes[i].H, dx, spacingAbsTol, spacingRelTol) {
			return fmt.Errorf("node %d spacing %g != x[%d]-x[%d] = %g: %w", i, nodes[i].H, i, i-1, dx, ErrDegenerateSampling)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
