// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"github.com/katalvlaran/lvspline/matrix"
)

// DeriveSegments turns nodes and their second derivatives into one cubic
// per interval. For i = 1..m−1:
//
//	a_i = f_i
//	d_i = (c_i − c_{i−1}) / h_i
//	b_i = (f_i − f_{i−1}) / h_i + c_i·h_i/3 + c_{i−1}·h_i/6
//
// Segment i is valid on (x_{i−1}, x_i).
func DeriveSegments(nodes []Node, second []float64) ([]Segment, error) {
	if err := checkNodes(nodes); err != nil {
		return nil, splineErrorf(opDeriveSegments, err)
	}
	if len(second) != len(nodes) {
		return nil, splineErrorf(opDeriveSegments,
			fmt.Errorf("%d second derivatives for %d nodes: %w", len(second), len(nodes), matrix.ErrDimensionMismatch))
	}

	segs := make([]Segment, len(nodes)-1)
	var i int
	var h float64
	var s Segment
	for i = 1; i < len(nodes); i++ {
		h = nodes[i].H
		s = Segment{
			Index: i,
			Left:  nodes[i-1].X,
			Right: nodes[i].X,
			A:     nodes[i].F,
			B:     (nodes[i].F-nodes[i-1].F)/h + second[i]*h/3 + second[i-1]*h/6,
			C:     second[i],
			D:     (second[i] - second[i-1]) / h,
		}
		if !isFinite(s.B) || !isFinite(s.C) || !isFinite(s.D) {
			return nil, splineErrorf(opDeriveSegments, fmt.Errorf("segment %d: %w", i, ErrNumericInstability))
		}
		segs[i-1] = s
	}

	return segs, nil
}
