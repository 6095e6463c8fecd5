// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"github.com/katalvlaran/lvspline/matrix"
)

// Bands is the continuity system in band form, one entry per node.
// Sub[0] and Sup[m−1] lie outside the matrix and are always zero.
type Bands struct {
	Sub, Diag, Sup []float64
	RHS            []float64
}

// BuildBands assembles the continuity system for m = len(nodes) in O(m).
//
// Rows 0 and m−1 are identity rows with a zero right-hand side (natural
// boundary). Interior row i holds h_i, 2(h_i+h_{i+1}), h_{i+1} on the band and
//
//	b_i = 6·((f_{i+1}−f_i)/h_{i+1} − (f_i−f_{i−1})/h_i).
func BuildBands(nodes []Node) (Bands, error) {
	if err := checkNodes(nodes); err != nil {
		return Bands{}, splineErrorf(opBuildSystem, err)
	}
	m := len(nodes)
	b := Bands{
		Sub:  make([]float64, m),
		Diag: make([]float64, m),
		Sup:  make([]float64, m),
		RHS:  make([]float64, m),
	}

	b.Diag[0] = 1   // c_0 = 0
	b.Diag[m-1] = 1 // c_{m-1} = 0
	var i int
	var hl, hr float64
	for i = 1; i < m-1; i++ {
		hl, hr = nodes[i].H, nodes[i+1].H
		b.Sub[i] = hl
		b.Diag[i] = 2 * (hl + hr)
		b.Sup[i] = hr
		b.RHS[i] = 6 * ((nodes[i+1].F-nodes[i].F)/hr - (nodes[i].F-nodes[i-1].F)/hl)
	}

	return b, nil
}

// Dense expands the bands into an m×m matrix. It costs O(m²) memory and is
// meant for display and cross-checks only.
func (b Bands) Dense() (*matrix.Dense, error) {
	a, err := matrix.NewTridiagonal(b.Sub, b.Diag, b.Sup)
	if err != nil {
		return nil, fmt.Errorf("dense system: %w", err)
	}

	return a, nil
}

// Len returns the system order m.
func (b Bands) Len() int { return len(b.Diag) }

// clone returns a deep copy of b.
func (b Bands) clone() Bands {
	return Bands{
		Sub:  append([]float64(nil), b.Sub...),
		Diag: append([]float64(nil), b.Diag...),
		Sup:  append([]float64(nil), b.Sup...),
		RHS:  append([]float64(nil), b.RHS...),
	}
}

// BuildSystem assembles the system with BuildBands and expands it into a
// dense matrix plus right-hand side. Prefer BuildBands for large m.
func BuildSystem(nodes []Node) (*matrix.Dense, []float64, error) {
	b, err := BuildBands(nodes)
	if err != nil {
		return nil, nil, err
	}
	a, err := b.Dense()
	if err != nil {
		return nil, nil, splineErrorf(opBuildSystem, err)
	}

	return a, b.RHS, nil
}
