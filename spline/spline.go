// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/katalvlaran/lvspline/matrix"
)

// Spline is a built natural cubic spline together with the intermediate
// structures that produced it. It is immutable; accessors return copies.
type Spline struct {
	boundary Boundary
	nodes    []Node
	bands    Bands
	second   []float64
	segments []Segment
}

// builder carries per-run state through the pipeline stages.
type builder struct {
	opts Options
	log  *slog.Logger
}

// Build samples fn, assembles and solves the continuity system, and derives
// the segment coefficients.
// Returns ErrOptionViolation or ErrUnsupportedBoundary for bad options,
// ErrDegenerateSampling for bad sampling, matrix sentinels from the solver
// (ErrNotDiagonallyDominant, ErrSingular, ErrNumericInstability), or
// ErrNumericInstability for a non-finite coefficient. No partial spline is
// ever returned.
func Build(fn TargetFunc, opts ...Option) (*Spline, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, splineErrorf(opBuild, o.err)
	}

	b := &builder{opts: o, log: o.Logger}
	began := time.Now()
	sp, err := b.run(fn)
	nodes := 0
	if sp != nil {
		nodes = len(sp.nodes)
	}
	b.stage(StageBuild, nodes, began, err)
	if err != nil {
		return nil, splineErrorf(opBuild, err)
	}

	return sp, nil
}

// run executes sample → system → solve → derive, stopping at the first failure.
func (b *builder) run(fn TargetFunc) (*Spline, error) {
	t := time.Now()
	nodes, err := SampleNodes(fn, b.opts.Start, b.opts.End, b.opts.Segments)
	b.stage(StageSample, len(nodes), t, err)
	if err != nil {
		return nil, err
	}

	t = time.Now()
	bands, err := BuildBands(nodes)
	b.stage(StageSystem, len(nodes), t, err)
	if err != nil {
		return nil, err
	}

	t = time.Now()
	second, err := matrix.SolveBands(bands.Sub, bands.Diag, bands.Sup, bands.RHS)
	b.stage(StageSolve, len(nodes), t, err)
	if err != nil {
		return nil, splineErrorf(opSolve, err)
	}

	t = time.Now()
	segs, err := DeriveSegments(nodes, second)
	b.stage(StageDerive, len(nodes), t, err)
	if err != nil {
		return nil, err
	}

	return &Spline{
		boundary: b.opts.Boundary,
		nodes:    nodes,
		bands:    bands,
		second:   second,
		segments: segs,
	}, nil
}

// stage logs a finished stage and forwards it to the observer.
func (b *builder) stage(st Stage, nodes int, began time.Time, err error) {
	elapsed := time.Since(began)
	if err != nil {
		b.log.Debug("spline stage failed", "stage", string(st), "nodes", nodes, "elapsed", elapsed, "err", err)
	} else {
		b.log.Debug("spline stage done", "stage", string(st), "nodes", nodes, "elapsed", elapsed)
	}
	if b.opts.Observer != nil {
		b.opts.Observer.Observe(Event{Stage: st, Nodes: nodes, Duration: elapsed, Err: err})
	}
}

// Boundary returns the end condition the spline was built with.
func (s *Spline) Boundary() Boundary { return s.boundary }

// Domain returns the first and last sampled abscissas.
func (s *Spline) Domain() (start, end float64) {
	return s.nodes[0].X, s.nodes[len(s.nodes)-1].X
}

// Nodes returns a copy of the sampled nodes.
func (s *Spline) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)

	return out
}

// Bands returns a copy of the continuity system in band form.
func (s *Spline) Bands() Bands { return s.bands.clone() }

// System expands the continuity system into a fresh m×m matrix and returns
// it with a copy of the right-hand side. It costs O(m²) memory; use Bands
// for large splines.
func (s *Spline) System() (*matrix.Dense, []float64, error) {
	a, err := s.bands.Dense()
	if err != nil {
		return nil, nil, err
	}

	return a, append([]float64(nil), s.bands.RHS...), nil
}

// SecondDerivatives returns a copy of the solved c_0..c_m.
func (s *Spline) SecondDerivatives() []float64 {
	out := make([]float64, len(s.second))
	copy(out, s.second)

	return out
}

// Segments returns a copy of the segments, ordered by Index.
func (s *Spline) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)

	return out
}

// Eval returns the spline value at x.
// x must lie in the closed sampled domain; a node abscissa resolves to the
// segment on its left, and x_0 to the first segment.
func (s *Spline) Eval(x float64) (float64, error) {
	seg, err := s.segmentFor(x)
	if err != nil {
		return 0, err
	}

	return seg.Eval(x), nil
}

// Derivative returns the order-th derivative at x. Orders above 3 are zero.
func (s *Spline) Derivative(x float64, order int) (float64, error) {
	if order < 0 {
		return 0, splineErrorf(opEval, fmt.Errorf("order %d: %w", order, ErrDerivativeOrder))
	}
	seg, err := s.segmentFor(x)
	if err != nil {
		return 0, err
	}
	switch order {
	case 0:
		return seg.Eval(x), nil
	case 1:
		return seg.Slope(x), nil
	case 2:
		return seg.Curvature(x), nil
	case 3:
		return seg.D, nil
	default:
		return 0, nil
	}
}

// segmentFor finds the first segment whose Right bound is ≥ x.
func (s *Spline) segmentFor(x float64) (Segment, error) {
	lo, hi := s.Domain()
	if !(x >= lo && x <= hi) {
		return Segment{}, splineErrorf(opEval, fmt.Errorf("x=%g not in [%g, %g]: %w", x, lo, hi, ErrOutOfDomain))
	}
	idx := sort.Search(len(s.segments), func(k int) bool { return s.segments[k].Right >= x })

	return s.segments[idx], nil
}
