// SPDX-License-Identifier: MIT

// Package lvspline interpolates a function with a natural cubic spline,
// solving the continuity equations with the Thomas ("through") algorithm.
//
// 🚀 What is inside?
//
//   - matrix/  : Dense matrices, validators and the O(n) tridiagonal solver
//     (dominance check, forward sweep, back substitution)
//   - spline/  : sampling, continuity system, segment coefficients, evaluation
//   - target/  : the reference cosine and sandboxed Lisp target expressions
//   - plot/    : gnuplot script text: one S_i(x) definition per segment
//   - report/  : terminal tables of nodes, system, c_i and a_i..d_i
//   - config/  : YAML + LVSPLINE_* environment configuration
//   - metrics/ : Prometheus counters and latencies per build stage
//   - cmd/lvspline : the CLI tying it together
//
// ✨ Guarantees
//
//   - No partial results: a failed stage aborts the build with a sentinel
//     error (errors.Is) instead of a zero vector or Inf coefficients.
//   - Immutable splines: accessors return copies, safe for concurrent readers.
//   - Natural end conditions: zero curvature at x_0 and x_m.
//
// Quick example, the reference demonstration on [3, 6] with 5 segments:
//
//	sp, err := spline.Build(target.Reference())
//	if err != nil { ... }
//	y, _ := sp.Eval(4.5)
//
// or from the shell:
//
//	lvspline gnuplot | gnuplot -persist
package lvspline
