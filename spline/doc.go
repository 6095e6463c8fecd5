// SPDX-License-Identifier: MIT

// Package spline builds natural cubic splines over evenly spaced samples
// of a caller-supplied target function.
//
// What
//
//   - SampleNodes evaluates the target at segments+1 evenly spaced abscissas
//     x_i = start + step*i, step = (end-start)/segments.
//   - BuildBands assembles the tridiagonal continuity system whose unknowns
//     are the second derivatives c_i at every node. The first and last rows
//     pin c_0 = c_m = 0 (natural boundary). BuildSystem returns the same
//     system as a dense matrix.
//   - matrix.SolveBands solves it with the Thomas sweep.
//   - DeriveSegments turns (nodes, c) into one cubic per interval:
//     S_i(x) = a_i + b_i t + c_i/2 t² + d_i/6 t³, t = x − x_i.
//   - Build chains the four stages; any failure aborts with no partial result.
//
// Observability
//
//	WithLogger attaches a *slog.Logger (default: discard) that receives one
//	Debug record per stage. WithObserver receives one Event per stage with
//	timing and error, which the metrics package turns into prometheus series.
//
// Concurrency
//
//	A *Spline is immutable after Build and safe for concurrent readers.
//	Accessors return copies.
//
// Complexity (m = segments)
//
//   - Time and memory: O(m) for Build. Only Spline.System expands the
//     bands into an O(m²) dense matrix, on demand.
package spline
