// SPDX-License-Identifier: MIT

// Package report renders the intermediate and final results of a spline
// build as terminal tables: the sampled nodes, the assembled continuity
// system, the solved second derivatives and the per-segment coefficients.
//
// Tables are drawn with lipgloss. Colors are only emitted when the output
// is a terminal, so the same text can be captured in logs or tests.
package report
