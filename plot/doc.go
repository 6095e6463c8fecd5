// SPDX-License-Identifier: MIT

// Package plot renders a built spline as gnuplot script text.
//
// Each segment becomes a conditional definition that is NaN outside its
// open interval, so the pieces can be plotted together without overlap:
//
//	S1(x) = (x > 3.000000 && x < 3.600000) ? 0.450293 + (1.095813)*(x - 3.600000) + ...
//
// WriteScript adds axis labels, title, grid, ranges, an optional target
// curve and the combined plot command. WithExactPlot puts the target alone
// in a panel above the spline. No gnuplot process is started; pipe
// the output into gnuplot yourself.
package plot
