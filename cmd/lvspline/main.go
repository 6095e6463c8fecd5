// SPDX-License-Identifier: MIT

// Command lvspline builds a natural cubic spline of a target function and
// prints the intermediate tables, the segment definitions, or a gnuplot
// script.
//
// Usage:
//
//	lvspline run [--segments 5] [--start 3] [--end 6] [--expr '(sin x)'] [--at 4.1,4.5]
//	lvspline gnuplot [-o spline.gp] | gnuplot -persist
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
