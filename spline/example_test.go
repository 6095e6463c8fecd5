// SPDX-License-Identifier: MIT
package spline_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvspline/spline"
)

// ExampleBuild runs the reference demonstration: 0.9·cos(16/11·x) on [3, 6]
// with five segments, and prints the node table and the second derivatives.
func ExampleBuild() {
	sp, err := spline.Build(func(x float64) float64 { return 0.9 * math.Cos(16.0/11.0*x) })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range sp.Nodes() {
		fmt.Printf("x[%d] = %.1f  f[%d] = %.5f\n", n.Index, n.X, n.Index, n.F)
	}
	for i, c := range sp.SecondDerivatives() {
		fmt.Printf("c[%d] = %.5f\n", i, c)
	}

	// Output:
	// x[0] = 3.0  f[0] = -0.30755
	// x[1] = 3.6  f[1] = 0.45029
	// x[2] = 4.2  f[2] = 0.88640
	// x[3] = 4.8  f[3] = 0.68915
	// x[4] = 5.4  f[4] = -0.00051
	// x[5] = 6.0  f[5] = -0.68980
	// c[0] = 0.00000
	// c[1] = -0.83632
	// c[2] = -2.01712
	// c[3] = -1.65100
	// c[4] = 0.41426
	// c[5] = 0.00000
}

// ExampleSpline_Eval evaluates between and at nodes.
func ExampleSpline_Eval() {
	sp, _ := spline.Build(func(x float64) float64 { return x * x }, spline.WithDomain(0, 2), spline.WithSegments(4))
	for _, x := range []float64{0.5, 1, 2} {
		v, _ := sp.Eval(x)
		fmt.Printf("S(%g) = %.4f\n", x, v)
	}
	_, err := sp.Eval(3)
	fmt.Println(err != nil)

	// Output:
	// S(0.5) = 0.2500
	// S(1) = 1.0000
	// S(2) = 4.0000
	// true
}
