// SPDX-License-Identifier: MIT
package plot_test

import (
	"fmt"

	"github.com/katalvlaran/lvspline/plot"
	"github.com/katalvlaran/lvspline/spline"
)

func ExampleSegmentDefinition() {
	sp, err := spline.Build(func(x float64) float64 { return 2 * x },
		spline.WithDomain(0, 2), spline.WithSegments(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range plot.SegmentDefinitions(sp) {
		fmt.Println(d)
	}
	// Output:
	// S1(x) = (x > 0.000000 && x < 1.000000) ? 2.000000 + (2.000000)*(x - 1.000000) + (0.000000/2)*(x - 1.000000)**2 + (0.000000/6)*(x - 1.000000)**3 : NaN
	// S2(x) = (x > 1.000000 && x < 2.000000) ? 4.000000 + (2.000000)*(x - 2.000000) + (0.000000/2)*(x - 2.000000)**2 + (0.000000/6)*(x - 2.000000)**3 : NaN
}
