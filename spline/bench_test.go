// SPDX-License-Identifier: MIT
package spline_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvspline/spline"
)

var sinkS *spline.Spline

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{5, 64, 512} {
		b.Run(fmt.Sprintf("segments=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sp, err := spline.Build(cosine, spline.WithSegments(n))
				if err != nil {
					b.Fatal(err)
				}
				sinkS = sp
			}
		})
	}
}
