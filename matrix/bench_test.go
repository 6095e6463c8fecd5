// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the tridiagonal kernels,
// using deterministic random dominant systems.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvspline/matrix"
)

// benchSizes are the system orders to benchmark.
var benchSizes = []int{16, 256, 4096}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkB bool
)

func BenchmarkSolveBands(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			sub, diag, sup, rhs := RandomDominantBands(n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.SolveBands(sub, diag, sup, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkSolveTridiagonal(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes[:2] { // n×n storage; keep sizes modest
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			sub, diag, sup, rhs := RandomDominantBands(n, 4242)
			A := MustTridiagonal(b, sub, diag, sup)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.SolveTridiagonal(A, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkIsTridiagonalDominant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes[:2] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			sub, diag, sup, _ := RandomDominantBands(n, 11)
			A := MustTridiagonal(b, sub, diag, sup)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ok, err := matrix.IsTridiagonalDominant(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = ok
			}
		})
	}
}
