package fixedpoint_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/fixedpoint"
)

func BenchmarkSolve_Hybrid(b *testing.B) {
	f := func(x float64) float64 { return math.Exp(x) - x*x*x*x }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := fixedpoint.Solve(f, 3); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Order8(b *testing.B) {
	f := func(x float64) float64 { return math.Sin(x) }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := fixedpoint.Solve(f, 3, fixedpoint.WithOrder[float64](fixedpoint.Order8)); err != nil {
			b.Fatal(err)
		}
	}
}
