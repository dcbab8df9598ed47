package tsp_test

import (
	"testing"

	"github.com/katalvlaran/mstour/tsp"
)

// BenchmarkApproximate measures the whole pipeline on 500 random points.
func BenchmarkApproximate(b *testing.B) {
	pts := randomPoints(500, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Approximate(pts)
	}
}

// BenchmarkPreorderCycle measures the walk alone on a 10000-vertex random tree.
func BenchmarkPreorderCycle(b *testing.B) {
	parent := randomParent(10000, 0, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.PreorderCycle(parent, 0)
	}
}
