// Package tsp_test provides lightweight helpers shared across *_test.go files.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstour/geom"
	"github.com/katalvlaran/mstour/tsp"
)

// epsTiny is the tolerance for float comparisons on exact-by-construction inputs.
const epsTiny = 1e-12

// unitSquare returns the corners (0,0), (0,1), (1,1), (1,0) scaled by side.
func unitSquare(side float64) []geom.Point {
	return []geom.Point{
		geom.New(0, 0),
		geom.New(0, side),
		geom.New(side, side),
		geom.New(side, 0),
	}
}

// randomPoints returns n points in [0,1000)² from a deterministic source.
func randomPoints(n int, seed int64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.New(r.Float64()*1000, r.Float64()*1000)
	}

	return pts
}

// randomParent builds a random rooted tree on n vertices in parent-pointer form.
// Vertices are attached in a random order, each to a random earlier one.
func randomParent(n, root int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	order := r.Perm(n)
	// move root to the front so everything hangs off it
	for i, v := range order {
		if v == root {
			order[0], order[i] = order[i], order[0]
			break
		}
	}
	parent := make([]int, n)
	parent[root] = tsp.NoParent
	for k := 1; k < n; k++ {
		parent[order[k]] = order[r.Intn(k)]
	}

	return parent
}

// scanPreorder is the naive walk: at each step rescan the whole parent
// array for the lowest-id child of the top that is not yet on the path.
func scanPreorder(parent []int, root int) []int {
	path := []int{root}
	onPath := map[int]bool{root: true}
	stack := []int{root}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		pushed := false
		for i := range parent {
			if parent[i] == top && !onPath[i] {
				stack = append(stack, i)
				path = append(path, i)
				onPath[i] = true
				pushed = true
				break
			}
		}
		if !pushed {
			stack = stack[:len(stack)-1]
		}
	}

	return append(path, root)
}

// mustFloatClose fails if |got-want| > eps.
func mustFloatClose(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("float mismatch: got=%.15g want=%.15g eps=%g", got, want, eps)
	}
}
