// Package tsp — MST-based 2-approximation.
//
// Approximate computes a Hamiltonian cycle over planar points whose length is
// at most twice the optimum (the points are metric by construction):
//
//  1. Complete Euclidean graph over the points (graph.Complete).
//  2. Minimum Spanning Tree rooted at opts.Root (Prim by default).
//  3. Pre-order walk of the tree, closed back to the root (PreorderCycle).
//  4. ValidateTour on the cycle.
//  5. Length of the closed cycle, plus its miles rendering.
//
// Mathematical guarantee:
//   - MST weight ≤ OPT, the doubled tree walk costs 2·MST, and shortcutting
//     revisits never increases cost under the triangle inequality ⇒ tour ≤ 2·OPT.
//
// Complexity: O(n²) time and memory, dominated by the dense graph.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/mstour/geom"
	"github.com/katalvlaran/mstour/graph"
	"github.com/katalvlaran/mstour/prim_kruskal"
)

// Approximate runs the full pipeline on points.
//
// Errors:
//   - ErrNoPoints, ErrRootOutOfRange, and any prim_kruskal sentinel (wrapped).
func Approximate(points []geom.Point, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if o.Root < 0 || o.Root >= len(points) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, o.Root, len(points))
	}

	g, err := graph.Complete(points)
	if err != nil {
		return nil, fmt.Errorf("tsp: build graph: %w", err)
	}
	tree, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: o.Method, Root: o.Root})
	if err != nil {
		return nil, fmt.Errorf("tsp: spanning tree: %w", err)
	}
	tour, err := PreorderCycle(tree.Parent, o.Root)
	if err != nil {
		return nil, err
	}
	if err = ValidateTour(tour, len(points), o.Root); err != nil {
		return nil, fmt.Errorf("tsp: tour check: %w", err)
	}
	length, err := TourLength(points, tour)
	if err != nil {
		return nil, err
	}

	return &Result{
		Tour:      tour,
		Root:      o.Root,
		Parent:    tree.Parent,
		MSTWeight: tree.Weight(),
		Length:    length,
		Miles:     FormatMiles(length),
	}, nil
}
