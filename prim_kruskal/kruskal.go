// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It serves as an independent cross-check for Prim and as an alternative Compute method.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mstour/graph"
)

// Kruskal computes the MST of g with a disjoint-set (union-find) using path
// compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : g is nil.
//   - ErrDisconnected : fewer than n-1 edges could be joined.
//
// Steps:
//  1. Validate: g != nil. n == 1 → trivial empty MST.
//  2. Collect edges via g.Edges() (i<j order, self-loops skipped).
//  3. Stable-sort by weight so ties keep (i, j) order.
//  4. Join edges whose endpoints sit in different components, stop at n-1.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *graph.Graph) ([]Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := g.Size()
	if n == 1 {
		return []Edge{}, 0, nil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// find walks to the root, halving the path on the way.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	var (
		mst   = make([]Edge, 0, n-1)
		total float64
	)
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		// Attach smaller-rank tree under larger-rank root.
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		mst = append(mst, Edge{From: e.From, To: e.To, Weight: e.Weight})
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// TreeFromEdges roots an undirected spanning tree given as an edge list at root
// and returns it in parent-pointer form.
//
// Error Conditions:
//   - ErrRootOutOfRange : root outside [0, n).
//   - ErrDisconnected   : the edges do not span all n vertices from root.
//
// Complexity: O(V + E).
func TreeFromEdges(n, root int, edges []Edge) (*Tree, error) {
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}
	type half struct {
		to int
		w  float64
	}
	adj := make([][]half, n)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge %d-%d", ErrRootOutOfRange, e.From, e.To)
		}
		adj[e.From] = append(adj[e.From], half{to: e.To, w: e.Weight})
		adj[e.To] = append(adj[e.To], half{to: e.From, w: e.Weight})
	}

	t := newTree(n, root)
	t.MinWeight[root] = 0
	seen := make([]bool, n)
	seen[root] = true
	stack := []int{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, h := range adj[v] {
			if seen[h.to] {
				continue
			}
			seen[h.to] = true
			t.Parent[h.to] = v
			t.MinWeight[h.to] = h.w
			stack = append(stack, h.to)
		}
	}
	for v := 0; v < n; v++ {
		if !seen[v] {
			return nil, fmt.Errorf("%w: vertex %d not covered", ErrDisconnected, v)
		}
	}

	return t, nil
}

// Compute selects and runs the MST algorithm based on opts.Method and returns
// the tree rooted at opts.Root.
//
//	– MethodPrim:    Prim(g, opts.Root).
//	– MethodKruskal: Kruskal(g), then TreeFromEdges at opts.Root.
//	– otherwise:     ErrUnknownMethod.
func Compute(g *graph.Graph, opts MSTOptions) (*Tree, error) {
	switch opts.Method {
	case MethodPrim:
		return Prim(g, opts.Root)
	case MethodKruskal:
		edges, _, err := Kruskal(g)
		if err != nil {
			return nil, err
		}
		return TreeFromEdges(g.Size(), opts.Root, edges)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
