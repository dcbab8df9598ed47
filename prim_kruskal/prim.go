// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a root vertex over a graph.Graph using an indexed min-heap with decrease-key.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstour/graph"
	"github.com/katalvlaran/mstour/pq"
)

// primRun holds the per-computation state. It is allocated fresh by Prim and
// never shared.
type primRun struct {
	g       *graph.Graph
	tree    *Tree
	visited []bool
	front   *pq.IndexedMinHeap
}

// Prim computes the Minimum Spanning Tree of g rooted at root.
//
// Error Conditions:
//   - ErrInvalidGraph   : g is nil.
//   - ErrRootOutOfRange : root outside [0, n).
//   - ErrDisconnected   : some vertex is unreachable from root.
//   - ErrHeapProtocol   : the priority queue rejected an operation (wraps the pq sentinel).
//
// Steps:
//  1. Validate graph and root.
//  2. Allocate parent / minWeight / visited and a queue of capacity n.
//  3. Insert root with key 0 and no parent.
//  4. While the frontier is not empty: pop the lightest vertex v and visit it:
//     a. mark v fixed;
//     b. for each neighbor u not fixed with weight(v,u) < minWeight[u]:
//     record minWeight[u] and parent[u] = v,
//     then decrease u's key if it is on the frontier, else insert it.
//  5. If any vertex stayed unreached → ErrDisconnected.
//
// Complexity: O(V²) for neighbor enumeration on a dense matrix plus O(log V) per relaxation.
// Memory: O(V).
func Prim(g *graph.Graph, root int) (*Tree, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	n := g.Size()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}

	front, err := pq.New(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeapProtocol, err)
	}
	r := &primRun{
		g:       g,
		tree:    newTree(n, root),
		visited: make([]bool, n),
		front:   front,
	}

	r.tree.MinWeight[root] = 0
	if err = r.front.Insert(root, 0); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeapProtocol, err)
	}

	var v int
	for !r.front.IsEmpty() {
		if v, err = r.front.DeleteMin(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrHeapProtocol, err)
		}
		if err = r.visit(v); err != nil {
			return nil, err
		}
	}

	for u := 0; u < n; u++ {
		if !r.visited[u] {
			return nil, fmt.Errorf("%w: vertex %d unreachable from %d", ErrDisconnected, u, root)
		}
	}

	return r.tree, nil
}

// visit moves v from the frontier to the tree and relaxes its edges.
func (r *primRun) visit(v int) error {
	r.visited[v] = true
	neighbors, err := r.g.Neighbors(v)
	if err != nil {
		return err
	}
	for _, u := range neighbors {
		if r.visited[u] {
			continue
		}
		w, err := r.g.Weight(v, u)
		if err != nil {
			return err
		}
		if w >= r.tree.MinWeight[u] {
			continue
		}
		r.tree.MinWeight[u] = w
		r.tree.Parent[u] = v

		if r.front.Contains(u) {
			err = r.front.DecreaseKey(u, w)
		} else {
			err = r.front.Insert(u, w)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHeapProtocol, err)
		}
	}

	return nil
}
