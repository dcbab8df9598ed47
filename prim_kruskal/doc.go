// Package prim_kruskal computes Minimum Spanning Trees over a dense graph.Graph.
//
// What & Why
//
//	Given a connected, weighted, undirected graph G = (V, E), an MST is a subset
//	T ⊆ E that spans V with minimum total weight. Doubling an MST bounds the
//	optimal TSP tour from above, and a pre-order walk of the tree shortcuts that
//	bound into a Hamiltonian cycle (package tsp).
//
// Algorithms Provided
//
//   - Prim(g *graph.Graph, root int) (*Tree, error)
//
//   - Strategy: every vertex is unseen, on the frontier (inside an indexed
//     min-heap), or fixed. The root enters the frontier with key 0. Each pop
//     fixes the lightest frontier vertex and relaxes its edges: a cheaper edge
//     to u updates MinWeight[u] and Parent[u], then decreases u's key if u is
//     waiting or inserts it if this is the first time u is reachable.
//
//   - Complexity: O(V²) on the adjacency matrix, O(log V) per heap operation.
//
//   - Kruskal(g *graph.Graph) ([]Edge, float64, error)
//
//   - Strategy: stable-sort all edges by weight and join components with a
//     union-find. Used to cross-check Prim's total weight and as an
//     alternative Compute method.
//
//   - Complexity: O(E log E + α(V)·E).
//
// Output
//
//	Tree.Parent[v] is the vertex through which v was attached (NoParent for the
//	root); Tree.MinWeight[v] is the weight of that edge. The arrays are allocated
//	fresh per run and owned by the caller afterwards.
//
// Error Conditions
//
//   - ErrInvalidGraph   : nil graph.
//   - ErrRootOutOfRange : root outside [0, n).
//   - ErrDisconnected   : no spanning tree covers every vertex.
//   - ErrHeapProtocol   : the indexed heap rejected an operation; wraps the pq sentinel.
//   - ErrUnknownMethod  : Compute with an unrecognised method.
package prim_kruskal
