// Package bfs provides breadth-first search over a graph.Graph.
//
// BFS explores vertices in increasing hop distance from a start vertex and
// returns the visit order, per-vertex depth and the BFS parent links. Edge
// weights are ignored: any finite cell of the adjacency matrix is a hop.
//
// Options:
//   - WithContext   — cancellation, checked once per dequeued vertex.
//   - WithOnVisit   — callback per visited vertex; an error aborts the walk.
//   - WithMaxDepth  — do not enqueue vertices deeper than d (0 = unlimited).
//
// Each vertex is marked when it is enqueued, so it is visited exactly once even
// on complete graphs where every vertex is offered by every other.
//
// Complexity: O(V²) on the adjacency matrix (Neighbors is O(V)).
package bfs
