// Package graph provides a dense, undirected, weighted graph stored as an
// n×n adjacency matrix.
//
// Description:
//
//	Cell (i, j) holds the weight of the undirected edge {i, j}, or +Inf when no
//	edge exists. The matrix is kept symmetric at all times: AddEdge and
//	RemoveEdge always write both (i, j) and (j, i). The vertex count is fixed
//	at construction; the graph is never resized.
//
// Use Graph for constant-time edge queries on complete or near-complete graphs,
// which is exactly what the MST-based TSP pipeline feeds into Prim's algorithm.
//
// Time complexity:
//   - New: O(n²)
//   - AddEdge / RemoveEdge / IsEdge / Weight: O(1)
//   - Neighbors: O(n)
//   - Complete: O(n²)
//
// Memory:
//   - O(n²).
package graph
