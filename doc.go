// Package mstour builds approximate travelling-salesman tours over planar
// points from a Minimum Spanning Tree.
//
// What is inside?
//
//	• geom          – immutable 2-D points, Euclidean distance, extent
//	• pq            – indexed binary min-heap with decrease-key
//	• graph         – dense symmetric adjacency matrix, +Inf for "no edge"
//	• bfs           – breadth-first traversal over graph.Graph
//	• prim_kruskal  – Prim (heap-driven, rooted) and Kruskal (union-find)
//	• tsp           – pre-order cycle, tour length, miles, full pipeline
//	• dataset       – row slicing and row → point parsing for CSV input
//	• metrics       – Prometheus collectors and textfile export
//	• cmd/mstour    – the command-line driver
//
// Quick start:
//
//	pts, _ := dataset.ParsePoints(rows)
//	res, err := tsp.Approximate(pts)
//	fmt.Println(res.Tour, res.Miles)
//
// Guarantees:
//
//   - Prim grows a single tree from the chosen root and reports
//     ErrDisconnected when some vertex stays unreachable.
//   - The tour visits each vertex exactly once before returning to the root,
//     in tree pre-order with children taken in ascending id order.
//   - On metric inputs the tour is at most twice the optimum.
//
// The library packages never log and never panic on user input; failures are
// package-prefixed sentinel errors, matched with errors.Is.
package mstour
