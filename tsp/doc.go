// Package tsp turns a Minimum Spanning Tree into an approximate Travelling
// Salesman tour over planar points.
//
// Pipeline (Approximate):
//
//	points → graph.Complete → prim_kruskal.Compute → PreorderCycle → TourLength
//
// Building blocks:
//
//   - PreorderCycle(parent, root) — pre-order walk of a parent-pointer tree with
//     an explicit stack, children in ascending id order, root appended at the end.
//     O(n): child lists are built once from parent.
//
//   - TourLength(points, tour) — Euclidean length of a closed tour, closing edge included.
//
//   - FormatMiles(length) — length · MilesPerUnit with exactly two decimals.
//
//   - ValidateTour / IsPreorder — structural checks; Approximate validates every tour it returns.
//
// Guarantee:
//   - For Euclidean inputs the returned tour is at most 2·OPT.
//
// Errors are package sentinels from types.go; match them with errors.Is.
//
// Use this package for small-to-medium instances (hundreds of points); the dense
// graph costs O(n²) memory.
package tsp
