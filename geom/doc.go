// Package geom holds the planar point type consumed by the tour pipeline.
//
// A Point is an immutable pair of real coordinates. Distances are plain
// Euclidean distances in the units of the input data; conversion to miles
// happens in package tsp, once, at reporting time.
//
// The heavy lifting is delegated to github.com/paulmach/orb:
//   - Distance / Point.Distance → planar.Distance on orb.Point,
//   - Bounds                   → orb.MultiPoint.Bound.
//
// Both distance forms (method and free function) are equivalent by construction:
// the method simply forwards to the free function.
package geom
