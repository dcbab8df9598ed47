package geom

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is an immutable 2-D point. The zero value is the origin.
type Point struct {
	x, y float64
}

// New returns the point (x, y).
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the first coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the second coordinate.
func (p Point) Y() float64 { return p.y }

// Orb converts p into an orb.Point.
func (p Point) Orb() orb.Point { return orb.Point{p.x, p.y} }

// FromOrb converts an orb.Point into a Point.
func FromOrb(op orb.Point) Point { return Point{x: op.X(), y: op.Y()} }

// Equal reports coordinate-wise equality.
func (p Point) Equal(q Point) bool { return p.x == q.x && p.y == q.y }

// Distance returns the Euclidean distance from p to q.
// Complexity: O(1).
func (p Point) Distance(q Point) float64 {
	return Distance(p, q)
}

// Distance returns the Euclidean distance between a and b.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return planar.Distance(a.Orb(), b.Orb())
}

// Bounds returns the axis-aligned bounding box of points.
// An empty input yields the zero orb.Bound.
// Complexity: O(n).
func Bounds(points []Point) orb.Bound {
	if len(points) == 0 {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = p.Orb()
	}

	return mp.Bound()
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}
