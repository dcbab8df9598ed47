package tsp

import (
	"errors"

	"github.com/katalvlaran/mstour/prim_kruskal"
)

// MilesPerUnit converts input coordinate units (feet in the 1990 crime
// dataset) to miles.
const MilesPerUnit = 0.00018939

// NoParent marks the root in a parent array; it mirrors prim_kruskal.NoParent.
const NoParent = prim_kruskal.NoParent

var (
	// ErrNoPoints is returned when the pipeline receives no points.
	ErrNoPoints = errors.New("tsp: no points")

	// ErrRootOutOfRange is returned when the root is outside [0, n).
	ErrRootOutOfRange = errors.New("tsp: root out of range")

	// ErrBadParent is returned when a parent array entry is out of range,
	// points at itself, or the root has a parent.
	ErrBadParent = errors.New("tsp: malformed parent array")

	// ErrNotSpanning is returned when some vertex is not reachable from the root
	// through parent links (a parent cycle detached from the root).
	ErrNotSpanning = errors.New("tsp: parent array does not span all vertices")

	// ErrDimensionMismatch is returned when a tour does not fit the point set.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStackEmpty is returned by pop/peek on an empty index stack.
	ErrStackEmpty = errors.New("tsp: stack is empty")

	// ErrStackFull is returned by push on a full index stack.
	ErrStackFull = errors.New("tsp: stack is full")
)

// Result holds the outcome of the MST-based approximation.
type Result struct {
	// Tour is the closed cycle: Tour[0] == Tour[n] == Root, every vertex once in Tour[:n].
	Tour []int

	// Root is the start and end vertex.
	Root int

	// Parent is the MST in parent-pointer form (NoParent for Root).
	Parent []int

	// MSTWeight is the total MST weight in input units.
	MSTWeight float64

	// Length is the cycle length in input units.
	Length float64

	// Miles is Length converted with MilesPerUnit, formatted with two decimals.
	Miles string
}

// Options configures Approximate.
type Options struct {
	// Root is the vertex where both Prim and the pre-order walk start.
	Root int

	// Method selects the MST algorithm (prim_kruskal.MethodPrim or MethodKruskal).
	Method string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Root 0 and Prim.
func DefaultOptions() Options {
	return Options{Root: 0, Method: prim_kruskal.MethodPrim}
}

// WithRoot sets the tour root.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// WithMethod sets the MST method.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}
