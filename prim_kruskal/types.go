// Package prim_kruskal defines configuration options, result types and sentinel
// errors for MST computation.
package prim_kruskal

import (
	"errors"
	"math"
)

// NoParent marks the root of a Tree (and any vertex never attached).
const NoParent = -1

// ErrInvalidGraph indicates a nil graph was supplied.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrRootOutOfRange indicates that the root vertex is outside [0, n).
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrHeapProtocol indicates the frontier bookkeeping and the priority queue
// disagreed (e.g. decrease-key on an id the queue does not hold). It always
// wraps the underlying pq error.
var ErrHeapProtocol = errors.New("prim_kruskal: frontier out of sync with priority queue")

// ErrUnknownMethod is returned by Compute for an unrecognised Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// Tree is a spanning tree encoded as parent pointers.
//
//	Parent[v]    — vertex through which v was attached, NoParent for Root.
//	MinWeight[v] — weight of the attaching edge; 0 for Root, +Inf if unreached.
type Tree struct {
	Root      int
	Parent    []int
	MinWeight []float64
}

// Size returns the number of vertices covered by the parent array.
func (t *Tree) Size() int { return len(t.Parent) }

// Weight returns the total weight of the tree edges.
// Complexity: O(n).
func (t *Tree) Weight() float64 {
	var sum float64
	for v, p := range t.Parent {
		if p != NoParent {
			sum += t.MinWeight[v]
		}
	}

	return sum
}

// Edges returns the tree edges as (Parent[v], v) pairs in ascending v.
// Complexity: O(n).
func (t *Tree) Edges() []Edge {
	out := make([]Edge, 0, len(t.Parent))
	for v, p := range t.Parent {
		if p != NoParent {
			out = append(out, Edge{From: p, To: v, Weight: t.MinWeight[v]})
		}
	}

	return out
}

// Children returns explicit child lists built from Parent once; each list is in
// ascending vertex order.
// Complexity: O(n).
func (t *Tree) Children() [][]int {
	children := make([][]int, len(t.Parent))
	for v, p := range t.Parent {
		if p != NoParent {
			children[p] = append(children[p], v)
		}
	}

	return children
}

// Edge is one MST edge.
type Edge struct {
	From, To int
	Weight   float64
}

// newTree allocates per-run state: every vertex unreached, no parents.
func newTree(n, root int) *Tree {
	t := &Tree{
		Root:      root,
		Parent:    make([]int, n),
		MinWeight: make([]float64, n),
	}
	for v := 0; v < n; v++ {
		t.Parent[v] = NoParent
		t.MinWeight[v] = math.Inf(1)
	}

	return t
}

// MethodPrim selects Prim's algorithm (grow from a root using an indexed heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and the tree root.
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — root vertex; Prim grows from it, Kruskal's forest is re-rooted at it.
type MSTOptions struct {
	Method string
	Root   int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the tree root.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Prim rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
	}
}
