package graph

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/mstour/geom"
)

// NoEdge is the sentinel weight stored for absent edges.
var NoEdge = math.Inf(1)

// graphErrorf wraps an underlying error with method and index context.
func graphErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Graph.%s(%d,%d): %w", method, i, j, err)
}

// Graph is an undirected weighted graph over vertices [0, n).
type Graph struct {
	n    int       // vertex count
	data []float64 // row-major n×n weights, NoEdge for "no edge"
}

// Edge is one undirected edge with From < To unless it is a self-loop.
type Edge struct {
	From, To int
	Weight   float64
}

// New creates a graph with n vertices and no edges.
// Stage 1 (Validate): n > 0.
// Stage 2 (Prepare): allocate the flat matrix.
// Stage 3 (Finalize): fill every cell, diagonal included, with NoEdge.
// Complexity: O(n²) time and memory.
func New(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	data := make([]float64, n*n)
	for i := range data {
		data[i] = NoEdge
	}

	return &Graph{n: n, data: data}, nil
}

// Complete builds the complete Euclidean graph over points: vertex i is points[i]
// and every pair i != j is joined by an edge weighted with their distance.
// A NaN or infinite distance (non-finite coordinates) yields ErrInvalidWeight.
// Complexity: O(n²).
func Complete(points []geom.Point) (*Graph, error) {
	if len(points) == 0 {
		return nil, ErrTooFewPoints
	}
	g, err := New(len(points))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			d := geom.Distance(points[i], points[j])
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, graphErrorf("Complete", i, j, ErrInvalidWeight)
			}
			g.data[i*g.n+j] = d
			g.data[j*g.n+i] = d
		}
	}

	return g, nil
}

// Size returns the vertex count.
func (g *Graph) Size() int { return g.n }

// check validates a vertex pair.
func (g *Graph) check(method string, i, j int) error {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return graphErrorf(method, i, j, ErrOutOfRange)
	}

	return nil
}

// AddEdge sets the weight of {i, j} in both directions, overwriting any
// existing weight. Setting NoEdge is equivalent to RemoveEdge.
// Complexity: O(1).
func (g *Graph) AddEdge(i, j int, weight float64) error {
	if err := g.check("AddEdge", i, j); err != nil {
		return err
	}
	if math.IsNaN(weight) {
		return graphErrorf("AddEdge", i, j, ErrInvalidWeight)
	}
	g.data[i*g.n+j] = weight
	g.data[j*g.n+i] = weight

	return nil
}

// RemoveEdge resets {i, j} to NoEdge in both directions.
// Complexity: O(1).
func (g *Graph) RemoveEdge(i, j int) error {
	if err := g.check("RemoveEdge", i, j); err != nil {
		return err
	}
	g.data[i*g.n+j] = NoEdge
	g.data[j*g.n+i] = NoEdge

	return nil
}

// IsEdge reports whether {i, j} carries a weight other than NoEdge.
// Out-of-range pairs are never edges.
// Complexity: O(1).
func (g *Graph) IsEdge(i, j int) bool {
	if g.check("IsEdge", i, j) != nil {
		return false
	}

	return !math.IsInf(g.data[i*g.n+j], 1)
}

// Weight returns the weight of {i, j}, NoEdge when absent.
// Complexity: O(1).
func (g *Graph) Weight(i, j int) (float64, error) {
	if err := g.check("Weight", i, j); err != nil {
		return 0, err
	}

	return g.data[i*g.n+j], nil
}

// Neighbors returns every u with IsEdge(v, u), in ascending order. v itself is
// included only when a finite self-loop was set explicitly.
// Complexity: O(n).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.check("Neighbors", v, v); err != nil {
		return nil, err
	}
	row := g.data[v*g.n : (v+1)*g.n]
	out := make([]int, 0, g.n)
	for u, w := range row {
		if !math.IsInf(w, 1) {
			out = append(out, u)
		}
	}

	return out, nil
}

// Edges returns every finite edge {i, j} with i < j once, ordered by (i, j).
// Self-loops are skipped: they never belong to a spanning tree.
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	var out []Edge
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			if w := g.data[i*g.n+j]; !math.IsInf(w, 1) {
				out = append(out, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return out
}

// String prints the matrix up to the highest vertex that carries an edge,
// writing -1 for absent edges. An edgeless graph prints its first cell only.
// Complexity: O(n²).
func (g *Graph) String() string {
	last := 0
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			if !math.IsInf(g.data[i*g.n+j], 1) {
				last = max(last, i, j)
			}
		}
	}

	var sb strings.Builder
	for i = 0; i <= last; i++ {
		for j = 0; j <= last; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if w := g.data[i*g.n+j]; math.IsInf(w, 1) {
				sb.WriteString("-1")
			} else {
				fmt.Fprintf(&sb, "%g", w)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
