package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstour/graph"
	"github.com/katalvlaran/mstour/prim_kruskal"
)

// ExamplePrim_pentagon grows an MST on a 5-vertex cycle
// 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12).
// The MST drops the heaviest edge 0–4 and weighs 11.
func ExamplePrim_pentagon() {
	g, _ := graph.New(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 4, 12)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 3)
	_ = g.AddEdge(3, 4, 5)

	tree, err := prim_kruskal.Prim(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Parent: %v\n", tree.Weight(), tree.Parent)
	// Output: Total: 11, Parent: [-1 0 1 2 3]
}

// ExampleKruskal_envelope runs Kruskal on the "letter envelope":
// 0–1 (4), 1–2 (2), 2–3 (5), 3–0 (4), 0–2 (1), 1–3 (3).
func ExampleKruskal_envelope() {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 2)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 3, 5)
	_ = g.AddEdge(3, 0, 4)

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.From, e.To)
	}
	// Output: Total: 6, Edges: 0-2 1-2 1-3
}

func ExamplePrim_disconnected() {
	g, _ := graph.New(2)
	_, err := prim_kruskal.Prim(g, 0)
	fmt.Println(err)
	// Output: prim_kruskal: graph is disconnected: vertex 1 unreachable from 0
}
