package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstour/geom"
	"github.com/katalvlaran/mstour/graph"
	"github.com/katalvlaran/mstour/prim_kruskal"
)

const tolerance = 1e-9

// buildTriangle constructs a weighted triangle graph:
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// Its MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))

	return g
}

// randomPoints returns n points in [0,1000)² from a deterministic source.
func randomPoints(n int, seed int64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.New(r.Float64()*1000, r.Float64()*1000)
	}

	return pts
}

// checkSpanningTree asserts exactly one root and that every vertex reaches it
// by following Parent pointers within n steps.
func checkSpanningTree(tree *prim_kruskal.Tree) bool {
	n := tree.Size()
	roots := 0
	for v := 0; v < n; v++ {
		if tree.Parent[v] == prim_kruskal.NoParent {
			roots++
			if v != tree.Root {
				return false
			}
		}
	}
	if roots != 1 {
		return false
	}
	for v := 0; v < n; v++ {
		cur, steps := v, 0
		for cur != tree.Root {
			cur = tree.Parent[cur]
			steps++
			if cur == prim_kruskal.NoParent || steps > n {
				return false
			}
		}
	}

	return true
}

// bruteForceMST enumerates every labeled tree on n vertices via Prüfer
// sequences and returns the smallest total weight.
// Complexity: O(n^(n-2) · n²); keep n ≤ 7.
func bruteForceMST(g *graph.Graph) float64 {
	n := g.Size()
	if n <= 1 {
		return 0
	}
	if n == 2 {
		w, _ := g.Weight(0, 1)
		return w
	}
	best := math.Inf(1)
	seq := make([]int, n-2)
	for {
		if w := pruferWeight(g, seq); w < best {
			best = w
		}
		// advance seq as a base-n counter
		i := 0
		for i < len(seq) {
			seq[i]++
			if seq[i] < n {
				break
			}
			seq[i] = 0
			i++
		}
		if i == len(seq) {
			return best
		}
	}
}

// pruferWeight decodes a Prüfer sequence and sums the tree's edge weights.
func pruferWeight(g *graph.Graph, seq []int) float64 {
	n := len(seq) + 2
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		degree[v]++
	}
	var total float64
	for _, v := range seq {
		for leaf := 0; leaf < n; leaf++ {
			if degree[leaf] == 1 {
				w, _ := g.Weight(leaf, v)
				total += w
				degree[leaf]--
				degree[v]--
				break
			}
		}
	}
	u, v := -1, -1
	for i := 0; i < n; i++ {
		if degree[i] == 1 {
			if u < 0 {
				u = i
			} else {
				v = i
			}
		}
	}
	w, _ := g.Weight(u, v)

	return total + w
}

func TestPrim_Validation(t *testing.T) {
	_, err := prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	g := buildTriangle(t)
	_, err = prim_kruskal.Prim(g, 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)
	_, err = prim_kruskal.Prim(g, -1)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)

	_, _, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

// TestPrim_Triangle ensures Prim picks {0—1, 1—2} with weight 3.
func TestPrim_Triangle(t *testing.T) {
	tree, err := prim_kruskal.Prim(buildTriangle(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{prim_kruskal.NoParent, 0, 1}, tree.Parent)
	assert.Equal(t, []float64{0, 1, 2}, tree.MinWeight)
	assert.Equal(t, 3.0, tree.Weight())
	assert.Equal(t, []prim_kruskal.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}, tree.Edges())
}

// TestPrim_UnitSquare checks the four-corner square rooted at 0.
func TestPrim_UnitSquare(t *testing.T) {
	pts := []geom.Point{geom.New(0, 0), geom.New(0, 1), geom.New(1, 1), geom.New(1, 0)}
	g, err := graph.Complete(pts)
	require.NoError(t, err)

	tree, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{prim_kruskal.NoParent, 0, 1, 0}, tree.Parent)
	assert.Equal(t, 3.0, tree.Weight())
	assert.Equal(t, [][]int{{1, 3}, {2}, nil, nil}, tree.Children())
}

func TestPrim_SingleVertex(t *testing.T) {
	g, err := graph.New(1)
	require.NoError(t, err)

	tree, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{prim_kruskal.NoParent}, tree.Parent)
	assert.Zero(t, tree.Weight())
	assert.Empty(t, tree.Edges())

	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

// TestTwoIsolatedVertices verifies both algorithms report ErrDisconnected.
func TestTwoIsolatedVertices(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	_, _, errK := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)

	_, errP := prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
}

// TestPrim_IgnoresSelfLoops makes sure a finite self-loop never becomes a parent edge.
func TestPrim_IgnoresSelfLoops(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddEdge(1, 1, 0))

	tree, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, tree.Weight())
	assert.True(t, checkSpanningTree(tree))
}

func TestPrim_NonZeroRoot(t *testing.T) {
	tree, err := prim_kruskal.Prim(buildTriangle(t), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Root)
	assert.Equal(t, []int{1, 2, prim_kruskal.NoParent}, tree.Parent)
	assert.Equal(t, 3.0, tree.Weight())
}

// TestComparison_RandomComplete compares Prim vs. Kruskal on random complete graphs.
func TestComparison_RandomComplete(t *testing.T) {
	for _, n := range []int{2, 5, 20, 60} {
		g, err := graph.Complete(randomPoints(n, int64(n)))
		require.NoError(t, err)

		mstK, totalK, errK := prim_kruskal.Kruskal(g)
		require.NoError(t, errK)
		assert.Len(t, mstK, n-1)

		tree, errP := prim_kruskal.Prim(g, 0)
		require.NoError(t, errP)
		assert.Len(t, tree.Edges(), n-1)
		assert.True(t, checkSpanningTree(tree))
		assert.InDelta(t, totalK, tree.Weight(), tolerance, "n=%d", n)
	}
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle(t)

	prim, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)

	opts := prim_kruskal.DefaultOptions()
	for _, o := range []prim_kruskal.Option{prim_kruskal.WithMethod(prim_kruskal.MethodKruskal), prim_kruskal.WithRoot(0)} {
		o(&opts)
	}
	kruskal, err := prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, prim.Parent, kruskal.Parent)
	assert.Equal(t, prim.Weight(), kruskal.Weight())

	_, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestTreeFromEdges_Errors(t *testing.T) {
	_, err := prim_kruskal.TreeFromEdges(3, 5, nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)

	_, err = prim_kruskal.TreeFromEdges(3, 0, []prim_kruskal.Edge{{From: 0, To: 1, Weight: 1}})
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestProperties_PrimIsMinimal checks spanning-tree structure and minimality
// against Kruskal and a brute-force enumeration on small random instances.
func TestProperties_PrimIsMinimal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60

	properties := gopter.NewProperties(parameters)

	properties.Property("Prim spans the graph with minimum weight", prop.ForAll(
		func(n int, seed int64, root int) bool {
			g, err := graph.Complete(randomPoints(n, seed))
			if err != nil {
				return false
			}
			tree, err := prim_kruskal.Prim(g, root%n)
			if err != nil || !checkSpanningTree(tree) {
				return false
			}
			_, totalK, err := prim_kruskal.Kruskal(g)
			if err != nil {
				return false
			}

			return math.Abs(tree.Weight()-totalK) < tolerance &&
				math.Abs(tree.Weight()-bruteForceMST(g)) < tolerance
		},
		gen.IntRange(1, 7),
		gen.Int64(),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
