package mst_test

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/spanforest/disjointset"
	"github.com/katalvlaran/spanforest/mst"
)

// triangle is A-B (1), B-C (2), A-C (3) with A=0, B=1, C=2.
// Its MST is {A-B, B-C} with total weight 3.
func triangle() (int, []mst.Edge) {
	return 3, []mst.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 3},
	}
}

// buildMediumGraph creates a connected graph with n vertices and edgesCount edges.
//   - A chain 0-1-...-(n-1) with weights in [1..10] guarantees connectivity.
//   - The remaining edges join random distinct endpoints with weights in [1..maxWeight].
//
// The generator is seeded so the graph is the same on every run.
func buildMediumGraph(n, edgesCount int, maxWeight int64, seed int64) []mst.Edge {
	r := rand.New(rand.NewSource(seed))
	edges := make([]mst.Edge, 0, edgesCount)
	for i := 1; i < n; i++ {
		edges = append(edges, mst.Edge{From: i - 1, To: i, Weight: 1 + r.Int63n(10)})
	}
	for len(edges) < edgesCount {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, mst.Edge{From: u, To: v, Weight: 1 + r.Int63n(maxWeight)})
	}

	return edges
}

// buildRandomGraph creates n vertices and m random edges with no connectivity
// guarantee; self-loops and parallel edges may appear.
func buildRandomGraph(n, m int, maxWeight int64, seed int64) []mst.Edge {
	r := rand.New(rand.NewSource(seed))
	edges := make([]mst.Edge, m)
	for i := range edges {
		edges[i] = mst.Edge{From: r.Intn(n), To: r.Intn(n), Weight: r.Int63n(maxWeight)}
	}

	return edges
}

// components counts the connected components of the graph.
func components(n int, edges []mst.Edge) int {
	ds := disjointset.New(n)
	for _, e := range edges {
		_ = ds.Union(e.From, e.To)
	}

	return ds.Count()
}

// isForest reports whether edges contain no cycle.
func isForest(n int, edges []mst.Edge) bool {
	ds := disjointset.New(n)
	for _, e := range edges {
		ok, err := ds.Connected(e.From, e.To)
		if err != nil || ok {
			return false
		}
		_ = ds.Union(e.From, e.To)
	}

	return true
}

// bruteForceTotal enumerates every edge subset and returns the minimum weight
// of an acyclic subset with n−k edges, where k is the number of components.
// Only usable for len(edges) ≲ 16.
func bruteForceTotal(n int, edges []mst.Edge) int64 {
	want := n - components(n, edges)
	best := int64(math.MaxInt64)
	for mask := 0; mask < 1<<len(edges); mask++ {
		subset := make([]mst.Edge, 0, want)
		var w int64
		for i, e := range edges {
			if mask&(1<<i) != 0 {
				subset = append(subset, e)
				w += e.Weight
			}
		}
		if len(subset) != want || !isForest(n, subset) {
			continue
		}
		if w < best {
			best = w
		}
	}

	return best
}

// gonumTotal returns the spanning forest weight computed by gonum's Kruskal.
// Self-loops are dropped and parallel edges collapse to the lightest one,
// since gonum's simple graph allows neither.
func gonumTotal(n int, edges []mst.Edge) float64 {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		w := float64(e.Weight)
		if old := g.WeightedEdge(int64(e.From), int64(e.To)); old != nil && old.Weight() <= w {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), w))
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	return path.Kruskal(dst, g)
}
