package mst_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/mst"
)

// ExampleKruskal_triangle: A-B (1), B-C (2), A-C (3).
// The cycle edge A-C is discarded; the MST weighs 3.
func ExampleKruskal_triangle() {
	labels := []string{"A", "B", "C"}
	edges := []mst.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 3},
	}

	res, err := mst.Kruskal(len(labels), edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", res.Total)
	for i, e := range res.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", labels[e.From], labels[e.To])
	}
	// Output: Total: 3, Edges: A-B B-C
}

// ExampleKruskal_forest: two components give a forest, not an error.
func ExampleKruskal_forest() {
	labels := []string{"A", "B", "C", "D"}
	edges := []mst.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 2, To: 3, Weight: 5},
	}

	res, _ := mst.Kruskal(len(labels), edges)
	fmt.Println(len(res.Edges), res.Total, res.Components)
	// Output: 2 10 2
}

// ExamplePrim_pentagon: A-B (1), B-C (2), C-D (3), D-E (5), A-E (12).
func ExamplePrim_pentagon() {
	labels := []string{"A", "B", "C", "D", "E"}
	edges := []mst.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 4, Weight: 12},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
		{From: 3, To: 4, Weight: 5},
	}

	res, err := mst.Prim(len(labels), edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", res.Total)
	for i, e := range res.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", labels[e.From], labels[e.To])
	}
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

func ExampleKruskal_errDisconnected() {
	_, err := mst.Kruskal(2, nil, mst.WithRequireConnected())
	fmt.Println(err)
	// Output: mst: graph is disconnected
}
