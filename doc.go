// Package spanforest computes minimum spanning trees, and minimum spanning
// forests for disconnected graphs, over undirected graphs with integer weights.
//
// Under the hood, everything is organized under a few small packages:
//
//	disjointset/ - array-backed union-find with path compression and union by size
//	registry/    - dense, first-seen numbering of vertex labels
//	mst/         - Kruskal (sorted or heap edge ordering) and Prim over indexed edges
//	network/     - label-level graph that ties registry and mst together
//	chainfile/   - reader for "v1,v2,w[,v3,w3...]" chain files
//
// The spanforest command (cmd/spanforest) reads a chain file and prints the
// result as text, a table, JSON or YAML.
//
// Quick example:
//
//	    A──1──B
//	     \    │
//	      3   2
//	       \  │
//	         C
//
//	n := network.New()
//	_ = n.AddChain([]string{"A", "B", "C"}, []int64{1, 2})
//	_ = n.AddEdge("A", "C", 3)
//	f, _ := n.SpanningForest() // f.Edges = A-B, B-C; f.Total = 3
//
//	go get github.com/katalvlaran/spanforest
package spanforest
