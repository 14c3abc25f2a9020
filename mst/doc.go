// Package mst computes minimum spanning trees, and minimum spanning forests for
// disconnected input, over an undirected graph whose vertices are the dense
// indices 0..V-1 and whose edges carry int64 weights.
//
// What & Why
//
//   - A minimum spanning forest picks, for every connected component, a subset
//     of edges that connects all of its vertices without a cycle at the
//     smallest possible total weight. For a connected graph it is the MST and
//     has exactly V−1 edges; with k components it has V−k.
//
//   - Typical uses: cheapest backbone for a network of sites, single-linkage
//     clustering (cut the heaviest tree edges), and as a subroutine in
//     approximation algorithms.
//
// Algorithms Provided
//
//   - Kruskal(vertices int, edges []Edge, opts ...Option) (Result, error)
//
//   - Strategy: take the edges in non-decreasing weight order and keep each one
//     whose endpoints are still in different components, as tracked by a
//     disjointset.DisjointSet sized to the vertex count. Stop once V−1 edges
//     are accepted or the edges run out.
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
//
//   - Prim(vertices int, edges []Edge, opts ...Option) (Result, error)
//
//   - Strategy: grow a tree from a root using a min-heap of candidate edges;
//     when the heap drains and vertices remain unvisited, start a new tree
//     from the smallest unvisited index.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
//   - Compute dispatches on WithMethod and defaults to Kruskal.
//
// Edge Ordering
//
//	Kruskal consumes edges through an ordering supplier selected with
//	WithOrdering:
//	  - OrderingSort (default): one stable sort of a copy of the input.
//	  - OrderingHeap: a binary min-heap, popped lazily; cheaper when the tree
//	    completes after a small prefix of a large edge list.
//	Both break weight ties by input position, so they yield the same
//	sequence and the same result for a fixed input order.
//
// Error Conditions
//
//   - ErrInvalidVertexCount: vertices < 0.
//   - ErrInvalidEdge (as *EdgeError): an edge endpoint lies outside
//     [0, vertices). Checked for every edge before any work is done.
//   - ErrInvalidRoot: Prim root outside [0, vertices).
//   - ErrDisconnected: more than one component and WithRequireConnected set.
//   - ErrUnknownMethod, ErrUnknownOrdering: bad option values.
//   - disjointset.ErrIndexOutOfRange: propagated unchanged if the union-find
//     structure rejects an index.
//
// Zero vertices yields an empty result and no error. A disconnected graph is
// not an error by default: the result is a forest and Result.Components
// tells how many trees it has.
//
// Nothing in this package is safe for concurrent use of a single call's
// state, but separate calls share nothing and may run in parallel.
package mst
