package mst

import (
	"container/heap"
)

// Prim computes a minimum spanning forest by growing trees with a min-heap.
// The first tree starts at WithRoot (default 0); every further tree starts at
// the smallest vertex index not yet reached.
//
// Error Conditions:
//   - ErrInvalidVertexCount, ErrInvalidEdge : as for Kruskal.
//   - ErrInvalidRoot  : root outside [0, vertices) when vertices > 0.
//   - ErrDisconnected : more than one tree and WithRequireConnected set.
//
// Steps:
//  1. Validate; build adjacency lists (self-loops dropped).
//  2. Mark the start vertex visited and push its incident edges.
//  3. Pop the lightest candidate; if its far end is visited, skip it,
//     otherwise accept it, mark the far end and push its incident edges.
//  4. When the heap drains, restart from the next unvisited vertex.
//
// Accepted edges are oriented from the tree towards the newly reached vertex.
// Equal weights are popped in input order, so the output is deterministic.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(vertices int, edges []Edge, opts ...Option) (Result, error) {
	o := applyOptions(opts)

	// 1. Validate.
	if err := validate(vertices, edges); err != nil {
		return Result{}, err
	}
	if vertices == 0 {
		return Result{Edges: []Edge{}}, nil
	}
	if o.Root < 0 || o.Root >= vertices {
		return Result{}, ErrInvalidRoot
	}

	// Adjacency: both orientations of each edge, tagged with the input position.
	adj := make([][]queuedEdge, vertices)
	for i, e := range edges {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], queuedEdge{edge: e, seq: i})
		adj[e.To] = append(adj[e.To], queuedEdge{edge: Edge{From: e.To, To: e.From, Weight: e.Weight}, seq: i})
	}

	var (
		visited    = make([]bool, vertices)
		mst        = make([]Edge, 0, vertices-1)
		total      int64
		components int
		pq         = &edgePQ{}
	)
	push := func(v int) {
		for _, q := range adj[v] {
			if !visited[q.edge.To] {
				heap.Push(pq, q)
			}
		}
	}

	// 2-4. One tree per start vertex, root first, then ascending indices.
	next := 0
	for start := o.Root; start >= 0; start = nextUnvisited(visited, &next) {
		components++
		visited[start] = true
		push(start)
		for pq.Len() > 0 {
			q := heap.Pop(pq).(queuedEdge)
			v := q.edge.To
			if visited[v] {
				continue
			}
			visited[v] = true
			mst = append(mst, q.edge)
			total += q.edge.Weight
			o.Logger.Trace().
				Int("from", q.edge.From).
				Int("to", v).
				Int64("weight", q.edge.Weight).
				Msg("edge accepted")
			push(v)
		}
	}

	res := Result{Edges: mst, Total: total, Components: components}
	o.Logger.Debug().
		Str("method", MethodPrim).
		Int("root", o.Root).
		Int("vertices", vertices).
		Int("edges", len(edges)).
		Int("accepted", len(mst)).
		Int("components", components).
		Int64("total", total).
		Msg("spanning forest built")

	if o.RequireConnected && !res.Spanning() {
		return Result{}, ErrDisconnected
	}

	return res, nil
}

// nextUnvisited advances *from to the first unvisited index and returns it,
// or -1 when every vertex has been reached.
func nextUnvisited(visited []bool, from *int) int {
	for ; *from < len(visited); *from++ {
		if !visited[*from] {
			return *from
		}
	}

	return -1
}
