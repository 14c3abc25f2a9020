package mst

import (
	"fmt"

	"github.com/katalvlaran/spanforest/disjointset"
)

// Kruskal computes a minimum spanning forest of the undirected graph with
// vertices 0..vertices-1 and the given edges.
//
// Error Conditions:
//   - ErrInvalidVertexCount : vertices < 0.
//   - ErrInvalidEdge        : some endpoint outside [0, vertices) (as *EdgeError).
//   - ErrUnknownOrdering    : WithOrdering got an undefined value.
//   - ErrDisconnected       : more than one component and WithRequireConnected set.
//
// Steps:
//  1. Validate the vertex count and every edge; nothing is allocated on failure.
//  2. Build the ordering supplier (sorted copy or heap).
//  3. Size a disjoint-set to exactly `vertices` elements.
//  4. For each edge in weight order: if find(u) != find(v), accept it, add its
//     weight and union the two roots; otherwise discard it (cycle or self-loop).
//  5. Stop at vertices−1 accepted edges or when the supply is exhausted.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func Kruskal(vertices int, edges []Edge, opts ...Option) (Result, error) {
	o := applyOptions(opts)

	// 1. Fail fast on malformed input.
	if err := validate(vertices, edges); err != nil {
		return Result{}, err
	}

	// 2. Edge supplier.
	src, err := newEdgeSource(o.Ordering, edges)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %d", err, int(o.Ordering))
	}
	if vertices == 0 {
		return Result{Edges: []Edge{}}, nil
	}

	// 3. One singleton per vertex.
	ds := disjointset.New(vertices)

	// 4. Greedy loop.
	var (
		mst       = make([]Edge, 0, min(vertices-1, len(edges)))
		total     int64
		discarded int
	)
	for len(mst) < vertices-1 {
		e, ok := src.Next()
		if !ok {
			break
		}
		ru, err := ds.Find(e.From)
		if err != nil {
			return Result{}, err
		}
		rv, err := ds.Find(e.To)
		if err != nil {
			return Result{}, err
		}
		if ru == rv {
			// Endpoints already connected: the edge would close a cycle.
			discarded++
			continue
		}
		if err = ds.Union(ru, rv); err != nil {
			return Result{}, err
		}
		mst = append(mst, e)
		total += e.Weight
		o.Logger.Trace().
			Int("from", e.From).
			Int("to", e.To).
			Int64("weight", e.Weight).
			Msg("edge accepted")
	}

	res := Result{Edges: mst, Total: total, Components: ds.Count()}
	o.Logger.Debug().
		Str("method", MethodKruskal).
		Str("ordering", o.Ordering.String()).
		Int("vertices", vertices).
		Int("edges", len(edges)).
		Int("accepted", len(mst)).
		Int("discarded", discarded).
		Int("components", res.Components).
		Int64("total", total).
		Msg("spanning forest built")

	// 5. Optional connectivity requirement.
	if o.RequireConnected && !res.Spanning() {
		return Result{}, ErrDisconnected
	}

	return res, nil
}
