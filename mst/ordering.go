package mst

import (
	"container/heap"
	"sort"
)

// edgeSource yields edges in non-decreasing weight order, ties broken by
// position in the original input.
type edgeSource interface {
	// Next returns the next edge, or false once all edges are consumed.
	Next() (Edge, bool)
}

// newEdgeSource builds the supplier selected by o. The input slice is never
// modified.
func newEdgeSource(o Ordering, edges []Edge) (edgeSource, error) {
	switch o {
	case OrderingSort:
		return newSortedEdges(edges), nil
	case OrderingHeap:
		return newEdgeHeap(edges), nil
	default:
		return nil, ErrUnknownOrdering
	}
}

// sortedEdges is a one-time stable sort over a private copy.
type sortedEdges struct {
	edges []Edge
	next  int
}

func newSortedEdges(edges []Edge) *sortedEdges {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	// Stable: equal weights keep input order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	return &sortedEdges{edges: sorted}
}

func (s *sortedEdges) Next() (Edge, bool) {
	if s.next >= len(s.edges) {
		return Edge{}, false
	}
	e := s.edges[s.next]
	s.next++

	return e, true
}

// queuedEdge is an edge tagged with its input position for tie-breaking.
type queuedEdge struct {
	edge Edge
	seq  int
}

// edgePQ implements heap.Interface for a min-heap of queuedEdge ordered by
// weight, then by seq.
type edgePQ []queuedEdge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push. Complexity: O(log N) amortized.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(queuedEdge)) }

// Pop is called by heap.Pop and removes the last element after the heap has
// moved the minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// edgeHeap pops edges lazily; building it is O(E), each Next is O(log E).
type edgeHeap struct {
	pq edgePQ
}

func newEdgeHeap(edges []Edge) *edgeHeap {
	pq := make(edgePQ, len(edges))
	for i, e := range edges {
		pq[i] = queuedEdge{edge: e, seq: i}
	}
	heap.Init(&pq)

	return &edgeHeap{pq: pq}
}

func (h *edgeHeap) Next() (Edge, bool) {
	if h.pq.Len() == 0 {
		return Edge{}, false
	}

	return heap.Pop(&h.pq).(queuedEdge).edge, true
}
