package mst

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrInvalidEdge indicates an edge endpoint outside [0, vertices).
	ErrInvalidEdge = errors.New("mst: edge references an unregistered vertex")

	// ErrInvalidVertexCount indicates a negative vertex count.
	ErrInvalidVertexCount = errors.New("mst: vertex count must be non-negative")

	// ErrInvalidRoot indicates a Prim root outside [0, vertices).
	ErrInvalidRoot = errors.New("mst: root vertex out of range")

	// ErrDisconnected indicates that the graph has more than one component
	// while WithRequireConnected was set.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates a method name other than MethodKruskal or MethodPrim.
	ErrUnknownMethod = errors.New("mst: unknown method")

	// ErrUnknownOrdering indicates an Ordering value that is not defined.
	ErrUnknownOrdering = errors.New("mst: unknown edge ordering")
)

// Edge is an undirected weighted edge between two vertex indices.
// From and To carry no direction; they keep the order the caller supplied.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// EdgeError reports the first edge that failed validation.
// It unwraps to ErrInvalidEdge.
type EdgeError struct {
	Position int // index of the edge in the input slice
	Edge     Edge
	Vertices int
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("mst: edge #%d (%d-%d, weight %d) references a vertex outside [0, %d)",
		e.Position, e.Edge.From, e.Edge.To, e.Edge.Weight, e.Vertices)
}

// Unwrap lets errors.Is(err, ErrInvalidEdge) match.
func (e *EdgeError) Unwrap() error { return ErrInvalidEdge }

// Result is a minimum spanning forest.
//
//	Edges      - accepted edges in acceptance order.
//	Total      - sum of their weights.
//	Components - number of trees; 1 for a connected non-empty graph, 0 for an empty one.
type Result struct {
	Edges      []Edge
	Total      int64
	Components int
}

// Spanning reports whether the result is a single tree covering every vertex.
func (r Result) Spanning() bool { return r.Components <= 1 }

// MethodKruskal selects Kruskal's algorithm (ordered edges plus union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// Ordering selects how Kruskal receives edges in weight order.
type Ordering int

const (
	// OrderingSort stable-sorts a copy of the edges once.
	OrderingSort Ordering = iota
	// OrderingHeap pops edges lazily from a binary min-heap.
	OrderingHeap
)

// String returns the flag spelling of the ordering.
func (o Ordering) String() string {
	switch o {
	case OrderingSort:
		return "sort"
	case OrderingHeap:
		return "heap"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// ParseOrdering converts "sort" or "heap" into an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "sort", "":
		return OrderingSort, nil
	case "heap":
		return OrderingHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrdering, s)
	}
}

// MSTOptions configures a run. Use DefaultOptions for the defaults.
//
// Fields:
//
//	Method           - MethodKruskal or MethodPrim (Compute only).
//	Root             - start vertex for Prim; ignored by Kruskal.
//	Ordering         - edge supplier for Kruskal; ignored by Prim.
//	RequireConnected - return ErrDisconnected instead of a forest.
//	Logger           - receives a debug summary and per-edge trace events.
type MSTOptions struct {
	Method           string
	Root             int
	Ordering         Ordering
	RequireConnected bool
	Logger           zerolog.Logger
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm used by Compute.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRoot sets the first start vertex for Prim. Ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) { opts.Root = root }
}

// WithOrdering sets the edge ordering supplier for Kruskal.
func WithOrdering(o Ordering) Option {
	return func(opts *MSTOptions) { opts.Ordering = o }
}

// WithRequireConnected makes a disconnected graph an error.
func WithRequireConnected() Option {
	return func(opts *MSTOptions) { opts.RequireConnected = true }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *MSTOptions) { opts.Logger = l }
}

// DefaultOptions returns Kruskal with sorted ordering, root 0, forests
// allowed and a no-op logger.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:   MethodKruskal,
		Root:     0,
		Ordering: OrderingSort,
		Logger:   zerolog.Nop(),
	}
}

func applyOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the algorithm named by WithMethod.
//
//	- MethodKruskal (default): Kruskal(vertices, edges, opts...).
//	- MethodPrim:              Prim(vertices, edges, opts...).
//	- anything else:           ErrUnknownMethod.
func Compute(vertices int, edges []Edge, opts ...Option) (Result, error) {
	o := applyOptions(opts)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(vertices, edges, opts...)
	case MethodPrim:
		return Prim(vertices, edges, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate checks the vertex count and every edge endpoint before any
// structure is built, so malformed input never reaches the main loop.
func validate(vertices int, edges []Edge) error {
	if vertices < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidVertexCount, vertices)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= vertices || e.To < 0 || e.To >= vertices {
			return &EdgeError{Position: i, Edge: e, Vertices: vertices}
		}
	}

	return nil
}
