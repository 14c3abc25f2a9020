// Package network is the label-level entry point: it collects edges between
// named vertices, numbers the vertices through a registry.Registry and runs
// an mst algorithm over the indexed graph.
//
// Vertices are numbered in the order they are first mentioned, either by
// AddVertex or as an endpoint of AddEdge/AddChain. The spanning forest is
// always sized to the number of distinct labels, so isolated vertices and
// disconnected input are handled exactly.
package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spanforest/mst"
	"github.com/katalvlaran/spanforest/registry"
)

var (
	// ErrEmptyLabel indicates an empty vertex label.
	ErrEmptyLabel = errors.New("network: vertex label is empty")

	// ErrChainShape indicates a chain whose weights do not match its labels.
	ErrChainShape = errors.New("network: chain needs exactly one weight per consecutive pair")
)

// LabeledEdge is an edge expressed with vertex labels.
type LabeledEdge struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// Forest is a minimum spanning forest expressed with vertex labels.
type Forest struct {
	Edges      []LabeledEdge `json:"edges" yaml:"edges"`
	Total      int64         `json:"total" yaml:"total"`
	Components int           `json:"components" yaml:"components"`
}

// Network is an undirected weighted multigraph over string labels.
// It is not safe for concurrent use.
type Network struct {
	vertices *registry.Registry
	edges    []mst.Edge
}

// New returns an empty Network.
func New() *Network {
	return &Network{vertices: registry.New()}
}

// AddVertex registers label, possibly as an isolated vertex, and returns its index.
func (n *Network) AddVertex(label string) (int, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}

	return n.vertices.Register(label), nil
}

// AddEdge registers both endpoints and stores the edge.
// Self-loops and parallel edges are kept; the algorithms skip what they cannot use.
func (n *Network) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyLabel
	}
	u := n.vertices.Register(from)
	v := n.vertices.Register(to)
	n.edges = append(n.edges, mst.Edge{From: u, To: v, Weight: weight})

	return nil
}

// AddChain adds the path labels[0]-labels[1]-…-labels[k] where the i-th hop
// weighs weights[i]. A single label registers one vertex and no edge.
func (n *Network) AddChain(labels []string, weights []int64) error {
	if len(labels) == 0 || len(weights) != len(labels)-1 {
		return fmt.Errorf("%w: %d labels, %d weights", ErrChainShape, len(labels), len(weights))
	}
	for _, l := range labels {
		if l == "" {
			return ErrEmptyLabel
		}
	}
	if len(labels) == 1 {
		n.vertices.Register(labels[0])
		return nil
	}
	for i, w := range weights {
		// Labels were checked above, so AddEdge cannot fail here.
		_ = n.AddEdge(labels[i], labels[i+1], w)
	}

	return nil
}

// VertexCount returns the number of distinct labels.
func (n *Network) VertexCount() int { return n.vertices.Len() }

// EdgeCount returns the number of stored edges, loops and duplicates included.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Registry exposes the label↔index mapping.
func (n *Network) Registry() *registry.Registry { return n.vertices }

// Edges returns a copy of the stored edges with labels resolved.
func (n *Network) Edges() []LabeledEdge {
	return n.label(n.edges)
}

// SpanningForest runs mst.Compute over the current vertices and edges and
// returns the result with labels resolved. Options are passed through.
func (n *Network) SpanningForest(opts ...mst.Option) (Forest, error) {
	res, err := mst.Compute(n.vertices.Len(), n.edges, opts...)
	if err != nil {
		return Forest{}, err
	}

	return Forest{
		Edges:      n.label(res.Edges),
		Total:      res.Total,
		Components: res.Components,
	}, nil
}

func (n *Network) label(edges []mst.Edge) []LabeledEdge {
	out := make([]LabeledEdge, len(edges))
	for i, e := range edges {
		from, _ := n.vertices.Label(e.From)
		to, _ := n.vertices.Label(e.To)
		out[i] = LabeledEdge{From: from, To: to, Weight: e.Weight}
	}

	return out
}
