// Package registry assigns dense integer indices to vertex labels.
//
// Array-backed structures such as disjointset need vertices numbered
// 0..V-1. A Registry hands out those numbers in first-seen order: the first
// label registered gets 0, the next new label gets 1, and so on. Registering
// a label twice returns the index it already has.
//
// The registry must be complete before anything is sized from Len().
// It is not safe for concurrent use.
package registry

// Registry maps vertex labels to contiguous indices and back.
type Registry struct {
	index  map[string]int
	labels []string // labels[i] is the label with index i
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register returns the index of label, assigning the next unused one if the
// label has not been seen before.
// Complexity: O(1) amortised.
func (r *Registry) Register(label string) int {
	if i, ok := r.index[label]; ok {
		return i
	}
	i := len(r.labels)
	r.index[label] = i
	r.labels = append(r.labels, label)

	return i
}

// Index looks up the index of a registered label.
func (r *Registry) Index(label string) (int, bool) {
	i, ok := r.index[label]
	return i, ok
}

// Label returns the label registered under index i.
func (r *Registry) Label(i int) (string, bool) {
	if i < 0 || i >= len(r.labels) {
		return "", false
	}

	return r.labels[i], true
}

// Len returns the number of distinct labels registered so far.
func (r *Registry) Len() int { return len(r.labels) }

// Labels returns a copy of all labels in index order.
func (r *Registry) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)

	return out
}
