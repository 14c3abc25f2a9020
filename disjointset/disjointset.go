package disjointset

// DisjointSet partitions the indices 0..n-1 into disjoint sets.
//
// parent[i] < 0 marks i as a root whose tree holds -parent[i] elements;
// parent[i] >= 0 is the parent of i.
type DisjointSet struct {
	parent []int
	count  int // number of disjoint sets remaining
}

// New creates n singleton sets {0}, {1}, ..., {n-1}.
// A negative n is treated as zero.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = -1
	}

	return d
}

// Len returns the number of elements the set was created with.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the root of the set containing i.
//
// Every node visited on the path from i is relinked directly to the root,
// so a second Find on any of them is a single hop.
// Complexity: amortised O(α(n)).
func (d *DisjointSet) Find(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, err
	}

	// 1. Walk up to the root.
	root := i
	for d.parent[root] >= 0 {
		root = d.parent[root]
	}

	// 2. Compress: point every node on the path straight at the root.
	for i != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}

	return root, nil
}

// Union merges the sets containing a and b.
//
// The root of the smaller tree is linked under the root of the larger one;
// on a tie b's root goes under a's. If a and b are already in the same set
// Union does nothing. Passing roots obtained from Find costs O(1).
// Complexity: amortised O(α(n)).
func (d *DisjointSet) Union(a, b int) error {
	ra, err := d.Find(a)
	if err != nil {
		return err
	}
	rb, err := d.Find(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}

	// Sizes are stored negated, so the larger tree has the smaller value.
	if d.parent[ra] > d.parent[rb] {
		ra, rb = rb, ra
	}
	d.parent[ra] += d.parent[rb]
	d.parent[rb] = ra
	d.count--

	return nil
}

// Connected reports whether a and b belong to the same set.
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// SizeOf returns the number of elements in the set containing i.
func (d *DisjointSet) SizeOf(i int) (int, error) {
	root, err := d.Find(i)
	if err != nil {
		return 0, err
	}

	return -d.parent[root], nil
}

// Sets returns every set as a sorted slice of indices. Sets are ordered by
// their smallest element, so the result is deterministic.
// Complexity: O(n·α(n)).
func (d *DisjointSet) Sets() [][]int {
	byRoot := make(map[int]int, d.count) // root → position in out
	out := make([][]int, 0, d.count)
	for i := range d.parent {
		root, _ := d.Find(i) // i is always in range here
		pos, ok := byRoot[root]
		if !ok {
			pos = len(out)
			byRoot[root] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], i)
	}
	// Indices are visited in ascending order, so each set comes out sorted
	// and sets appear by their smallest element.
	return out
}

func (d *DisjointSet) check(i int) error {
	if i < 0 || i >= len(d.parent) {
		return &IndexError{Index: i, Len: len(d.parent)}
	}

	return nil
}
