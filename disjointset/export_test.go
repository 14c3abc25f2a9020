package disjointset

// ParentOf exposes the raw slot of i for white-box tests.
func ParentOf(d *DisjointSet, i int) int { return d.parent[i] }
