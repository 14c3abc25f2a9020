// Package disjointset provides a fixed-size union-find structure over the
// dense indices 0..n-1.
//
// What & Why
//
//   - The set is stored as a single []int. A root slot holds the negated size
//     of its tree, any other slot holds the index of its parent. No per-node
//     allocation, no pointers.
//
//   - Find applies full path compression: every node visited on the way to the
//     root is relinked directly to the root.
//
//   - Union links by size: the root of the smaller tree is attached under the
//     root of the larger one.
//
// Complexity
//
//   - Together the two heuristics give an amortised inverse-Ackermann cost per
//     operation, α(n), which is below 5 for any n that fits in memory.
//
//   - Space: O(n).
//
// Error Conditions
//
//   - ErrIndexOutOfRange (as *IndexError): an index outside [0, Len()) was
//     passed to Find, Union, SizeOf or Connected.
//
// A DisjointSet is not safe for concurrent use.
package disjointset
