// Package unionfind defines the UnionFind type and its sentinel errors.
package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates a non-positive element count was requested.
	ErrInvalidSize = errors.New("unionfind: size must be positive")
	// ErrOutOfRange indicates an element index outside [0, M).
	ErrOutOfRange = errors.New("unionfind: index out of range")
)

// UnionFind is a weighted quick-union with path compression.
// parent[i] == i marks a root; size[r] is meaningful only for roots and
// holds the number of elements in the tree rooted at r.
// count tracks the number of disjoint sets remaining.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}
