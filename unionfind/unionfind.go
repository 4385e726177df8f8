package unionfind

import "fmt"

// New creates a UnionFind of m singleton sets {0}, {1}, ..., {m-1}.
// Returns ErrInvalidSize if m ≤ 0.
// Complexity: O(m) time and memory.
func New(m int) (*UnionFind, error) {
	if m <= 0 {
		return nil, fmt.Errorf("New(%d): %w", m, ErrInvalidSize)
	}
	uf := &UnionFind{
		parent: make([]int, m),
		size:   make([]int, m),
		count:  m,
	}
	for i := 0; i < m; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Size returns the number of elements M.
func (uf *UnionFind) Size() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets remaining.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the set containing x.
// Returns ErrOutOfRange if x is outside [0, M).
// Complexity: O(α(M)) amortized.
func (uf *UnionFind) Find(x int) (int, error) {
	if err := uf.validate(x); err != nil {
		return 0, err
	}

	return uf.root(x), nil
}

// Union merges the sets containing x and y. It is a no-op when they
// already share a root.
// Returns ErrOutOfRange if either index is outside [0, M); in that case
// nothing is modified.
// Complexity: O(α(M)) amortized.
func (uf *UnionFind) Union(x, y int) error {
	if err := uf.validate(x); err != nil {
		return err
	}
	if err := uf.validate(y); err != nil {
		return err
	}
	uf.link(uf.root(x), uf.root(y))

	return nil
}

// Connected reports whether x and y belong to the same set.
// Returns ErrOutOfRange if either index is outside [0, M).
// Complexity: O(α(M)) amortized.
func (uf *UnionFind) Connected(x, y int) (bool, error) {
	if err := uf.validate(x); err != nil {
		return false, err
	}
	if err := uf.validate(y); err != nil {
		return false, err
	}

	return uf.root(x) == uf.root(y), nil
}

// SizeOf returns the number of elements in the set containing x.
// Returns ErrOutOfRange if x is outside [0, M).
func (uf *UnionFind) SizeOf(x int) (int, error) {
	if err := uf.validate(x); err != nil {
		return 0, err
	}

	return uf.size[uf.root(x)], nil
}

// validate checks that x is a valid element index.
func (uf *UnionFind) validate(x int) error {
	if x < 0 || x >= len(uf.parent) {
		return fmt.Errorf("index %d not in [0,%d): %w", x, len(uf.parent), ErrOutOfRange)
	}

	return nil
}

// root walks to the root of x, halving the path on the way.
// x must already be validated.
func (uf *UnionFind) root(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// link attaches the smaller of two roots under the larger one.
// Ties attach ry under rx.
func (uf *UnionFind) link(rx, ry int) {
	if rx == ry {
		return
	}
	if uf.size[rx] < uf.size[ry] {
		uf.parent[rx] = ry
		uf.size[ry] += uf.size[rx]
	} else {
		uf.parent[ry] = rx
		uf.size[rx] += uf.size[ry]
	}
	uf.count--
}
