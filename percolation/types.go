// Package percolation defines the Grid type and sentinel errors.
package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a grid side length that is not positive.
	ErrInvalidSize = errors.New("percolation: grid size must be positive")
	// ErrOutOfRange indicates a row or column outside [1, N].
	ErrOutOfRange = errors.New("percolation: site out of range")
)

// neighborOffsets lists the orthogonal (dRow, dCol) steps: left, right, up, down.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is an N×N percolation system.
//
// uf links open sites to each other, top-row sites to top and bottom-row
// sites to bottom; it answers Percolates. full mirrors uf without the
// bottom element and answers IsFull.
type Grid struct {
	n         int
	open      []bool
	openCount int
	uf        *unionfind.UnionFind
	full      *unionfind.UnionFind
	top       int
	bottom    int
}
