package percolation

import "fmt"

// InBounds reports whether the 1-based site (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return g.inBounds(row-1, col-1)
}

// Index returns the union–find element of the 1-based site (row, col):
// (row-1)·N + (col-1).
// Returns ErrOutOfRange if the site is invalid.
func (g *Grid) Index(row, col int) (int, error) {
	if err := g.validate("Index", row, col); err != nil {
		return 0, err
	}

	return g.index(row-1, col-1), nil
}

// Site converts an element index in [0, N²) back to its 1-based (row, col).
// The virtual elements have no site and yield ErrOutOfRange.
func (g *Grid) Site(idx int) (row, col int, err error) {
	if idx < 0 || idx >= len(g.open) {
		return 0, 0, fmt.Errorf("Site(%d) with n=%d: %w", idx, g.n, ErrOutOfRange)
	}

	return idx/g.n + 1, idx%g.n + 1, nil
}

// validate rejects any 1-based coordinate outside [1, N].
func (g *Grid) validate(op string, row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%s(%d, %d) with n=%d: %w", op, row, col, g.n, ErrOutOfRange)
	}

	return nil
}

// inBounds reports whether the 0-based (r, c) lies within the grid.
func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.n && c >= 0 && c < g.n
}

// index maps the 0-based (r, c) to a row-major index: r·N + c.
func (g *Grid) index(r, c int) int {
	return r*g.n + c
}
