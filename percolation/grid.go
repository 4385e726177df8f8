package percolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolation/unionfind"
)

// New creates an n×n grid with every site blocked.
// The virtual top and bottom are not linked to any row until sites open.
// Returns ErrInvalidSize if n ≤ 0 or n²+2 overflows an int.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 || n > (math.MaxInt-2)/n {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	sites := n * n
	uf, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}
	full, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}

	return &Grid{
		n:      n,
		open:   make([]bool, sites),
		uf:     uf,
		full:   full,
		top:    sites,
		bottom: sites + 1,
	}, nil
}

// N returns the side length of the grid.
func (g *Grid) N() int {
	return g.n
}

// Open opens site (row, col) and joins it with its open neighbours, and with
// the virtual top (row 1) or bottom (row N). Opening an open site is a no-op.
// Returns ErrOutOfRange without modifying the grid if the site is invalid.
// Complexity: O(α(N²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.validate("Open", row, col); err != nil {
		return err
	}
	r, c := row-1, col-1
	i := g.index(r, c)
	if g.open[i] {
		return nil
	}
	g.open[i] = true
	g.openCount++

	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if !g.inBounds(nr, nc) {
			continue
		}
		if j := g.index(nr, nc); g.open[j] {
			g.join(i, j)
		}
	}
	// With n == 1 the single site joins both virtual elements.
	if r == 0 {
		g.join(i, g.top)
	}
	if r == g.n-1 {
		_ = g.uf.Union(i, g.bottom)
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrOutOfRange if the site is invalid.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate("IsOpen", row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row-1, col-1)], nil
}

// IsFull reports whether site (row, col) is open and connected to the top row.
// A blocked site is never full.
// Returns ErrOutOfRange if the site is invalid.
// Complexity: O(α(N²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate("IsFull", row, col); err != nil {
		return false, err
	}
	i := g.index(row-1, col-1)
	if !g.open[i] {
		return false, nil
	}
	ok, _ := g.full.Connected(i, g.top)

	return ok, nil
}

// Percolates reports whether the virtual top and bottom are connected.
// Once true it stays true.
// Complexity: O(α(N²)) amortized.
func (g *Grid) Percolates() bool {
	ok, _ := g.uf.Connected(g.top, g.bottom)
	return ok
}

// NumberOfOpenSites returns how many distinct sites have been opened.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// OpenFraction returns NumberOfOpenSites / N².
func (g *Grid) OpenFraction() float64 {
	return float64(g.openCount) / float64(len(g.open))
}

// join unions two elements in both union–find instances.
// Indices are produced internally and are always in range.
func (g *Grid) join(i, j int) {
	_ = g.uf.Union(i, j)
	_ = g.full.Union(i, j)
}
