// Package percolation models site percolation on an N×N grid.
//
// What:
//
//   - Grid holds N×N sites, each either blocked or open. All sites start
//     blocked; Open is monotone (a site never re-closes).
//   - A site is full when it is open and joined to the top row through a
//     chain of open, orthogonally adjacent sites.
//   - The grid percolates when some open site of the bottom row is joined to
//     some open site of the top row.
//
// How:
//
//   - Sites map to union–find elements in row-major order: (r, c) ↦ (r-1)·N + (c-1).
//   - Two virtual elements, top = N² and bottom = N²+1, collapse the row
//     membership tests into a single Connected call.
//   - A second union–find without the virtual bottom answers IsFull, so a
//     bottom-row site is never reported full only because some other
//     bottom-row site percolates ("backwash").
//
// Coordinates:
//
//   - Rows and columns are 1-based; (1, 1) is the upper-left site.
//
// Complexity:
//
//   - New:        O(N²) time and memory.
//   - Open:       O(α(N²)) amortized (at most 5 unions per union–find).
//   - IsFull, Percolates: O(α(N²)) amortized.
//   - IsOpen, NumberOfOpenSites: O(1).
//
// Errors:
//
//   - ErrInvalidSize: New called with N ≤ 0 (or N too large for N²+2 to fit an int).
//   - ErrOutOfRange:  a row or column outside [1, N]. Validation happens
//     before any state change.
//
// Concurrency:
//
//   - A Grid is owned by a single goroutine for its whole lifetime.
package percolation
