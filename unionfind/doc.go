// Package unionfind implements a fixed-size disjoint-set union (union–find)
// over the integer elements 0..M-1.
//
// What:
//
//   - UnionFind partitions M elements into disjoint sets.
//   - Union merges two sets by size: the smaller tree is attached under the
//     larger root; on ties the second root goes under the first.
//   - Find compresses paths by halving: every visited node is re-pointed to
//     its grandparent while walking to the root.
//   - Connected reports whether two elements share a root.
//
// Why:
//
//   - Dynamic connectivity: answer "are x and y connected?" while edges only
//     ever get added (percolation grids, Kruskal MST, image labelling).
//   - No deletion and no splitting: the structure is monotone under Union.
//
// Complexity:
//
//   - New:               O(M) time, O(M) memory (two int slices, never resized).
//   - Find/Union/Connected: O(α(M)) amortized, where α is the inverse Ackermann.
//   - Count/Size:        O(1).
//
// Errors:
//
//   - ErrInvalidSize: New called with M ≤ 0.
//   - ErrOutOfRange:  an element index outside [0, M).
//
// Concurrency:
//
//   - UnionFind is NOT goroutine-safe; even Find mutates the parent slice.
//     Each instance must be owned by a single goroutine.
package unionfind
