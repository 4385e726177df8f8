// Package percolation is the root of a small toolkit for studying site
// percolation on square grids: how many sites of an N×N grid must be opened
// at random before the open sites connect the top row to the bottom row?
//
// 🚀 What is inside?
//
//	• unionfind/   — weighted quick-union with path compression over 0..M-1
//	• percolation/ — the N×N Grid: Open, IsOpen, IsFull, Percolates
//	• montecarlo/  — seeded, optionally parallel threshold estimation
//	• cmd/percolationstats/ — command-line driver: percolationstats N T
//
// Quick ASCII example (X = open):
//
//	X . .
//	X . .
//	X X X
//
//	percolates through the left column; every open site is full.
//
// The estimated threshold for large N approaches p* ≈ 0.5927.
//
//	go install github.com/katalvlaran/percolation/cmd/percolationstats@latest
package percolation
