// SPDX-License-Identifier: MIT

// Package grid models a rectangular lattice of cells for maze building.
//
// A Grid of width×height Cells is created once and never resized. Cells are
// stored in a flat, row-major arena (index = row*width + column) and the full
// 4-neighbour lattice is wired into a graph.Graph[int] over those indices,
// independent of which walls are open.
//
// Walls are opened only through Grid.OpenWall, which always opens both sides
// of a shared wall: if d is open on a, then d.Opposite() is open on the
// neighbour of a in direction d.
//
// Coordinates follow (row, column); Direction carries (dx, dy) with dx the
// column delta and dy the row delta, so North is (0,-1).
package grid
