// SPDX-License-Identifier: MIT

// Package maze is the façade that pairs a grid with a generator.
//
// A Maze owns one grid.Grid for its whole lifetime. Construction optionally
// runs a Generator, which carves passages exclusively through OpenWall.
// Once generation returns the structure is treated as read-only: the solver,
// the text renderer and any other caller only query it.
//
// String renders the maze as fixed-width ASCII:
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
//
// Render does the same and marks the cells of a path with " * ".
package maze
