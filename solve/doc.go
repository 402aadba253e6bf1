// SPDX-License-Identifier: MIT

// Package solve finds the unique path through a perfect maze.
//
// The solver never searches cell by cell. It first compresses the maze into
// a junction graph whose vertices are the start cell plus every cell that is
// not a straight corridor (turns, branches, dead ends) and whose edges stand
// for whole corridor runs. A depth-first walk of that graph from the start
// orients the tree: every junction learns which neighbour leads back to the
// start. The path is then read backwards from the end cell, and corridor
// edges are expanded cell by cell along their axis.
//
// The maze must be a spanning tree. Solve checks this up front and reports
// ErrNotPerfect rather than following a broken predecessor chain.
package solve
