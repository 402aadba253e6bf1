// SPDX-License-Identifier: MIT

package maze

import "github.com/katalvlaran/labyrinth/grid"

// Generator carves passages into a blank maze. Implementations must open
// walls only through (*Maze).OpenWall and leave a spanning tree behind.
type Generator interface {
	Generate(m *Maze) error
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(m *Maze) error

// Generate calls f(m).
func (f GeneratorFunc) Generate(m *Maze) error { return f(m) }

// VisitFunc is called once per cell reached by a traversal.
type VisitFunc func(c *grid.Cell) error
