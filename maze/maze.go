// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/graph"
	"github.com/katalvlaran/labyrinth/grid"
)

// Maze wraps a Grid and exposes wall opening as its single mutator.
type Maze struct {
	grid *grid.Grid
}

// New builds a width×height maze with every wall closed and, when gen is
// non-nil, runs gen on it.
//
// Errors:
//   - grid.ErrInvalidDimensions if width <= 0 or height <= 0.
//   - any error returned by gen, wrapped.
func New(width, height int, gen Generator) (*Maze, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	m := &Maze{grid: g}
	if gen != nil {
		if err = gen.Generate(m); err != nil {
			return nil, fmt.Errorf("maze: generate %dx%d: %w", width, height, err)
		}
	}

	return m, nil
}

// Grid returns the underlying grid.
func (m *Maze) Grid() *grid.Grid { return m.grid }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.Width() }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.Height() }

// Size returns the number of cells.
func (m *Maze) Size() int { return m.grid.Size() }

// Cell returns the cell at (row, column) or grid.ErrInvalidCoordinate.
func (m *Maze) Cell(row, column int) (*grid.Cell, error) { return m.grid.Cell(row, column) }

// Cells returns every cell in row-major order.
func (m *Maze) Cells() []*grid.Cell { return m.grid.Cells() }

// Neighbors returns the lattice neighbours of (row, column), walls ignored.
func (m *Maze) Neighbors(row, column int) ([]*grid.Cell, error) {
	return m.grid.Neighbors(row, column)
}

// Neighbor returns the cell one step from c in direction d.
func (m *Maze) Neighbor(c *grid.Cell, d grid.Direction) (*grid.Cell, error) {
	return m.grid.Neighbor(c, d)
}

// Passages returns the neighbours reachable from c through open walls, in
// N, S, E, W order.
func (m *Maze) Passages(c *grid.Cell) []*grid.Cell {
	walls := c.OpenWalls()
	out := make([]*grid.Cell, 0, len(walls))
	for _, d := range walls {
		if n, err := m.grid.Neighbor(c, d); err == nil {
			out = append(out, n)
		}
	}

	return out
}

// StartCell is the top-left cell (0, 0).
func (m *Maze) StartCell() *grid.Cell { return m.grid.At(0) }

// EndCell is the bottom-right cell (height-1, width-1).
func (m *Maze) EndCell() *grid.Cell { return m.grid.At(m.grid.Size() - 1) }

// OpenWall removes the wall between the adjacent cells a and b on both
// sides.
//
// Errors:
//   - grid.ErrNotAdjacent if a and b do not share a wall.
//   - grid.ErrForeignCell if either cell belongs to another maze.
func (m *Maze) OpenWall(a, b *grid.Cell) error { return m.grid.OpenWall(a, b) }

// OpenWallCount returns the number of open wall pairs.
func (m *Maze) OpenWallCount() int {
	n := 0
	for _, c := range m.grid.Cells() {
		n += c.OpenWallCount()
	}

	return n / 2
}

// DepthFirstSearch walks the full lattice from (row, column), ignoring
// walls, and calls visit for every cell in discovery order.
func (m *Maze) DepthFirstSearch(row, column int, visit VisitFunc) error {
	start, err := m.grid.Index(row, column)
	if err != nil {
		return err
	}

	return m.grid.Graph().DepthFirstSearch(start, func(i int) error {
		return visit(m.grid.At(i))
	})
}

// Walk is DepthFirstSearch restricted to open passages.
func (m *Maze) Walk(row, column int, visit VisitFunc) error {
	start, err := m.grid.Index(row, column)
	if err != nil {
		return err
	}

	return m.grid.Graph().DepthFirstSearch(start, func(i int) error {
		return visit(m.grid.At(i))
	}, graph.WithFilterNeighbor(func(from, to int) bool {
		return m.grid.Connected(m.grid.At(from), m.grid.At(to))
	}))
}

// IsPerfect reports whether the open passages form a spanning tree: exactly
// Size()-1 wall pairs are open and every cell is reachable from the start.
func (m *Maze) IsPerfect() bool {
	if m.OpenWallCount() != m.Size()-1 {
		return false
	}
	reached := 0
	_ = m.Walk(0, 0, func(*grid.Cell) error {
		reached++
		return nil
	})

	return reached == m.Size()
}
