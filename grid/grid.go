// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/graph"
)

// Grid owns width×height Cells and the lattice graph connecting every cell
// to its orthogonal neighbours.
type Grid struct {
	width, height int
	cells         []*Cell
	lattice       *graph.Graph[int]
}

// New eagerly builds a width×height grid. Cell (r,c) is linked to (r-1,c)
// and (r,c-1) whenever those exist, which yields full 4-neighbour
// connectivity.
//
// Errors:
//   - ErrInvalidDimensions if width <= 0 or height <= 0.
//
// Complexity: O(width·height).
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		width:   width,
		height:  height,
		cells:   make([]*Cell, 0, width*height),
		lattice: graph.New[int](),
	}
	for row := 0; row < height; row++ {
		for column := 0; column < width; column++ {
			i := len(g.cells)
			g.cells = append(g.cells, newCell(row, column))
			g.lattice.AddVertex(i)
			if row > 0 {
				_ = g.lattice.AddEdge(i, i-width)
			}
			if column > 0 {
				_ = g.lattice.AddEdge(i, i-1)
			}
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns width·height.
func (g *Grid) Size() int { return len(g.cells) }

// Graph exposes the lattice over cell indices. It must be treated as
// read-only.
func (g *Grid) Graph() *graph.Graph[int] { return g.lattice }

// Contains reports whether (row, column) lies inside the grid.
func (g *Grid) Contains(row, column int) bool {
	return row >= 0 && row < g.height && column >= 0 && column < g.width
}

// Index maps (row, column) to its arena index.
//
// Errors:
//   - ErrInvalidCoordinate if the coordinate is outside the grid.
func (g *Grid) Index(row, column int) (int, error) {
	if row < 0 || row >= g.height {
		return 0, fmt.Errorf("%w: row %d", ErrInvalidCoordinate, row)
	}
	if column < 0 || column >= g.width {
		return 0, fmt.Errorf("%w: column %d", ErrInvalidCoordinate, column)
	}

	return row*g.width + column, nil
}

// IndexOf returns the arena index of c. The cell must belong to g.
func (g *Grid) IndexOf(c *Cell) int {
	return c.position.Row*g.width + c.position.Column
}

// At returns the cell stored at arena index i. It panics if i is out of
// range, like a slice access.
func (g *Grid) At(i int) *Cell { return g.cells[i] }

// Cell returns the cell at (row, column).
//
// Errors:
//   - ErrInvalidCoordinate if the coordinate is outside the grid.
func (g *Grid) Cell(row, column int) (*Cell, error) {
	i, err := g.Index(row, column)
	if err != nil {
		return nil, err
	}

	return g.cells[i], nil
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	copy(out, g.cells)

	return out
}

// Neighbors returns the orthogonal neighbours of (row, column), regardless
// of walls.
//
// Errors:
//   - ErrInvalidCoordinate if the coordinate is outside the grid.
func (g *Grid) Neighbors(row, column int) ([]*Cell, error) {
	i, err := g.Index(row, column)
	if err != nil {
		return nil, err
	}
	idx, err := g.lattice.Neighbors(i)
	if err != nil {
		return nil, err
	}
	out := make([]*Cell, len(idx))
	for k, j := range idx {
		out[k] = g.cells[j]
	}

	return out, nil
}

// Neighbor returns the cell one step from c in direction d.
//
// Errors:
//   - ErrInvalidCoordinate if that step leaves the grid.
func (g *Grid) Neighbor(c *Cell, d Direction) (*Cell, error) {
	p := c.position.Step(d)

	return g.Cell(p.Row, p.Column)
}

// OpenWall removes the wall shared by a and b: the direction from a to b is
// opened on a and its opposite on b. This is the only mutator of wall state.
//
// Errors:
//   - ErrForeignCell if either cell is not part of g.
//   - ErrNotAdjacent if a and b do not share a wall.
func (g *Grid) OpenWall(a, b *Cell) error {
	if err := g.owns(a, b); err != nil {
		return err
	}
	d, err := Between(a.position, b.position)
	if err != nil {
		return err
	}
	a.openWalls.Put(d)
	b.openWalls.Put(d.Opposite())

	return nil
}

// Connected reports whether a and b are adjacent and the wall between them
// is open.
func (g *Grid) Connected(a, b *Cell) bool {
	d, err := Between(a.position, b.position)

	return err == nil && a.IsOpen(d)
}

func (g *Grid) owns(cells ...*Cell) error {
	for _, c := range cells {
		if c == nil {
			return fmt.Errorf("%w: nil cell", ErrForeignCell)
		}
		p := c.position
		if !g.Contains(p.Row, p.Column) || g.cells[p.Row*g.width+p.Column] != c {
			return fmt.Errorf("%w: %v", ErrForeignCell, c)
		}
	}

	return nil
}
