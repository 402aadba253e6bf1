// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Cell is one square of a Grid. Its identity is its Position; its only
// mutable state is the set of open walls, changed exclusively by
// Grid.OpenWall.
type Cell struct {
	position  Position
	openWalls mapset.Set[Direction]
}

func newCell(row, column int) *Cell {
	return &Cell{
		position:  Position{Row: row, Column: column},
		openWalls: mapset.New[Direction](),
	}
}

// Row returns the cell's row.
func (c *Cell) Row() int { return c.position.Row }

// Column returns the cell's column.
func (c *Cell) Column() int { return c.position.Column }

// Position returns the cell's coordinates.
func (c *Cell) Position() Position { return c.position }

// IsOpen reports whether the wall on side d has been removed.
func (c *Cell) IsOpen(d Direction) bool { return c.openWalls.Has(d) }

// OpenWallCount returns how many of the four walls are open.
func (c *Cell) OpenWallCount() int { return c.openWalls.Size() }

// OpenWalls returns the open sides in canonical N, S, E, W order.
func (c *Cell) OpenWalls() []Direction {
	out := make([]Direction, 0, c.openWalls.Size())
	for _, d := range Directions {
		if c.openWalls.Has(d) {
			out = append(out, d)
		}
	}

	return out
}

// IsCorridor reports whether the cell is a straight pass-through: exactly
// two open walls, facing each other.
func (c *Cell) IsCorridor() bool {
	if c.openWalls.Size() != 2 {
		return false
	}
	walls := c.OpenWalls()

	return walls[0].Opposite() == walls[1]
}

// String renders the cell as "Cell(row, column)".
func (c *Cell) String() string {
	return fmt.Sprintf("Cell%v", c.position)
}
