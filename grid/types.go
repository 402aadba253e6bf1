// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates width or height is not positive.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")

	// ErrInvalidCoordinate indicates a row or column outside the grid.
	ErrInvalidCoordinate = errors.New("grid: coordinate out of range")

	// ErrNotAdjacent indicates two cells do not share a wall.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")

	// ErrForeignCell indicates a cell that does not belong to this grid.
	ErrForeignCell = errors.New("grid: cell belongs to another grid")
)

// Position identifies a cell by row and column.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// String renders the position as "(row, column)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// Step returns the position one unit away in direction d.
func (p Position) Step(d Direction) Position {
	return Position{Row: p.Row + d.DY(), Column: p.Column + d.DX()}
}
