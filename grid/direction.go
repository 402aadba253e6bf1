// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Direction is one of the four compass directions a passage can take.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every Direction in canonical order.
var Directions = [...]Direction{North, South, East, West}

// unit vectors indexed by Direction: dx is the column delta, dy the row delta
var deltas = [...]struct{ dx, dy int }{
	North: {0, -1},
	South: {0, 1},
	East:  {1, 0},
	West:  {-1, 0},
}

// DX returns the change in column when moving in d.
func (d Direction) DX() int { return deltas[d].dx }

// DY returns the change in row when moving in d.
func (d Direction) DY() int { return deltas[d].dy }

// Opposite returns d rotated by 180°.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String returns the single-letter compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Between returns the direction leading from a to the adjacent position b.
//
// Errors:
//   - ErrNotAdjacent if a and b are identical or more than one step apart.
func Between(a, b Position) (Direction, error) {
	dx, dy := b.Column-a.Column, b.Row-a.Row
	for _, d := range Directions {
		if d.DX() == dx && d.DY() == dy {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
}

// Toward returns the axis direction from a to b for two positions on the
// same row or column, however far apart. Same row gives East or West,
// otherwise South or North.
func Toward(a, b Position) Direction {
	if b.Row == a.Row {
		if b.Column > a.Column {
			return East
		}
		return West
	}
	if b.Row > a.Row {
		return South
	}

	return North
}
