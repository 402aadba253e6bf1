// SPDX-License-Identifier: MIT

package event

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Kind tags the variant held by an Update.
type Kind uint8

const (
	// WallRemoved reports a carved passage from Start to End.
	WallRemoved Kind = iota + 1
	// CellMarked reports Start joining the tree and Frontier cells newly
	// discovered next to it.
	CellMarked
	// StartCellChosen reports the seed cell of the spanning tree in Start.
	StartCellChosen
	// EdgeRemoved reports a walk edge Start–End discarded by loop erasure.
	EdgeRemoved
)

// String returns the upper-case event name.
func (k Kind) String() string {
	switch k {
	case WallRemoved:
		return "WALL_REMOVED"
	case CellMarked:
		return "CELL_MARKED"
	case StartCellChosen:
		return "START_CELL_CHOSEN"
	case EdgeRemoved:
		return "EDGE_REMOVED"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Update is a value snapshot of one generation step.
//
// Field use per Kind:
//
//	WallRemoved      Start, End
//	CellMarked       Start (the cell), Frontier (new frontier cells)
//	StartCellChosen  Start
//	EdgeRemoved      Start, End
type Update struct {
	Kind     Kind
	Start    grid.Position
	End      grid.Position
	Frontier []grid.Position
}

// NewWallRemoved builds a WallRemoved update.
func NewWallRemoved(start, end grid.Position) Update {
	return Update{Kind: WallRemoved, Start: start, End: end}
}

// NewCellMarked builds a CellMarked update. The frontier slice is copied.
func NewCellMarked(cell grid.Position, frontier []grid.Position) Update {
	f := make([]grid.Position, len(frontier))
	copy(f, frontier)

	return Update{Kind: CellMarked, Start: cell, Frontier: f}
}

// NewStartCellChosen builds a StartCellChosen update.
func NewStartCellChosen(cell grid.Position) Update {
	return Update{Kind: StartCellChosen, Start: cell}
}

// NewEdgeRemoved builds an EdgeRemoved update.
func NewEdgeRemoved(start, end grid.Position) Update {
	return Update{Kind: EdgeRemoved, Start: start, End: end}
}

// String renders the update for logs.
func (u Update) String() string {
	switch u.Kind {
	case CellMarked:
		return fmt.Sprintf("%s%v frontier=%v", u.Kind, u.Start, u.Frontier)
	case StartCellChosen:
		return fmt.Sprintf("%s%v", u.Kind, u.Start)
	default:
		return fmt.Sprintf("%s%v->%v", u.Kind, u.Start, u.End)
	}
}

// Listener consumes updates. A returned error is reported, not propagated.
type Listener func(Update) error
