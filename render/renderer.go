// SPDX-License-Identifier: MIT

package render

import (
	"github.com/katalvlaran/labyrinth/event"
	"github.com/katalvlaran/labyrinth/grid"
)

// Renderer draws a maze while it is generated.
type Renderer interface {
	// SetStartCell highlights the cell the generator started from.
	SetStartCell(cell grid.Position)
	// ClearPath forgets the path currently being drawn.
	ClearPath()
	// AddCellToGeneratedPath extends the current path by one cell.
	AddCellToGeneratedPath(cell grid.Position)
	// EndOfCurrentPath returns the last cell of the current path, if any.
	EndOfCurrentPath() (grid.Position, bool)
	// AddCellsToFrontier highlights newly discovered frontier cells.
	AddCellsToFrontier(cells []grid.Position)
	// RemoveWall erases the wall between two adjacent cells.
	RemoveWall(start, end grid.Position)
	// RemoveEdge erases a previously drawn walk edge.
	RemoveEdge(start, end grid.Position)
	// Delay pauses so the latest step stays visible.
	Delay()
	// Refresh flushes pending drawing.
	Refresh()
}

// Listener adapts r to an event.Listener.
//
//	StartCellChosen  SetStartCell
//	WallRemoved      restart the path at Start unless it already ends
//	                 there, then RemoveWall and extend the path to End
//	CellMarked       AddCellsToFrontier, ClearPath
//	EdgeRemoved      ClearPath, RemoveEdge
//
// Every update ends with Refresh; StartCellChosen and WallRemoved are
// followed by Delay.
func Listener(r Renderer) event.Listener {
	return func(u event.Update) error {
		switch u.Kind {
		case event.StartCellChosen:
			r.SetStartCell(u.Start)
		case event.WallRemoved:
			if end, ok := r.EndOfCurrentPath(); !ok || end != u.Start {
				r.ClearPath()
				r.AddCellToGeneratedPath(u.Start)
			}
			r.RemoveWall(u.Start, u.End)
			r.AddCellToGeneratedPath(u.End)
		case event.CellMarked:
			r.AddCellsToFrontier(u.Frontier)
			r.ClearPath()
		case event.EdgeRemoved:
			r.ClearPath()
			r.RemoveEdge(u.Start, u.End)
		}

		r.Refresh()

		if u.Kind == event.StartCellChosen || u.Kind == event.WallRemoved {
			r.Delay()
		}

		return nil
	}
}
