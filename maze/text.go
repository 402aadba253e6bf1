// SPDX-License-Identifier: MIT

package maze

import (
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

const cellWidth = 3

// String renders the maze as ASCII. It equals Render(nil).
func (m *Maze) String() string { return m.Render(nil) }

// Render draws the maze and fills the cells listed in path with " * ".
// Cells from other mazes are matched by position.
func (m *Maze) Render(path []*grid.Cell) string {
	marked := make(map[grid.Position]bool, len(path))
	for _, c := range path {
		if c != nil {
			marked[c.Position()] = true
		}
	}

	w, h := m.Width(), m.Height()
	var sb strings.Builder
	sb.Grow((h*2 + 1) * (w*(cellWidth+1) + 2))

	sb.WriteByte('+')
	for column := 0; column < w; column++ {
		sb.WriteString(strings.Repeat("-", cellWidth))
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')

	for row := 0; row < h; row++ {
		sb.WriteByte('|')
		for column := 0; column < w; column++ {
			c := m.grid.At(row*w + column)
			if marked[c.Position()] {
				sb.WriteString(" * ")
			} else {
				sb.WriteString(strings.Repeat(" ", cellWidth))
			}
			if c.IsOpen(grid.East) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
		}
		sb.WriteString("\n+")
		for column := 0; column < w; column++ {
			if m.grid.At(row*w + column).IsOpen(grid.South) {
				sb.WriteString(strings.Repeat(" ", cellWidth))
			} else {
				sb.WriteString(strings.Repeat("-", cellWidth))
			}
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
