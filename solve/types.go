// SPDX-License-Identifier: MIT

package solve

import "errors"

// Sentinel errors.
var (
	// ErrNilMaze is returned for a nil maze.
	ErrNilMaze = errors.New("solve: nil maze")

	// ErrNoPassages is returned when the start cell of a multi-cell maze has
	// no open wall, i.e. nothing was carved.
	ErrNoPassages = errors.New("solve: start cell has no passages")

	// ErrNotPerfect is returned when the passages do not form a spanning tree.
	ErrNotPerfect = errors.New("solve: maze is not perfect")
)
