// SPDX-License-Identifier: MIT

package server

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/grid"
)

// MazeRequest holds the query parameters of GET /v1/mazes. Zero values fall
// back to the configured defaults; a nil Seed picks a fresh one.
type MazeRequest struct {
	Width     int    `form:"width" binding:"omitempty,min=1"`
	Height    int    `form:"height" binding:"omitempty,min=1"`
	Algorithm string `form:"algorithm"`
	Seed      *int64 `form:"seed"`
	Solve     bool   `form:"solve"`
}

// MazeResponse describes a generated maze.
type MazeResponse struct {
	ID        uuid.UUID       `json:"id"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Algorithm string          `json:"algorithm"`
	Seed      int64           `json:"seed"`
	Maze      string          `json:"maze"`
	Solution  []grid.Position `json:"solution,omitempty"`
}

// AlgorithmsResponse lists generator names.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
