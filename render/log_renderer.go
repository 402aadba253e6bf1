// SPDX-License-Identifier: MIT

package render

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/grid"
)

// LogRenderer traces generation through a logrus logger. Walls and frontier
// changes are logged at Info, path bookkeeping at Debug.
type LogRenderer struct {
	logger logrus.FieldLogger
	delay  time.Duration
	sleep  func(time.Duration)

	path     []grid.Position
	frontier int
	walls    int
}

// LogOption configures a LogRenderer.
type LogOption func(*LogRenderer)

// WithDelay pauses for d after each visible step.
func WithDelay(d time.Duration) LogOption {
	return func(r *LogRenderer) { r.delay = d }
}

// WithSleep replaces time.Sleep. Panics on nil.
func WithSleep(fn func(time.Duration)) LogOption {
	if fn == nil {
		panic("render: WithSleep(nil)")
	}
	return func(r *LogRenderer) { r.sleep = fn }
}

// NewLogRenderer returns a LogRenderer writing to logger, or to the standard
// logger when logger is nil.
func NewLogRenderer(logger logrus.FieldLogger, opts ...LogOption) *LogRenderer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	r := &LogRenderer{logger: logger, sleep: time.Sleep}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// SetStartCell logs the seed cell.
func (r *LogRenderer) SetStartCell(cell grid.Position) {
	r.logger.WithField("cell", cell.String()).Info("start cell chosen")
}

// ClearPath drops the tracked path.
func (r *LogRenderer) ClearPath() {
	if len(r.path) > 0 {
		r.logger.WithField("length", len(r.path)).Debug("path cleared")
	}
	r.path = r.path[:0]
}

// AddCellToGeneratedPath appends cell to the tracked path.
func (r *LogRenderer) AddCellToGeneratedPath(cell grid.Position) {
	r.path = append(r.path, cell)
	r.logger.WithFields(logrus.Fields{
		"cell":   cell.String(),
		"length": len(r.path),
	}).Debug("path extended")
}

// EndOfCurrentPath returns the last tracked path cell.
func (r *LogRenderer) EndOfCurrentPath() (grid.Position, bool) {
	if len(r.path) == 0 {
		return grid.Position{}, false
	}

	return r.path[len(r.path)-1], true
}

// AddCellsToFrontier logs newly discovered frontier cells.
func (r *LogRenderer) AddCellsToFrontier(cells []grid.Position) {
	r.frontier += len(cells)
	if len(cells) == 0 {
		return
	}
	r.logger.WithFields(logrus.Fields{
		"cells": cells,
		"total": r.frontier,
	}).Info("frontier grown")
}

// RemoveWall logs a carved passage.
func (r *LogRenderer) RemoveWall(start, end grid.Position) {
	r.walls++
	r.logger.WithFields(logrus.Fields{
		"from":  start.String(),
		"to":    end.String(),
		"walls": r.walls,
	}).Info("wall removed")
}

// RemoveEdge logs a walk edge erased by loop removal.
func (r *LogRenderer) RemoveEdge(start, end grid.Position) {
	r.logger.WithFields(logrus.Fields{
		"from": start.String(),
		"to":   end.String(),
	}).Debug("walk edge erased")
}

// Delay sleeps for the configured delay, if any.
func (r *LogRenderer) Delay() {
	if r.delay > 0 {
		r.sleep(r.delay)
	}
}

// Refresh is a no-op; log lines are written immediately.
func (r *LogRenderer) Refresh() {}

// WallsRemoved returns how many walls were reported so far.
func (r *LogRenderer) WallsRemoved() int { return r.walls }
