// SPDX-License-Identifier: MIT

package generate

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/event"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
)

// base holds the state every generator shares.
type base struct {
	algorithm Algorithm
	rng       *rand.Rand
	events    *event.Dispatcher
	logger    logrus.FieldLogger
}

func newBase(alg Algorithm, opts []Option) base {
	o := buildOptions(opts)

	return base{
		algorithm: alg,
		rng:       o.rng,
		events:    event.NewDispatcher(o.listener, event.WithLogger(o.logger)),
		logger:    o.logger,
	}
}

// Algorithm reports which algorithm the generator runs.
func (b *base) Algorithm() Algorithm { return b.algorithm }

// SetListener replaces the progress listener; nil removes it.
func (b *base) SetListener(l event.Listener) { b.events.SetListener(l) }

func (b *base) emit(u event.Update) { b.events.Dispatch(u) }

// carve opens the wall between arena cells i and j and reports it.
func (b *base) carve(m *maze.Maze, i, j int) error {
	g := m.Grid()
	from, to := g.At(i), g.At(j)
	if err := m.OpenWall(from, to); err != nil {
		return err
	}
	b.emit(event.NewWallRemoved(from.Position(), to.Position()))

	return nil
}

// run validates m and times fn.
func (b *base) run(m *maze.Maze, fn func(*maze.Maze) error) error {
	if m == nil {
		return ErrNilMaze
	}
	began := time.Now()
	if err := fn(m); err != nil {
		return err
	}
	b.logger.WithFields(logrus.Fields{
		"algorithm": b.algorithm.String(),
		"width":     m.Width(),
		"height":    m.Height(),
		"elapsed":   time.Since(began),
	}).Debug("generate: maze carved")

	return nil
}

// lattice returns the grid neighbours of arena index i.
func lattice(g *grid.Grid, i int) ([]int, error) {
	return g.Graph().Neighbors(i)
}

func positions(g *grid.Grid, idx []int) []grid.Position {
	out := make([]grid.Position, len(idx))
	for k, i := range idx {
		out[k] = g.At(i).Position()
	}

	return out
}
