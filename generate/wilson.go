// SPDX-License-Identifier: MIT

package generate

import (
	"github.com/katalvlaran/labyrinth/event"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
)

// WilsonGenerator builds a uniform spanning tree from loop-erased random
// walks.
type WilsonGenerator struct {
	base
}

// NewWilson returns a Wilson generator.
func NewWilson(opts ...Option) *WilsonGenerator {
	return &WilsonGenerator{base: newBase(Wilson, opts)}
}

// Generate carves m.
//
// A random cell seeds the tree (StartCellChosen). Then, while cells remain
// outside the tree, a random walk starts from one of them and runs until it
// hits the tree; a walk that crosses itself has the loop erased at once,
// one EdgeRemoved per dropped step. The surviving walk is carved into the
// tree with one WallRemoved per edge.
//
// Complexity: expected O(W·H·cover time) steps; O(W·H) memory.
func (g *WilsonGenerator) Generate(m *maze.Maze) error {
	return g.run(m, g.generate)
}

// pool is the set of cells not yet in the tree, with O(1) random pick and
// removal.
type pool struct {
	cells []int
	slot  []int // slot[i] is i's index in cells, -1 once removed
}

func newPool(n int) *pool {
	p := &pool{cells: make([]int, n), slot: make([]int, n)}
	for i := range p.cells {
		p.cells[i] = i
		p.slot[i] = i
	}

	return p
}

func (p *pool) remove(i int) {
	k := p.slot[i]
	if k < 0 {
		return
	}
	last := p.cells[len(p.cells)-1]
	p.cells[k] = last
	p.slot[last] = k
	p.cells = p.cells[:len(p.cells)-1]
	p.slot[i] = -1
}

func (p *pool) has(i int) bool { return p.slot[i] >= 0 }

func (g *WilsonGenerator) generate(m *maze.Maze) error {
	gr := m.Grid()
	outside := newPool(gr.Size())

	first := g.rng.Intn(gr.Size())
	outside.remove(first)
	g.emit(event.NewStartCellChosen(gr.At(first).Position()))

	for len(outside.cells) > 0 {
		walk, err := g.walk(gr, outside, outside.cells[g.rng.Intn(len(outside.cells))])
		if err != nil {
			return err
		}
		for k := 0; k+1 < len(walk); k++ {
			if err = g.carve(m, walk[k], walk[k+1]); err != nil {
				return err
			}
			outside.remove(walk[k])
		}
	}

	return nil
}

// walk performs a loop-erased random walk from start until it reaches a
// tree cell. The returned path ends with that tree cell.
func (g *WilsonGenerator) walk(gr *grid.Grid, outside *pool, start int) ([]int, error) {
	path := []int{start}
	onPath := map[int]int{start: 0}

	cur := start
	for outside.has(cur) {
		nbs, err := lattice(gr, cur)
		if err != nil {
			return nil, err
		}
		next := nbs[g.rng.Intn(len(nbs))]

		if k, seen := onPath[next]; seen {
			for j := len(path) - 1; j > k; j-- {
				g.emit(event.NewEdgeRemoved(gr.At(path[j-1]).Position(), gr.At(path[j]).Position()))
				delete(onPath, path[j])
			}
			path = path[:k+1]
		} else {
			onPath[next] = len(path)
			path = append(path, next)
		}
		cur = next
	}

	return path, nil
}
