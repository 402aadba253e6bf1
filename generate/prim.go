// SPDX-License-Identifier: MIT

package generate

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/event"
	"github.com/katalvlaran/labyrinth/maze"
)

// PrimGenerator grows the tree from a random seed cell by repeatedly
// attaching a random frontier cell to one of its included neighbours.
type PrimGenerator struct {
	base
}

// NewPrim returns a growing-tree (Prim) generator.
func NewPrim(opts ...Option) *PrimGenerator {
	return &PrimGenerator{base: newBase(Prim, opts)}
}

// Generate carves m.
//
// Every time a cell joins the tree a CellMarked update carries the cell and
// the neighbours it newly added to the frontier. Each attachment is
// preceded by WallRemoved(included neighbour, frontier cell).
//
// Complexity: O(W·H) time and memory.
func (g *PrimGenerator) Generate(m *maze.Maze) error {
	return g.run(m, g.generate)
}

// frontier is a random-access set: the slice gives O(1) uniform picks with
// a reproducible order, the mapset gives O(1) membership.
type frontier struct {
	order   []int
	members mapset.Set[int]
}

func (f *frontier) put(i int) bool {
	if f.members.Has(i) {
		return false
	}
	f.members.Put(i)
	f.order = append(f.order, i)

	return true
}

// take removes and returns the element at position k.
func (f *frontier) take(k int) int {
	last := len(f.order) - 1
	i := f.order[k]
	f.order[k] = f.order[last]
	f.order = f.order[:last]
	f.members.Remove(i)

	return i
}

func (g *PrimGenerator) generate(m *maze.Maze) error {
	gr := m.Grid()
	included := mapset.New[int]()
	front := &frontier{members: mapset.New[int]()}

	mark := func(i int) error {
		included.Put(i)
		nbs, err := lattice(gr, i)
		if err != nil {
			return err
		}
		added := make([]int, 0, len(nbs))
		for _, n := range nbs {
			if !included.Has(n) && front.put(n) {
				added = append(added, n)
			}
		}
		g.emit(event.NewCellMarked(gr.At(i).Position(), positions(gr, added)))

		return nil
	}

	if err := mark(g.rng.Intn(gr.Size())); err != nil {
		return err
	}
	owners := make([]int, 0, 4)
	for len(front.order) > 0 {
		f := front.take(g.rng.Intn(len(front.order)))
		nbs, err := lattice(gr, f)
		if err != nil {
			return err
		}
		owners = owners[:0]
		for _, n := range nbs {
			if included.Has(n) {
				owners = append(owners, n)
			}
		}
		if len(owners) == 0 {
			return fmt.Errorf("generate: frontier cell %v has no tree neighbour", gr.At(f))
		}
		if err = g.carve(m, owners[g.rng.Intn(len(owners))], f); err != nil {
			return err
		}
		if err = mark(f); err != nil {
			return err
		}
	}

	return nil
}
