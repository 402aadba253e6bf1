// SPDX-License-Identifier: MIT

package generate

import (
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/treeset"
)

// KruskalGenerator joins cells along shuffled lattice edges, skipping any
// edge whose endpoints are already connected.
type KruskalGenerator struct {
	base
}

// NewKruskal returns a randomized Kruskal generator.
func NewKruskal(opts ...Option) *KruskalGenerator {
	return &KruskalGenerator{base: newBase(Kruskal, opts)}
}

type edge struct{ from, to int }

// Generate carves m, emitting WallRemoved for each accepted edge.
//
// Complexity: O(E·depth) time where depth is the tallest forest chain;
// O(W·H) memory.
func (g *KruskalGenerator) Generate(m *maze.Maze) error {
	return g.run(m, g.generate)
}

func (g *KruskalGenerator) generate(m *maze.Maze) error {
	gr := m.Grid()
	n := gr.Size()

	sets := make([]*treeset.TreeSet, n)
	edges := make([]edge, 0, 2*n)
	for i := 0; i < n; i++ {
		sets[i] = treeset.New()
		nbs, err := lattice(gr, i)
		if err != nil {
			return err
		}
		for _, j := range nbs {
			if j > i {
				edges = append(edges, edge{from: i, to: j})
			}
		}
	}
	g.rng.Shuffle(len(edges), func(a, b int) { edges[a], edges[b] = edges[b], edges[a] })

	carved := 0
	for _, e := range edges {
		if carved == n-1 {
			break
		}
		if sets[e.from].IsConnected(sets[e.to]) {
			continue
		}
		if err := g.carve(m, e.from, e.to); err != nil {
			return err
		}
		sets[e.from].Merge(sets[e.to])
		carved++
	}

	return nil
}
