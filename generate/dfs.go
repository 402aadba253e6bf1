// SPDX-License-Identifier: MIT

package generate

import "github.com/katalvlaran/labyrinth/maze"

// DepthFirstGenerator is the randomized recursive backtracker, run on an
// explicit stack from the start cell (0, 0).
type DepthFirstGenerator struct {
	base
}

// NewDepthFirst returns a depth-first generator.
func NewDepthFirst(opts ...Option) *DepthFirstGenerator {
	return &DepthFirstGenerator{base: newBase(DepthFirstSearch, opts)}
}

// Generate carves m. From the cell on top of the stack it opens the wall to
// a uniformly chosen unvisited neighbour and descends, or backtracks when
// none is left. Emits WallRemoved(parent, child) per carved edge.
//
// Complexity: O(W·H) time and memory.
func (g *DepthFirstGenerator) Generate(m *maze.Maze) error {
	return g.run(m, g.generate)
}

func (g *DepthFirstGenerator) generate(m *maze.Maze) error {
	gr := m.Grid()
	visited := make([]bool, gr.Size())
	candidates := make([]int, 0, 4)

	stack := []int{0}
	visited[0] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		nbs, err := lattice(gr, cur)
		if err != nil {
			return err
		}
		candidates = candidates[:0]
		for _, n := range nbs {
			if !visited[n] {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[g.rng.Intn(len(candidates))]
		if err = g.carve(m, cur, next); err != nil {
			return err
		}
		visited[next] = true
		stack = append(stack, next)
	}

	return nil
}
