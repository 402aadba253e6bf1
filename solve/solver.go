// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/graph"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
)

// Solver solves perfect mazes. The zero value is ready to use and a Solver
// holds no state between calls.
type Solver struct{}

// New returns a Solver.
func New() *Solver { return &Solver{} }

// Solve returns the cells from StartCell to EndCell in walking order.
//
// Errors:
//   - ErrNilMaze if m is nil.
//   - ErrNoPassages if m has more than one cell and its start is walled in.
//   - ErrNotPerfect if the passages contain a cycle or leave cells unreachable.
//
// Complexity: O(W·H) time and memory.
func (s *Solver) Solve(m *maze.Maze) ([]*grid.Cell, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	start, end := m.StartCell(), m.EndCell()
	if start == end {
		return []*grid.Cell{start}, nil
	}
	if start.OpenWallCount() == 0 {
		return nil, ErrNoPassages
	}
	if !m.IsPerfect() {
		return nil, fmt.Errorf("%w: %d passages for %d cells", ErrNotPerfect, m.OpenWallCount(), m.Size())
	}

	junctions, err := JunctionGraph(m)
	if err != nil {
		return nil, err
	}
	prev, err := orient(m, junctions)
	if err != nil {
		return nil, err
	}

	return expand(m, prev)
}

// Solve runs a fresh Solver on m.
func Solve(m *maze.Maze) ([]*grid.Cell, error) { return New().Solve(m) }

// JunctionGraph compresses the passages of m into a graph over arena
// indices. Its vertices are the start cell and every non-corridor cell
// reachable from it; each edge joins two such cells across a run of zero or
// more corridor cells.
func JunctionGraph(m *maze.Maze) (*graph.Graph[int], error) {
	g := m.Grid()
	junctions := graph.New[int]()
	junctions.AddVertex(0)

	err := m.Walk(0, 0, func(c *grid.Cell) error {
		from := g.IndexOf(c)
		if from != 0 && c.IsCorridor() {
			return nil
		}
		for _, d := range c.OpenWalls() {
			n, err := g.Neighbor(c, d)
			if err != nil {
				return err
			}
			for n.IsCorridor() {
				if n, err = g.Neighbor(n, d); err != nil {
					return err
				}
			}
			to := g.IndexOf(n)
			junctions.AddVertex(from)
			junctions.AddVertex(to)
			if err = junctions.AddEdge(from, to); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return junctions, nil
}

// orient walks the junction graph from the start and records, for every
// junction, the neighbour whose predecessor chain already reaches the start.
func orient(m *maze.Maze, junctions *graph.Graph[int]) (map[int]int, error) {
	prev := make(map[int]int, junctions.Order())
	rooted := func(v int) bool {
		for steps := 0; steps <= len(prev); steps++ {
			if v == 0 {
				return true
			}
			p, ok := prev[v]
			if !ok {
				return false
			}
			v = p
		}
		return false
	}

	err := junctions.DepthFirstSearch(0, func(v int) error {
		nbs, err := junctions.Neighbors(v)
		if err != nil {
			return err
		}
		for _, n := range nbs {
			if n != v && rooted(n) {
				prev[v] = n
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	end := m.Size() - 1
	if _, ok := prev[end]; !ok {
		return nil, fmt.Errorf("%w: end cell not reached", ErrNotPerfect)
	}

	return prev, nil
}

// expand follows prev from the end back to the start, filling in corridor
// cells between non-adjacent junctions, and returns the path start first.
func expand(m *maze.Maze, prev map[int]int) ([]*grid.Cell, error) {
	g := m.Grid()
	cur := g.Size() - 1
	path := []*grid.Cell{g.At(cur)}

	for cur != 0 {
		next, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken chain at %v", ErrNotPerfect, g.At(cur))
		}
		from, to := g.At(cur), g.At(next)
		if _, err := grid.Between(from.Position(), to.Position()); err != nil {
			d := grid.Toward(from.Position(), to.Position())
			step, err := g.Neighbor(from, d)
			for err == nil && step != to {
				path = append(path, step)
				step, err = g.Neighbor(step, d)
			}
			if err != nil {
				return nil, err
			}
		}
		path = append(path, to)
		cur = next
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
