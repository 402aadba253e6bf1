// SPDX-License-Identifier: MIT

package solve_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solve"
)

// ExampleSolve solves a hand-carved 3x2 maze and prints the marked path.
func ExampleSolve() {
	m, err := maze.New(3, 2, maze.GeneratorFunc(func(m *maze.Maze) error {
		link := func(r1, c1, r2, c2 int) error {
			a, _ := m.Cell(r1, c1)
			b, _ := m.Cell(r2, c2)
			return m.OpenWall(a, b)
		}
		for _, p := range [][4]int{{0, 0, 1, 0}, {1, 0, 1, 1}, {1, 1, 0, 1}, {0, 1, 0, 2}, {0, 2, 1, 2}} {
			if err := link(p[0], p[1], p[2], p[3]); err != nil {
				return err
			}
		}
		return nil
	}))
	if err != nil {
		fmt.Println(err)
		return
	}

	path, err := solve.Solve(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m.Render(path))
	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = c.Position().String()
	}
	fmt.Println(strings.Join(steps, " "))
	fmt.Println(path[len(path)-1].IsOpen(grid.North))
	// Output:
	// +---+---+---+
	// | * | *   * |
	// +   +   +   +
	// | *   * | * |
	// +---+---+---+
	// (0, 0) (1, 0) (1, 1) (0, 1) (0, 2) (1, 2)
	// true
}
