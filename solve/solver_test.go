// SPDX-License-Identifier: MIT

package solve_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solve"
)

func positions(path []*grid.Cell) []grid.Position {
	out := make([]grid.Position, len(path))
	for i, c := range path {
		out[i] = c.Position()
	}

	return out
}

// carve opens the listed wall pairs, each given as {row1, col1, row2, col2}.
func carve(t *testing.T, width, height int, pairs ...[4]int) *maze.Maze {
	t.Helper()
	m, err := maze.New(width, height, maze.GeneratorFunc(func(m *maze.Maze) error {
		for _, p := range pairs {
			a, err := m.Cell(p[0], p[1])
			if err != nil {
				return err
			}
			b, err := m.Cell(p[2], p[3])
			if err != nil {
				return err
			}
			if err = m.OpenWall(a, b); err != nil {
				return err
			}
		}
		return nil
	}))
	require.NoError(t, err)

	return m
}

// requireValidPath checks the path runs start to end through open walls
// without revisiting a cell.
func requireValidPath(t *testing.T, m *maze.Maze, path []*grid.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Same(t, m.StartCell(), path[0])
	require.Same(t, m.EndCell(), path[len(path)-1])

	seen := make(map[*grid.Cell]bool, len(path))
	for i, c := range path {
		require.False(t, seen[c], "%v repeated", c)
		seen[c] = true
		if i > 0 {
			require.True(t, m.Grid().Connected(path[i-1], c), "%v -> %v is walled", path[i-1], c)
		}
	}
}

func TestSolveGenerated(t *testing.T) {
	sizes := [][2]int{{2, 1}, {1, 2}, {1, 9}, {9, 1}, {2, 2}, {3, 3}, {6, 4}, {15, 15}, {31, 7}}
	for _, alg := range generate.Algorithms() {
		for _, sz := range sizes {
			for seed := int64(1); seed <= 5; seed++ {
				t.Run(fmt.Sprintf("%v/%dx%d/%d", alg, sz[0], sz[1], seed), func(t *testing.T) {
					g, err := generate.New(alg, generate.WithSeed(seed))
					require.NoError(t, err)
					m, err := maze.New(sz[0], sz[1], g)
					require.NoError(t, err)

					path, err := solve.New().Solve(m)
					require.NoError(t, err)
					requireValidPath(t, m, path)
				})
			}
		}
	}
}

func TestSolveSingleCell(t *testing.T) {
	m, err := maze.New(1, 1, nil)
	require.NoError(t, err)

	path, err := solve.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 0, Column: 0}}, positions(path))
}

func TestSolveTwoCells(t *testing.T) {
	m := carve(t, 2, 1, [4]int{0, 0, 0, 1})

	path, err := solve.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 0, Column: 0}, {Row: 0, Column: 1}}, positions(path))
}

// A long straight corridor collapses into a single junction edge that must be
// expanded back into every cell.
func TestSolveStraightCorridor(t *testing.T) {
	var pairs [][4]int
	for c := 0; c < 5; c++ {
		pairs = append(pairs, [4]int{0, c, 0, c + 1})
	}
	m := carve(t, 6, 1, pairs...)

	path, err := solve.Solve(m)
	require.NoError(t, err)
	require.Len(t, path, 6)
	for i, c := range path {
		assert.Equal(t, grid.Position{Row: 0, Column: i}, c.Position())
	}
}

// 3x3 serpentine with a dead-end spur:
//
//	+---+---+---+
//	|           |
//	+---+---+   +
//	|           |
//	+   +---+---+
//	|           |
//	+---+---+---+
func TestSolveSerpentine(t *testing.T) {
	m := carve(t, 3, 3,
		[4]int{0, 0, 0, 1}, [4]int{0, 1, 0, 2}, [4]int{0, 2, 1, 2},
		[4]int{1, 2, 1, 1}, [4]int{1, 1, 1, 0}, [4]int{1, 0, 2, 0},
		[4]int{2, 0, 2, 1}, [4]int{2, 1, 2, 2},
	)
	require.True(t, m.IsPerfect())

	path, err := solve.Solve(m)
	require.NoError(t, err)
	want := []grid.Position{
		{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2},
		{Row: 1, Column: 2}, {Row: 1, Column: 1}, {Row: 1, Column: 0},
		{Row: 2, Column: 0}, {Row: 2, Column: 1}, {Row: 2, Column: 2},
	}
	assert.Equal(t, want, positions(path))
}

// The solution skips branches that do not lead to the exit.
func TestSolveIgnoresBranches(t *testing.T) {
	// Comb: top row fully open, every column hangs down from it.
	var pairs [][4]int
	for c := 0; c < 4; c++ {
		if c < 3 {
			pairs = append(pairs, [4]int{0, c, 0, c + 1})
		}
		pairs = append(pairs, [4]int{0, c, 1, c}, [4]int{1, c, 2, c})
	}
	m := carve(t, 4, 3, pairs...)
	require.True(t, m.IsPerfect())

	path, err := solve.Solve(m)
	require.NoError(t, err)
	requireValidPath(t, m, path)
	assert.Len(t, path, 6)
}

func TestSolveErrors(t *testing.T) {
	_, err := solve.Solve(nil)
	assert.ErrorIs(t, err, solve.ErrNilMaze)

	blank, err := maze.New(3, 3, nil)
	require.NoError(t, err)
	_, err = solve.Solve(blank)
	assert.ErrorIs(t, err, solve.ErrNoPassages)

	looped := carve(t, 2, 2,
		[4]int{0, 0, 0, 1}, [4]int{0, 1, 1, 1}, [4]int{1, 1, 1, 0}, [4]int{1, 0, 0, 0},
	)
	_, err = solve.Solve(looped)
	assert.ErrorIs(t, err, solve.ErrNotPerfect)

	partial := carve(t, 3, 1, [4]int{0, 0, 0, 1})
	_, err = solve.Solve(partial)
	assert.ErrorIs(t, err, solve.ErrNotPerfect)
}

func TestJunctionGraphSkipsCorridors(t *testing.T) {
	// An L: right along the top row, then down the last column.
	m := carve(t, 4, 4,
		[4]int{0, 0, 0, 1}, [4]int{0, 1, 0, 2}, [4]int{0, 2, 0, 3},
		[4]int{0, 3, 1, 3}, [4]int{1, 3, 2, 3}, [4]int{2, 3, 3, 3},
	)
	jg, err := solve.JunctionGraph(m)
	require.NoError(t, err)

	// start, the corner (0,3) and the end (3,3)
	assert.ElementsMatch(t, []int{0, 3, 15}, jg.Vertices())
	ok, err := jg.HasEdge(0, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = jg.HasEdge(3, 15)
	require.NoError(t, err)
	assert.True(t, ok)

	// each junction edge is discovered from both ends but stored once
	nbs, err := jg.Neighbors(3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 15}, nbs)
	deg, err := jg.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
}
