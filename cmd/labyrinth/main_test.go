// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
)

func TestParseDimensions(t *testing.T) {
	w, h, err := parseDimensions("10X7")
	require.NoError(t, err)
	assert.Equal(t, 10, w)
	assert.Equal(t, 7, h)

	for _, bad := range []string{"10", "1x2x3", "ax3", "3xb"} {
		_, _, err = parseDimensions(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseArgs(t *testing.T) {
	cfg := config.Config{Width: 25, Height: 25, Algorithm: generate.Prim, Seed: 4}

	opts, err := parseArgs(nil, cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, options{width: 25, height: 25, algorithm: "prim", seed: 4}, opts)

	opts, err = parseArgs([]string{"-s", "8x3", "-a", "wilson", "-seed", "9"}, cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, options{width: 8, height: 3, algorithm: "wilson", solve: true, seed: 9}, opts)

	_, err = parseArgs([]string{"8x3", "extra"}, cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestLookupEnvFile(t *testing.T) {
	assert.Equal(t, "a.env", lookupEnvFile([]string{"5x5", "-env", "a.env"}))
	assert.Equal(t, "b.env", lookupEnvFile([]string{"--env=b.env"}))
	assert.Empty(t, lookupEnvFile([]string{"-s"}))
}

func TestRunPrintsSolvedMaze(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"6x4", "-a", "kruskal", "-seed", "3", "-s"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	assert.Len(t, lines, 2*4+1)
	assert.Equal(t, "+---+---+---+---+---+---+", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "| * "), "start cell is on the path")
}

func TestRunIsReproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.Equal(t, 0, run([]string{"9x9", "-a", "wilson", "-seed", "12"}, &a, &bytes.Buffer{}))
	require.Equal(t, 0, run([]string{"9x9", "-a", "wilson", "-seed", "12"}, &b, &bytes.Buffer{}))
	assert.Equal(t, a.String(), b.String())
}

func TestRunTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"3x3", "-a", "prim", "-seed", "1", "-trace"}, &stdout, &stderr))
	assert.Equal(t, 8, strings.Count(stderr.String(), "wall removed"))
}

func TestRunEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.env")
	require.NoError(t, os.WriteFile(path, []byte("LABYRINTH_MAX_DIMENSION=5\n"), 0o600))
	t.Setenv("LABYRINTH_WIDTH", "4")
	t.Setenv("LABYRINTH_HEIGHT", "4")
	t.Setenv("LABYRINTH_MAX_DIMENSION", "")
	require.NoError(t, os.Unsetenv("LABYRINTH_MAX_DIMENSION"))
	t.Cleanup(func() { _ = os.Unsetenv("LABYRINTH_MAX_DIMENSION") })

	var stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"6x6", "-env", path}, &bytes.Buffer{}, &stderr))
	assert.Contains(t, stderr.String(), "outside 1..5")
}

func TestRunRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"0x5"},
		{"5x5", "-a", "eller"},
		{"five"},
		{"-unknown"},
	} {
		assert.Equal(t, 2, run(args, &bytes.Buffer{}, &bytes.Buffer{}), "%v", args)
	}
}
