// SPDX-License-Identifier: MIT

package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generate"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]generate.Algorithm{
		"dfs":      generate.DepthFirstSearch,
		"kruskal":  generate.Kruskal,
		"Prim":     generate.Prim,
		" WILSON ": generate.Wilson,
	}
	for in, want := range cases {
		got, err := generate.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := generate.ParseAlgorithm("eller")
	assert.ErrorIs(t, err, generate.ErrUnknownAlgorithm)
}

func TestAlgorithmNames(t *testing.T) {
	var names []string
	for _, a := range generate.Algorithms() {
		names = append(names, a.String())
	}
	assert.Equal(t, []string{"dfs", "kruskal", "prim", "wilson"}, names)
	assert.Equal(t, "Algorithm(9)", generate.Algorithm(9).String())
}

func TestAlgorithmText(t *testing.T) {
	b, err := generate.Wilson.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "wilson", string(b))

	_, err = generate.Algorithm(9).MarshalText()
	assert.ErrorIs(t, err, generate.ErrUnknownAlgorithm)

	var a generate.Algorithm
	require.NoError(t, a.UnmarshalText([]byte("prim")))
	assert.Equal(t, generate.Prim, a)
	assert.Error(t, a.UnmarshalText([]byte("nope")))
}

func TestNew(t *testing.T) {
	_, err := generate.New(generate.Algorithm(9))
	assert.ErrorIs(t, err, generate.ErrUnknownAlgorithm)

	g, err := generate.NewByName("kruskal", generate.WithSeed(1))
	require.NoError(t, err)
	assert.IsType(t, &generate.KruskalGenerator{}, g)

	_, err = generate.NewByName("sidewinder")
	assert.ErrorIs(t, err, generate.ErrUnknownAlgorithm)
}
