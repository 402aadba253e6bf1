// SPDX-License-Identifier: MIT

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/labyrinth/graph"
)

type GraphSuite struct {
	suite.Suite
	g *graph.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	s.g = graph.New[string]()
}

func (s *GraphSuite) TestAddVertexIsIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"))

	s.g.AddVertex("A")
	s.g.AddVertex("A")
	require.True(s.g.HasVertex("A"))
	require.Equal(1, s.g.Order())
	require.Equal([]string{"A"}, s.g.Vertices())
}

func (s *GraphSuite) TestAddEdgeIsBidirectionalByDefault() {
	require := require.New(s.T())
	s.g.AddVertex("A")
	s.g.AddVertex("B")
	require.True(s.g.Bidirectional())

	require.NoError(s.g.AddEdge("A", "B"))
	ok, err := s.g.HasEdge("A", "B")
	require.NoError(err)
	require.True(ok)
	ok, err = s.g.HasEdge("B", "A")
	require.NoError(err)
	require.True(ok, "mirror edge expected")

	// duplicates do not grow the neighbourhood
	require.NoError(s.g.AddEdge("B", "A"))
	nbs, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Equal([]string{"B"}, nbs)
}

func (s *GraphSuite) TestDirectedGraphKeepsOneWay() {
	require := require.New(s.T())
	g := graph.New[string](graph.WithDirected(true))
	g.AddVertex("X")
	g.AddVertex("Y")
	require.False(g.Bidirectional())
	require.NoError(g.AddEdge("X", "Y"))

	ok, _ := g.HasEdge("X", "Y")
	require.True(ok)
	ok, _ = g.HasEdge("Y", "X")
	require.False(ok)

	require.NoError(g.RemoveVertex("Y"))
	nbs, err := g.Neighbors("X")
	require.NoError(err)
	require.Empty(nbs)
}

func (s *GraphSuite) TestEdgeOperationsRequireRegisteredVertices() {
	require := require.New(s.T())
	s.g.AddVertex("A")

	require.ErrorIs(s.g.AddEdge("A", "missing"), graph.ErrVertexNotFound)
	require.ErrorIs(s.g.RemoveEdge("missing", "A"), graph.ErrVertexNotFound)
	_, err := s.g.HasEdge("A", "missing")
	require.ErrorIs(err, graph.ErrVertexNotFound)
	_, err = s.g.Neighbors("missing")
	require.ErrorIs(err, graph.ErrVertexNotFound)
	_, err = s.g.Degree("missing")
	require.ErrorIs(err, graph.ErrVertexNotFound)
	require.ErrorIs(s.g.RemoveVertex("missing"), graph.ErrVertexNotFound)
}

func (s *GraphSuite) TestSelfLoopRejected() {
	s.g.AddVertex("A")
	s.Require().ErrorIs(s.g.AddEdge("A", "A"), graph.ErrLoopNotAllowed)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	for _, v := range []string{"A", "B", "C"} {
		s.g.AddVertex(v)
	}
	require.NoError(s.g.AddEdge("A", "B"))
	require.NoError(s.g.AddEdge("A", "C"))

	require.NoError(s.g.RemoveEdge("B", "A"))
	ok, _ := s.g.HasEdge("A", "B")
	require.False(ok, "removal must drop both directions")
	require.ErrorIs(s.g.RemoveEdge("A", "B"), graph.ErrEdgeNotFound)

	nbs, _ := s.g.Neighbors("A")
	require.Equal([]string{"C"}, nbs)
}

func (s *GraphSuite) TestRemoveVertexDropsIncidentEdges() {
	require := require.New(s.T())
	for _, v := range []string{"A", "B", "C"} {
		s.g.AddVertex(v)
	}
	require.NoError(s.g.AddEdge("A", "B"))
	require.NoError(s.g.AddEdge("B", "C"))

	require.NoError(s.g.RemoveVertex("B"))
	require.False(s.g.HasVertex("B"))
	require.Equal([]string{"A", "C"}, s.g.Vertices())
	for _, v := range []string{"A", "C"} {
		d, err := s.g.Degree(v)
		require.NoError(err)
		require.Zero(d, "vertex %s should have no neighbours left", v)
	}
}

func (s *GraphSuite) TestNeighborsReturnsCopyInInsertionOrder() {
	require := require.New(s.T())
	for _, v := range []string{"hub", "c", "a", "b"} {
		s.g.AddVertex(v)
	}
	require.NoError(s.g.AddEdge("hub", "c"))
	require.NoError(s.g.AddEdge("hub", "a"))
	require.NoError(s.g.AddEdge("hub", "b"))

	nbs, err := s.g.Neighbors("hub")
	require.NoError(err)
	require.Equal([]string{"c", "a", "b"}, nbs)

	nbs[0] = "mutated"
	again, _ := s.g.Neighbors("hub")
	require.Equal("c", again[0])
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
