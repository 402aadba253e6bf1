// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"sync"

	"github.com/zyedidia/generic/mapset"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Option configures a Graph before creation.
type Option func(c *config)

type config struct {
	directed bool
}

// WithDirected sets whether new edges are one-way (true) or bidirectional
// (false, the default).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// neighborhood is the adjacency bucket of one vertex.
// members answers membership in O(1); order keeps insertion order so that
// enumeration is deterministic.
type neighborhood[V comparable] struct {
	members mapset.Set[V]
	order   []V
}

func newNeighborhood[V comparable]() *neighborhood[V] {
	return &neighborhood[V]{members: mapset.New[V]()}
}

func (n *neighborhood[V]) add(v V) {
	if n.members.Has(v) {
		return
	}
	n.members.Put(v)
	n.order = append(n.order, v)
}

func (n *neighborhood[V]) remove(v V) bool {
	if !n.members.Has(v) {
		return false
	}
	n.members.Remove(v)
	for i, x := range n.order {
		if x == v {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}

	return true
}

// Graph is an in-memory adjacency container over comparable vertices.
//
// mu guards vertices and adjacency. Hooks passed to traversals run without
// the lock held, so a visitor may query the graph it is walking.
type Graph[V comparable] struct {
	mu sync.RWMutex

	directed bool

	vertices  []V                    // registration order
	adjacency map[V]*neighborhood[V] // vertex -> outgoing neighbours
}

// New creates an empty Graph. By default edges are bidirectional.
// Complexity: O(len(opts)).
func New[V comparable](opts ...Option) *Graph[V] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &Graph[V]{
		directed:  c.directed,
		adjacency: make(map[V]*neighborhood[V]),
	}
}
