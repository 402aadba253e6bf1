// SPDX-License-Identifier: MIT

package graph

import "fmt"

// VisitFunc is called once per reached vertex, in discovery order.
// Returning a non-nil error aborts the traversal.
type VisitFunc[V comparable] func(v V) error

// TraversalOption customises BreadthFirstSearch and DepthFirstSearch.
type TraversalOption[V comparable] func(*traversalOptions[V])

type traversalOptions[V comparable] struct {
	filter func(from, to V) bool
}

// WithFilterNeighbor skips the edge from->to whenever fn returns false.
// A nil fn keeps the default (follow every edge).
func WithFilterNeighbor[V comparable](fn func(from, to V) bool) TraversalOption[V] {
	return func(o *traversalOptions[V]) {
		if fn != nil {
			o.filter = fn
		}
	}
}

func buildTraversalOptions[V comparable](opts []TraversalOption[V]) traversalOptions[V] {
	o := traversalOptions[V]{filter: func(_, _ V) bool { return true }}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// BreadthFirstSearch visits every vertex reachable from start exactly once,
// in non-decreasing hop distance.
//
// Errors:
//   - ErrVertexNotFound if start is not registered.
//   - the visit error, wrapped, if visit aborts the walk.
//
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph[V]) BreadthFirstSearch(start V, visit VisitFunc[V], opts ...TraversalOption[V]) error {
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, start)
	}
	o := buildTraversalOptions(opts)

	seen := map[V]bool{start: true}
	queue := []V{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if err := visit(v); err != nil {
			return fmt.Errorf("graph: visit %v: %w", v, err)
		}
		nbs, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for _, n := range nbs {
			if seen[n] || !o.filter(v, n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}

	return nil
}

// DepthFirstSearch visits every vertex reachable from start exactly once,
// following the most recently discovered branch first. Neighbours are
// explored in insertion order.
//
// The walk uses an explicit stack, so deep graphs (long maze corridors) do
// not grow the goroutine stack.
//
// Errors:
//   - ErrVertexNotFound if start is not registered.
//   - the visit error, wrapped, if visit aborts the walk.
//
// Complexity: O(V + E) time, O(V + E) memory for the stack.
func (g *Graph[V]) DepthFirstSearch(start V, visit VisitFunc[V], opts ...TraversalOption[V]) error {
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, start)
	}
	o := buildTraversalOptions(opts)

	visited := make(map[V]bool)
	stack := []V{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		if err := visit(v); err != nil {
			return fmt.Errorf("graph: visit %v: %w", v, err)
		}
		nbs, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		// push in reverse so the first neighbour is popped first
		for i := len(nbs) - 1; i >= 0; i-- {
			n := nbs[i]
			if !visited[n] && o.filter(v, n) {
				stack = append(stack, n)
			}
		}
	}

	return nil
}
