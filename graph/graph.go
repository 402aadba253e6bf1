// SPDX-License-Identifier: MIT

package graph

import "fmt"

// Bidirectional reports whether AddEdge(a,b) also records (b,a).
func (g *Graph[V]) Bidirectional() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return !g.directed
}

// AddVertex registers v if missing (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(v)
}

func (g *Graph[V]) addVertexLocked(v V) {
	if _, ok := g.adjacency[v]; ok {
		return
	}
	g.adjacency[v] = newNeighborhood[V]()
	g.vertices = append(g.vertices, v)
}

// HasVertex reports whether v is registered.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// RemoveVertex deletes v together with every edge incident to it.
//
// Errors:
//   - ErrVertexNotFound if v was never added.
//
// Complexity: O(V + deg(v)·deg) in the worst case.
func (g *Graph[V]) RemoveVertex(v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[v]; !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	// Drop every reference to v; in directed graphs predecessors are not
	// tracked, so scan all buckets.
	for _, nb := range g.adjacency {
		nb.remove(v)
	}
	delete(g.adjacency, v)
	for i, x := range g.vertices {
		if x == v {
			g.vertices = append(g.vertices[:i], g.vertices[i+1:]...)
			break
		}
	}

	return nil
}

// Vertices returns a snapshot of all vertices in registration order.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Order returns the number of vertices.
func (g *Graph[V]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// AddEdge connects left to right (and right to left unless directed).
// Both endpoints must already be registered; adding an existing edge is a
// no-op.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is unknown.
//   - ErrLoopNotAllowed if left == right.
func (g *Graph[V]) AddEdge(left, right V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.ensureVerticesLocked(left, right); err != nil {
		return err
	}
	if left == right {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, left)
	}
	g.adjacency[left].add(right)
	if !g.directed {
		g.adjacency[right].add(left)
	}

	return nil
}

// RemoveEdge deletes the edge left->right (and its mirror unless directed).
//
// Errors:
//   - ErrVertexNotFound if either endpoint is unknown.
//   - ErrEdgeNotFound if the edge does not exist.
func (g *Graph[V]) RemoveEdge(left, right V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.ensureVerticesLocked(left, right); err != nil {
		return err
	}
	if !g.adjacency[left].remove(right) {
		return fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, left, right)
	}
	if !g.directed {
		g.adjacency[right].remove(left)
	}

	return nil
}

// HasEdge reports whether left->right exists.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is unknown.
func (g *Graph[V]) HasEdge(left, right V) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.ensureVerticesLocked(left, right); err != nil {
		return false, err
	}

	return g.adjacency[left].members.Has(right), nil
}

// Neighbors returns the vertices adjacent to v in insertion order.
// The slice is a copy and may be modified by the caller.
//
// Errors:
//   - ErrVertexNotFound if v was never added.
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nb, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]V, len(nb.order))
	copy(out, nb.order)

	return out, nil
}

// Degree returns the number of neighbours of v.
func (g *Graph[V]) Degree(v V) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nb, ok := g.adjacency[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return nb.members.Size(), nil
}

func (g *Graph[V]) ensureVerticesLocked(vs ...V) error {
	for _, v := range vs {
		if _, ok := g.adjacency[v]; !ok {
			return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
		}
	}

	return nil
}
