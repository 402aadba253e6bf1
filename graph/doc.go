// SPDX-License-Identifier: MIT

// Package graph provides a small generic adjacency container, Graph[V], with
// breadth-first and depth-first traversal primitives.
//
// What
//
//   - Vertices are any comparable value (cell indices, *grid.Cell, IDs).
//   - Edges are unweighted; by default every edge is bidirectional, so adding
//     (a,b) also adds (b,a). WithDirected(true) turns that off.
//   - Every vertex referenced by an adjacency set is itself registered.
//
// Determinism
//
//	Vertices() and Neighbors() enumerate in insertion order, never map order.
//	Traversals are therefore reproducible for a fixed construction sequence,
//	which is what seeded maze generation relies on.
//
// Traversal
//
//   - BreadthFirstSearch(start, visit, opts...)
//   - DepthFirstSearch(start, visit, opts...)
//
// Both visit every vertex reachable from start exactly once, calling visit in
// discovery order. A visit error aborts the walk and is returned wrapped.
// WithFilterNeighbor restricts which edges are followed.
//
// Errors
//
//   - ErrVertexNotFound  if an operation references an unregistered vertex.
//   - ErrEdgeNotFound    if RemoveEdge targets a missing edge.
//   - ErrLoopNotAllowed  if AddEdge(v, v) is attempted.
//
// Complexity (V = vertices, E = edges)
//
//   - AddVertex, AddEdge, HasEdge: O(1) amortized.
//   - RemoveEdge: O(deg); RemoveVertex: O(deg²) worst case.
//   - Traversals: O(V + E) time, O(V) memory.
package graph
