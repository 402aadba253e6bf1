// SPDX-License-Identifier: MIT

// Package generate carves perfect mazes.
//
// Four algorithms are provided, each producing a spanning tree of the grid
// lattice with its own statistical texture:
//
//	DepthFirstSearch  randomized depth-first search (recursive backtracker).
//	                  Long winding corridors, few branches.
//	Prim              growing tree fed from a random frontier. Short dead
//	                  ends, many branches.
//	Kruskal           shuffled lattice edges joined through a union-find
//	                  forest.
//	Wilson            loop-erased random walks. Every spanning tree is
//	                  equally likely.
//
// New builds the generator for an Algorithm; NewDepthFirst, NewPrim,
// NewKruskal and NewWilson return the concrete types.
//
// All generators implement maze.Generator and report progress as
// event.Update values to an optional listener (see WithListener). Listener
// failures are logged and never abort generation.
//
// Determinism:
//
// Randomness comes from a *rand.Rand supplied by WithSeed or WithRand; the
// same seed yields the same maze and the same event stream. Without either
// option a time-seeded source is used.
//
// Concurrency:
//
// A generator owns its *rand.Rand and is not safe for concurrent use. Use
// one generator per goroutine.
package generate
