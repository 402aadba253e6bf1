// Package labyrinth builds and solves perfect mazes: rectangular grids in
// which exactly one simple path joins any two cells.
//
// 🚀 What is labyrinth?
//
//	A small, seedable maze toolkit that brings together:
//		• Graph primitives: generic adjacency container with BFS & DFS
//		• Grid model: cells, compass directions, symmetric wall opening
//		• Generators: depth-first backtracker, Prim, Kruskal, Wilson
//		• Solver: junction-graph compression and path reconstruction
//		• Event stream: step-by-step updates for renderers and tracing
//		• Surfaces: a CLI and a gin HTTP server
//
// ✨ Why choose labyrinth?
//
//   - Reproducible: every generator takes a seed; same seed, same maze
//   - Observable: generators report each carved wall; listener failures
//     never break generation
//   - Pure Go core: graph, grid, generate and solve need no cgo
//
// Packages:
//
//	graph/     generic Graph[V] with insertion-ordered BFS/DFS
//	grid/      Position, Direction, Cell and the lattice Grid
//	event/     Update, Listener and the failure-containing Dispatcher
//	treeset/   parent-pointer disjoint sets for Kruskal
//	maze/      the Maze façade, Generator contract and ASCII rendering
//	generate/  the four generators and the Algorithm registry
//	solve/     the junction-graph solver
//	render/    Renderer contract adapter and LogRenderer
//	config/    environment / .env settings
//	server/    HTTP routes
//
// Quick ASCII example (a 3×2 maze with its solution marked):
//
//	+---+---+---+
//	| * | *   * |
//	+   +   +   +
//	| *   * | * |
//	+---+---+---+
//
//	go get github.com/katalvlaran/labyrinth
package labyrinth
