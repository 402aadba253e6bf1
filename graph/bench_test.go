// SPDX-License-Identifier: MIT

package graph_test

import "testing"

// BenchmarkDepthFirstSearch_Lattice measures DFS over a 100×100 lattice.
func BenchmarkDepthFirstSearch_Lattice(b *testing.B) {
	g := buildLattice(100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.DepthFirstSearch(0, func(int) error { return nil })
	}
}

// BenchmarkBreadthFirstSearch_Lattice measures BFS over a 100×100 lattice.
func BenchmarkBreadthFirstSearch_Lattice(b *testing.B) {
	g := buildLattice(100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.BreadthFirstSearch(0, func(int) error { return nil })
	}
}
