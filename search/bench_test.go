package search_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsearch/search"
)

// benchGraph is a random weighted digraph of 2000 vertices and ~10000 arcs.
func benchGraph(unit bool) *intGraph {
	return randomGraph(42, 2000, 10000, unit)
}

// BenchmarkUniformCost runs uniform-cost search over benchGraph.
// Complexity: O((V+E) log V)
func BenchmarkUniformCost(b *testing.B) {
	g := benchGraph(false)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.UniformCost[int, int](g); err != nil {
			b.Fatalf("UniformCost: %v", err)
		}
	}
}

// BenchmarkAStar runs A* with a half-distance heuristic over benchGraph.
// Complexity: O((V+E) log V)
func BenchmarkAStar(b *testing.B) {
	g := benchGraph(false)
	g.hTab = make([]float64, g.n)
	for i, d := range g.distancesTo(g.n - 1) {
		if !math.IsInf(d, 1) {
			g.hTab[i] = d / 2
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.AStar[int, int](g); err != nil {
			b.Fatalf("AStar: %v", err)
		}
	}
}

// BenchmarkBreadthFirst runs breadth-first search over the unit-cost benchGraph.
// Complexity: O(V+E)
func BenchmarkBreadthFirst(b *testing.B) {
	g := benchGraph(true)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.BreadthFirst[int, int](g); err != nil {
			b.Fatalf("BreadthFirst: %v", err)
		}
	}
}
