package pathfind_test

import (
	"testing"

	"github.com/NSteczynski/Pathfinding/gridgraph"
	"github.com/NSteczynski/Pathfinding/pathfind"
)

// benchGrid builds a 60×100 board with staggered wall columns.
func benchGrid(b *testing.B) *gridgraph.Grid {
	g, err := gridgraph.Build(60, 100)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	for x := 10; x < 100; x += 10 {
		gap := 5
		if (x/10)%2 == 0 {
			gap = 54
		}
		for y := 0; y < 60; y++ {
			if y != gap {
				g.SetState(gridgraph.Vector{X: x, Y: y}, gridgraph.Wall)
			}
		}
	}
	return g
}

func BenchmarkDijkstra(b *testing.B) {
	g := benchGrid(b)
	start, end := gridgraph.Vector{X: 0, Y: 30}, gridgraph.Vector{X: 99, Y: 30}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.Dijkstra{}.Search(g, start, end)
	}
}

func BenchmarkAStar(b *testing.B) {
	g := benchGrid(b)
	start, end := gridgraph.Vector{X: 0, Y: 30}, gridgraph.Vector{X: 99, Y: 30}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.AStar{}.Search(g, start, end)
	}
}
