package gridgraph_test

import (
	"testing"

	"github.com/NSteczynski/Pathfinding/gridgraph"
)

// BenchmarkNeighbors measures Conn8 enumeration in the middle of an open grid.
// Complexity: O(8).
func BenchmarkNeighbors(b *testing.B) {
	g, err := gridgraph.Build(64, 64)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	v := gridgraph.Vector{X: 32, Y: 32}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(v, gridgraph.Conn8)
	}
}

// BenchmarkRegion measures a full flood fill on a 200×200 open grid.
// Complexity: O(W×H×d).
func BenchmarkRegion(b *testing.B) {
	g, err := gridgraph.Build(200, 200)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Region(gridgraph.Vector{}, gridgraph.Conn4)
	}
}
