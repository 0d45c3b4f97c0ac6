package pathfind

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NSteczynski/Pathfinding/gridgraph"
)

// TestOpenList_TieBreak checks equal priorities pop in insertion order and
// that Fix keeps the heap consistent after a decrease.
func TestOpenList_TieBreak(t *testing.T) {
	q := make(openList, 0)
	heap.Init(&q)
	items := []*queueItem{
		{node: 0, priority: 2, seq: 0},
		{node: 1, priority: 1, seq: 1},
		{node: 2, priority: 2, seq: 2},
		{node: 3, priority: 1, seq: 3},
		{node: 4, priority: 3, seq: 4},
	}
	for _, it := range items {
		heap.Push(&q, it)
	}
	items[4].priority = 1
	heap.Fix(&q, items[4].index)

	var got []int
	for q.Len() > 0 {
		got = append(got, heap.Pop(&q).(*queueItem).node)
	}
	assert.Equal(t, []int{1, 3, 4, 0, 2}, got)
}

// TestArena_Path walks a small parent chain.
func TestArena_Path(t *testing.T) {
	a := newArena(4)
	root := a.add(searchNode{pos: gridgraph.Vector{}, parent: rootParent})
	mid := a.add(searchNode{pos: gridgraph.Vector{X: 1}, parent: root})
	leaf := a.add(searchNode{pos: gridgraph.Vector{X: 2}, parent: mid})

	path := a.path(leaf)
	require.Len(t, path, 2)
	assert.Equal(t, gridgraph.Vector{X: 1}, path[0].Position)
	assert.Equal(t, gridgraph.Vector{X: 2}, path[1].Position)
	assert.Empty(t, a.path(root))
}
