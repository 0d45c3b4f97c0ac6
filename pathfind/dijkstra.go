package pathfind

import "github.com/NSteczynski/Pathfinding/gridgraph"

// Dijkstra is uniform-cost search. By default it walks the grid 4-connected
// with unit weights, where its closing order is breadth-first.
type Dijkstra struct{}

// Name returns NameDijkstra.
func (Dijkstra) Name() string { return NameDijkstra }

// Search computes the shortest path from start to end on a Reset snapshot
// of g. The caller's grid is never modified.
//
// Behavior:
//  1. Validate inputs (ErrNilGrid, ErrOutOfBounds, ErrBlockedEndpoint).
//  2. Close nodes in ascending distance; ties follow neighbor enumeration
//     order through the open list's insertion rank.
//  3. Once the end is closed at distance D, keep closing queued nodes at
//     distance D without expanding them, so the trace holds every reachable
//     cell no farther than the end.
//  4. Reconstruct the path through the arena's parent indices.
//
// Complexity:
//
//   - Time:  O(W·H·log(W·H))
//   - Space: O(W·H)
func (Dijkstra) Search(g *gridgraph.Grid, start, end gridgraph.Vector, opts ...Option) (Result, error) {
	cfg := DefaultOptions(gridgraph.Conn4)
	for _, opt := range opts {
		opt(&cfg)
	}

	snapshot, err := prepare(g, start, end)
	if err != nil {
		return Result{}, err
	}

	r := newRunner(snapshot, start, end, cfg)
	r.drain = true

	return r.run(), nil
}
