package pathfind

import "github.com/NSteczynski/Pathfinding/gridgraph"

// AStar is A* with a straight-line heuristic. By default it walks the grid
// 8-connected: orthogonal moves cost 1, diagonal moves cost √2.
type AStar struct{}

// Name returns NameAStar.
func (AStar) Name() string { return NameAStar }

// Search computes a path from start to end on a Reset snapshot
// of g. The caller's grid is never modified.
//
// Each open entry carries cost = distance + euclidean(v, end). The entry
// with the lowest cost is closed next, the first found winning ties. A
// cell keeps the distance and parent of its first discovery; a cheaper
// route found while it is still open is ignored. The search stops when the
// end itself is closed, so the path is the best one among first discoveries
// but is not guaranteed to be the shortest on cluttered boards.
//
// Complexity:
//
//   - Time:  O(W·H·log(W·H)) worst case, usually far less.
//   - Space: O(W·H)
func (AStar) Search(g *gridgraph.Grid, start, end gridgraph.Vector, opts ...Option) (Result, error) {
	cfg := DefaultOptions(gridgraph.Conn8)
	for _, opt := range opts {
		opt(&cfg)
	}

	snapshot, err := prepare(g, start, end)
	if err != nil {
		return Result{}, err
	}

	r := newRunner(snapshot, start, end, cfg)
	r.heuristic = func(v gridgraph.Vector) float64 { return euclidean(v, end) }

	return r.run(), nil
}
