// Package pathfind implements single-source single-target shortest-path
// searches on a gridgraph.Grid, producing both the reconstructed path and
// the ordered trace of settled cells that a visualizer replays.
//
// Overview:
//
//   - Dijkstra: uniform-cost search, 4-connected by default, unit weights.
//   - AStar:    A* with a Euclidean heuristic, 8-connected by default,
//     orthogonal weight 1, diagonal weight √2.
//   - Lookup:   fixed registry of both algorithms by name.
//
// Both searches share one runner:
//
//   - Nodes live in an arena and point at their parent by index, so the
//     parent chain is a tree rooted at the start.
//   - The open list is a min-heap keyed by (priority, insertion rank). Equal
//     priorities pop in the order they were discovered, which in turn follows
//     gridgraph's neighbor enumeration order. No randomness is involved and
//     identical inputs always yield identical Results.
//   - The caller's grid is never modified: every search runs on a Reset
//     snapshot, so stale Visited/Path marks from a previous run are ignored.
//
// Result conventions:
//
//   - Trace excludes both endpoints; Path excludes the start and ends with
//     the end cell. Renderers overlay start and end markers themselves.
//   - An unreachable end is not an error: Outcome is NoPath, Path is empty,
//     Cost is +Inf and Trace lists every reachable settled cell.
//   - start == end yields Outcome Found with an empty Trace and Path.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          nil grid.
//   - ErrOutOfBounds:      start or end outside the grid.
//   - ErrBlockedEndpoint:  start or end is a wall.
//   - ErrUnknownAlgorithm: Lookup of an unregistered name.
//
// Thread safety:
//
//   - Searches hold no shared state and may run concurrently on distinct
//     or unmodified grids. Mutating a grid during a search is not supported.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = rows×columns.
//   - Space: O(N) for the arena, open-list index and closed flags.
package pathfind
