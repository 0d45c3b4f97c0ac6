// Package gridgraph treats a rectangular board of cell states as a graph
// for shortest-path visualization.
//
// What:
//
//   - Grid stores one CellState per coordinate, densely, in row-major order.
//   - Neighbors enumerates open cells under Conn4 or Conn8 in a fixed order
//     that searches rely on for deterministic tie-breaking.
//   - Reset clears a previous visualization (Visited, Path) while keeping walls.
//   - Region flood-fills the open area around a cell.
//   - FromLayout and Render convert between grids and ASCII boards.
//
// Why:
//
//   - Searches receive a Reset snapshot and never touch the live grid.
//   - Grids are rebuilt, never patched, when dimensions change, so no cell
//     outlives a resize.
//
// Complexity:
//
//   - Build, Clone, Reset: O(W×H) time and memory.
//   - Neighbors:           O(d), d = 4 or 8.
//   - Region:              O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: requested grid has no rows or no columns.
//   - ErrNonRectangular: layout rows have differing lengths.
//   - ErrBadLayoutRune: layout contains a character outside the legend.
//   - ErrDuplicateEndpoint: layout marks S or E more than once.
//
// Accessing a coordinate outside the grid through State or SetState panics;
// that is a programming error, not a recoverable condition.
package gridgraph
