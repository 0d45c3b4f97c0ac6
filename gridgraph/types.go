// Package gridgraph defines core types for the board: coordinates, cell
// states, connectivity and the Grid itself.
package gridgraph

import "strconv"

// Vector is an immutable grid coordinate. X grows to the east (columns),
// Y grows to the south (rows).
type Vector struct {
	X, Y int
}

// Add returns v translated by d.
func (v Vector) Add(d Vector) Vector {
	return Vector{X: v.X + d.X, Y: v.Y + d.Y}
}

// String formats v as "x,y".
func (v Vector) String() string {
	return strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y)
}

// CellState is the visual classification of one cell.
//
// A stored grid only ever holds Unvisited, Wall, Visited or Path. Start and
// End are roles derived from the current endpoints and exist so renderers
// and playback consumers can speak about them with the same type.
type CellState int

const (
	// Unvisited is an open, not yet classified cell.
	Unvisited CellState = iota
	// Wall blocks movement.
	Wall
	// Visited marks a cell settled by a search.
	Visited
	// Path marks a cell on the reconstructed shortest path.
	Path
	// Start is the role of the search source.
	Start
	// End is the role of the search target.
	End
)

var cellStateNames = [...]string{"unvisited", "wall", "visited", "path", "start", "end"}

// String returns the lowercase legend name of s.
func (s CellState) String() string {
	if s < 0 || int(s) >= len(cellStateNames) {
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
	return cellStateNames[s]
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: W, E, S, N.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: SE, NW, NE, SW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Grid is a rows × columns board stored densely in row-major order.
// Every in-bounds coordinate has exactly one CellState.
//
// Grid is not safe for concurrent mutation; the orchestrator owns the live
// grid and searches work on copies.
type Grid struct {
	Rows, Columns int
	cells         []CellState
}
