// Package gridgraph provides the board model used by the search engine:
// a rectangular grid of cell states with 4- or 8-connected neighbor
// enumeration.
//
// Cells in state Unvisited are open; every other stored state is closed to
// traversal. Start and End are not stored, they are overlaid by callers.
package gridgraph

import "fmt"

// Build allocates a rows × columns grid with every cell Unvisited.
// Returns ErrEmptyGrid if rows or columns is below one.
// Complexity: O(rows×columns) time and memory.
func Build(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, rows, columns)
	}

	return &Grid{
		Rows:    rows,
		Columns: columns,
		cells:   make([]CellState, rows*columns),
	}, nil
}

// InBounds reports whether v lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(v Vector) bool {
	return v.X >= 0 && v.X < g.Columns && v.Y >= 0 && v.Y < g.Rows
}

// State returns the stored state of v.
// Panics if v is out of bounds: callers must check InBounds first.
func (g *Grid) State(v Vector) CellState {
	return g.cells[g.mustIndex(v)]
}

// SetState stores s at v.
// Panics if v is out of bounds.
func (g *Grid) SetState(v Vector, s CellState) {
	g.cells[g.mustIndex(v)] = s
}

// Len returns the number of cells, rows×columns.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Clone returns a deep copy of g.
// Complexity: O(rows×columns).
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)

	return &Grid{Rows: g.Rows, Columns: g.Columns, cells: cells}
}

// Reset returns a copy of g with every Visited or Path cell reverted to
// Unvisited. Walls are preserved. Reset is idempotent.
// Complexity: O(rows×columns).
func (g *Grid) Reset() *Grid {
	out := g.Clone()
	for i, s := range out.cells {
		if s == Visited || s == Path {
			out.cells[i] = Unvisited
		}
	}

	return out
}

// Cells calls fn for every cell in row-major order (y outer, x inner).
func (g *Grid) Cells(fn func(v Vector, s CellState)) {
	for i, s := range g.cells {
		fn(g.Coordinate(i), s)
	}
}

// Count returns how many cells currently hold state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}

	return n
}

// Equal reports whether g and other have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Rows != other.Rows || g.Columns != other.Columns {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// Index maps v to its row-major index: y*Columns + x.
// The result is meaningless for out-of-bounds v.
// Complexity: O(1).
func (g *Grid) Index(v Vector) int {
	return v.Y*g.Columns + v.X
}

// Coordinate converts a row-major index back to a Vector.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Vector {
	return Vector{X: idx % g.Columns, Y: idx / g.Columns}
}

func (g *Grid) mustIndex(v Vector) int {
	if !g.InBounds(v) {
		panic(fmt.Sprintf("gridgraph: coordinate %s outside %d×%d grid", v, g.Rows, g.Columns))
	}
	return g.Index(v)
}
