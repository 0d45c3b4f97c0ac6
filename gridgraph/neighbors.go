package gridgraph

// Orthogonal offsets in enumeration order: West, East, South, North.
var orthogonal = [4]Vector{{X: -1}, {X: 1}, {Y: 1}, {Y: -1}}

// diagonal pairs each diagonal offset with the indices of the two orthogonal
// moves it is composed of. Order: South-East, North-West, North-East, South-West.
var diagonal = [4]struct {
	offset Vector
	via    [2]int
}{
	{Vector{X: 1, Y: 1}, [2]int{1, 2}},
	{Vector{X: -1, Y: -1}, [2]int{0, 3}},
	{Vector{X: 1, Y: -1}, [2]int{1, 3}},
	{Vector{X: -1, Y: 1}, [2]int{0, 2}},
}

// Open reports whether v is in bounds and Unvisited.
func (g *Grid) Open(v Vector) bool {
	return g.InBounds(v) && g.cells[g.Index(v)] == Unvisited
}

// Neighbors returns the open cells adjacent to v under conn.
//
// Only in-bounds Unvisited cells are offered. The order is fixed and is
// what searches use to break ties: West, East, South, North, then for Conn8
// South-East, North-West, North-East, South-West. A diagonal is offered only
// when both orthogonal cells it passes between are open, so paths never cut
// a wall corner.
//
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(v Vector, conn Connectivity) []Vector {
	out := make([]Vector, 0, 8)
	var open [4]bool
	for i, d := range orthogonal {
		n := v.Add(d)
		if g.Open(n) {
			open[i] = true
			out = append(out, n)
		}
	}
	if conn != Conn8 {
		return out
	}
	for _, d := range diagonal {
		if !open[d.via[0]] || !open[d.via[1]] {
			continue
		}
		n := v.Add(d.offset)
		if g.Open(n) {
			out = append(out, n)
		}
	}

	return out
}
