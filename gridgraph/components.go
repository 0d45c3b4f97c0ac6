package gridgraph

// Region returns every open cell reachable from start under conn, start
// included, in breadth-first discovery order. Walls and cells already
// classified as Visited or Path act as barriers.
//
// Returns nil if start is out of bounds or is itself a wall.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Region(start Vector, conn Connectivity) []Vector {
	if !g.InBounds(start) || g.State(start) == Wall {
		return nil
	}
	seen := make([]bool, g.Len())
	seen[g.Index(start)] = true
	queue := []Vector{start}

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi], conn) {
			ni := g.Index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}

// Reachable reports whether end lies in the open region around start.
func (g *Grid) Reachable(start, end Vector, conn Connectivity) bool {
	for _, v := range g.Region(start, conn) {
		if v == end {
			return true
		}
	}

	return false
}
