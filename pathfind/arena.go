package pathfind

import "github.com/NSteczynski/Pathfinding/gridgraph"

// rootParent marks the start node, which has no parent.
const rootParent = -1

// searchNode is one arena entry. parent is the arena index of the node it
// was reached from; parents are always closed before their children are
// opened, so the chain ends at the start without cycles.
type searchNode struct {
	pos       gridgraph.Vector
	distance  float64
	heuristic float64
	cost      float64 // queue priority: distance (+ heuristic for A*)
	parent    int
}

// arena owns every searchNode created during one search.
type arena struct {
	nodes []searchNode
}

func newArena(capacity int) *arena {
	return &arena{nodes: make([]searchNode, 0, capacity)}
}

// add appends n and returns its index.
func (a *arena) add(n searchNode) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// path walks parent indices from idx back to the root and returns the
// positions after the root, root excluded, in start→end order.
func (a *arena) path(idx int) []Step {
	var out []Step
	for at := idx; at >= 0 && a.nodes[at].parent != rootParent; at = a.nodes[at].parent {
		out = append(out, Step{Position: a.nodes[at].pos, State: gridgraph.Path})
	}
	// reverse to get start → end
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
