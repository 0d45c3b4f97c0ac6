package pathfind

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/NSteczynski/Pathfinding/gridgraph"
)

// costEpsilon absorbs rounding when comparing sums of √2 steps.
const costEpsilon = 1e-9

// runner holds the mutable state for a single search execution.
type runner struct {
	grid      *gridgraph.Grid // Reset snapshot; read-only during the search.
	options   Options
	start     gridgraph.Vector
	end       gridgraph.Vector
	heuristic func(gridgraph.Vector) float64

	// drain keeps closing nodes whose priority ties the end's after the end
	// itself is closed, without expanding them.
	drain bool

	nodes   *arena
	open    openList
	entries []*queueItem // cell index → open entry, nil when not open
	closed  []bool       // cell index → settled
	order   []int        // arena indices in closing order
	seq     int
}

// prepare validates the request and returns a Reset snapshot of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must be in bounds (ErrOutOfBounds).
//  3. neither endpoint may be a wall (ErrBlockedEndpoint).
func prepare(g *gridgraph.Grid, start, end gridgraph.Vector) (*gridgraph.Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %s", ErrOutOfBounds, end)
	}
	if g.State(start) == gridgraph.Wall {
		return nil, fmt.Errorf("%w: start %s", ErrBlockedEndpoint, start)
	}
	if g.State(end) == gridgraph.Wall {
		return nil, fmt.Errorf("%w: end %s", ErrBlockedEndpoint, end)
	}

	return g.Reset(), nil
}

func newRunner(snapshot *gridgraph.Grid, start, end gridgraph.Vector, cfg Options) *runner {
	n := snapshot.Len()
	return &runner{
		grid:      snapshot,
		options:   cfg,
		start:     start,
		end:       end,
		heuristic: func(gridgraph.Vector) float64 { return 0 },
		nodes:     newArena(n),
		open:      make(openList, 0, n),
		entries:   make([]*queueItem, n),
		closed:    make([]bool, n),
		order:     make([]int, 0, n),
	}
}

// run executes the main loop and assembles the Result.
func (r *runner) run() Result {
	h := r.heuristic(r.start)
	root := r.nodes.add(searchNode{pos: r.start, heuristic: h, cost: h, parent: rootParent})
	heap.Init(&r.open)
	r.push(root)

	endNode := -1
	for r.open.Len() > 0 {
		// 1) Pop the cheapest entry; ties go to the earliest inserted.
		item := heap.Pop(&r.open).(*queueItem)
		node := r.nodes.nodes[item.node]
		cell := r.grid.Index(node.pos)
		r.entries[cell] = nil

		// 2) Once the end is closed, only entries tied with it are still settled.
		if endNode >= 0 && node.cost > r.nodes.nodes[endNode].cost+costEpsilon {
			break
		}

		// 3) Close the node. Its distance is final.
		r.closed[cell] = true
		r.order = append(r.order, item.node)
		r.options.OnSettle(node.pos, node.cost)

		if endNode >= 0 {
			continue // drained, no new work
		}
		if node.pos == r.end {
			endNode = item.node
			if !r.drain {
				break
			}
			continue
		}

		// 4) Relax every open neighbor.
		r.relax(item.node)
	}

	if endNode < 0 {
		res := noPath()
		res.Trace = r.trace(math.Inf(1))
		res.Settled = len(r.order)
		return res
	}

	end := r.nodes.nodes[endNode]
	return Result{
		Trace:   r.trace(end.cost),
		Path:    r.nodes.path(endNode),
		Outcome: Found,
		Cost:    end.distance,
		Settled: len(r.order),
	}
}

// relax examines every neighbor of the node at arena index u.
// Closed neighbors and neighbors already open are skipped: the first
// discovery of a cell fixes its distance and parent.
func (r *runner) relax(u int) {
	from := r.nodes.nodes[u]
	for _, v := range r.grid.Neighbors(from.pos, r.options.Conn) {
		cell := r.grid.Index(v)
		if r.closed[cell] || r.entries[cell] != nil {
			continue
		}

		dist := from.distance + stepCost(from.pos, v)
		h := r.heuristic(v)
		idx := r.nodes.add(searchNode{pos: v, distance: dist, heuristic: h, cost: dist + h, parent: u})
		r.push(idx)
	}
}

func (r *runner) push(idx int) {
	n := r.nodes.nodes[idx]
	item := &queueItem{node: idx, priority: n.cost, seq: r.seq}
	r.seq++
	heap.Push(&r.open, item)
	r.entries[r.grid.Index(n.pos)] = item
}

// trace returns closed nodes with priority ≤ limit, ascending by priority
// and stable in closing order, excluding both endpoints.
func (r *runner) trace(limit float64) []Step {
	picked := make([]searchNode, 0, len(r.order))
	for _, idx := range r.order {
		n := r.nodes.nodes[idx]
		if n.pos == r.start || n.pos == r.end || n.cost > limit+costEpsilon {
			continue
		}
		picked = append(picked, n)
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].cost < picked[j].cost })

	out := make([]Step, len(picked))
	for i, n := range picked {
		out[i] = Step{Position: n.pos, State: gridgraph.Visited}
	}

	return out
}

// stepCost is 1 for an orthogonal move and √2 for a diagonal one.
func stepCost(a, b gridgraph.Vector) float64 {
	if a.X != b.X && a.Y != b.Y {
		return math.Sqrt2
	}
	return 1
}

// euclidean is the straight-line distance between a and b.
func euclidean(a, b gridgraph.Vector) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
