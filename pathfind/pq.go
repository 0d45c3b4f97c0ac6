package pathfind

// queueItem is an open-list entry pointing at an arena node.
type queueItem struct {
	node     int     // arena index
	priority float64 // copy of the node's cost
	seq      int     // insertion order, breaks priority ties
	index    int     // position in the heap, maintained by Swap
}

// openList is a min-heap of *queueItem ordered by (priority, seq). The seq
// tie-break makes the heap behave like a linear scan that keeps the first
// inserted of several equally cheap entries.
type openList []*queueItem

func (q openList) Len() int { return len(q) }

func (q openList) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q openList) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openList) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *openList) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]

	return item
}
