package search

import "github.com/avezina/mazehunt/internal/maze"

type frontierItem struct {
	state maze.State
	g, f  int
	seq   uint64
}

// frontier is a min-heap on f with the push sequence number as a stable
// secondary key, so expansion order is deterministic for a fixed input.
type frontier []*frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *frontier) Push(x any) {
	*q = append(*q, x.(*frontierItem))
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
