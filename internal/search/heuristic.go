package search

import "github.com/avezina/mazehunt/internal/maze"

// Heuristic estimates the remaining cost to visit every pending target
// from pos. Estimates must never exceed the true minimum remaining cost,
// or the search loses its optimality guarantee.
type Heuristic func(p *maze.Problem, pos maze.Position, remaining maze.TargetSet) int

func manhattan(a, b maze.Position) int {
	return absDiff(a.Col, b.Col) + absDiff(a.Row, b.Row)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// MaxManhattan is the default heuristic: the largest Manhattan distance
// from pos to any pending target, scaled by the minimum per-step cost
// of 1. Some target is at least that far away, so it never overestimates,
// and it is consistent under unit grid moves.
func MaxManhattan(p *maze.Problem, pos maze.Position, remaining maze.TargetSet) int {
	best := 0
	for i := range p.TargetCount() {
		if !remaining.Has(i) {
			continue
		}
		if d := manhattan(pos, p.TargetAt(i)); d > best {
			best = d
		}
	}
	return best
}

// NearestMST is a tighter admissible bound: distance to the nearest
// pending target plus the weight of a minimum spanning tree over the
// pending targets under Manhattan distance. Any route must first reach
// some target and then connect the rest, and both terms lower-bound
// those legs. Quadratic in the target count, which the state space
// already bounds to a handful.
func NearestMST(p *maze.Problem, pos maze.Position, remaining maze.TargetSet) int {
	var pending []maze.Position
	for i := range p.TargetCount() {
		if remaining.Has(i) {
			pending = append(pending, p.TargetAt(i))
		}
	}
	if len(pending) == 0 {
		return 0
	}

	nearest := manhattan(pos, pending[0])
	for _, t := range pending[1:] {
		if d := manhattan(pos, t); d < nearest {
			nearest = d
		}
	}

	// Prim's algorithm over the pending targets.
	const inf = int(^uint(0) >> 1)
	inTree := make([]bool, len(pending))
	dist := make([]int, len(pending))
	for i := range dist {
		dist[i] = inf
	}
	dist[0] = 0
	mst := 0
	for range pending {
		best := -1
		for i, d := range dist {
			if !inTree[i] && (best < 0 || d < dist[best]) {
				best = i
			}
		}
		inTree[best] = true
		mst += dist[best]
		for i := range pending {
			if !inTree[i] {
				if d := manhattan(pending[best], pending[i]); d < dist[i] {
					dist[i] = d
				}
			}
		}
	}

	return nearest + mst
}

// Zero estimates nothing, degrading the search to uniform-cost order.
// Useful as a baseline in tests.
func Zero(*maze.Problem, maze.Position, maze.TargetSet) int { return 0 }

var heuristics = map[string]Heuristic{
	"max-manhattan": MaxManhattan,
	"nearest-mst":   NearestMST,
}

// ByName resolves a heuristic selector as used by the CLI and the solve
// endpoint. The empty name resolves to the default.
func ByName(name string) (Heuristic, bool) {
	if name == "" {
		return MaxManhattan, true
	}
	h, ok := heuristics[name]
	return h, ok
}
