// Package search finds cost-optimal move sequences that visit every
// target of a maze problem, or proves that none exists.
//
// The engine is best-first search over the augmented state space of
// (position, remaining targets). The frontier uses lazy deletion: an
// improved path to a known state pushes a fresh entry, and pops whose
// recorded cost is worse than the best known for their state are
// skipped as stale.
package search

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/avezina/mazehunt/internal/maze"
)

var Log = logrus.New()

// Result carries the outcome of one query.
type Result struct {
	Moves    []maze.Direction
	Cost     int
	Expanded int
	Found    bool
}

type cameFrom struct {
	prev maze.State
	dir  maze.Direction
}

// Pathfind returns a minimum-cost move sequence visiting every target,
// or ok=false if some target is unreachable. It uses the default
// heuristic; see [Run] for more control.
func Pathfind(p *maze.Problem) (moves []maze.Direction, ok bool) {
	res := Run(p, MaxManhattan)
	return res.Moves, res.Found
}

// Run executes the search with the given heuristic. Each call owns its
// frontier and cost tables, so concurrent calls on one Problem need no
// coordination.
func Run(p *maze.Problem, h Heuristic) Result {
	initial := p.InitialState()
	if p.IsGoal(initial) {
		return Result{Moves: []maze.Direction{}, Cost: 0, Found: true}
	}

	var (
		open    = frontier{}
		bestG   = map[maze.State]int{initial: 0}
		parent  = map[maze.State]cameFrom{}
		seq     uint64
		expands int
	)

	push := func(s maze.State, g int) {
		seq++
		heap.Push(&open, &frontierItem{
			state: s,
			g:     g,
			f:     g + h(p, s.Pos, s.Remaining),
			seq:   seq,
		})
	}
	push(initial, 0)

	for open.Len() > 0 {
		item := heap.Pop(&open).(*frontierItem)
		if g, ok := bestG[item.state]; ok && item.g > g {
			continue // stale entry, a cheaper path got there first
		}

		if p.IsGoal(item.state) {
			moves := reconstruct(parent, initial, item.state)
			Log.WithFields(logrus.Fields{
				"cost":     item.g,
				"moves":    len(moves),
				"expanded": expands,
			}).Debug("goal reached")
			return Result{
				Moves:    moves,
				Cost:     item.g,
				Expanded: expands,
				Found:    true,
			}
		}
		expands++

		for _, t := range p.Successors(item.state) {
			g := item.g + t.Cost
			if known, ok := bestG[t.Next]; ok && g >= known {
				continue
			}
			bestG[t.Next] = g
			parent[t.Next] = cameFrom{prev: item.state, dir: t.Dir}
			push(t.Next, g)
		}
	}

	Log.WithField("expanded", expands).Debug("frontier exhausted")
	return Result{Expanded: expands, Found: false}
}

func reconstruct(parent map[maze.State]cameFrom, start, goal maze.State) []maze.Direction {
	var moves []maze.Direction
	for s := goal; s != start; {
		step := parent[s]
		moves = append(moves, step.dir)
		s = step.prev
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
