package maze

import "math/bits"

// TargetSet is a bitmask of target indexes still to be visited, using
// the stable enumeration assigned at parse time.
type TargetSet uint64

func (s TargetSet) Has(i int) bool { return s&(1<<i) != 0 }

func (s TargetSet) Drop(i int) TargetSet { return s &^ (1 << i) }

func (s TargetSet) Empty() bool { return s == 0 }

func (s TargetSet) Count() int { return bits.OnesCount64(uint64(s)) }

// State is a search-space node: where the agent stands and which targets
// remain. It is comparable and cheap to use as a map key.
type State struct {
	Pos       Position
	Remaining TargetSet
}

// Transition is one valid unit move out of a state.
type Transition struct {
	Dir  Direction
	Next State
	Cost int
}

// Score is the outcome of replaying a candidate solution.
type Score struct {
	Valid bool `json:"is_solution"`
	Cost  int  `json:"cost"`
}

// Problem is an immutable maze instance: terrain, start, and the target
// enumeration. All methods are pure, so one Problem may serve any number
// of concurrent queries.
type Problem struct {
	grid        Grid
	start       Position
	targets     []Position
	targetIndex map[Position]int
}

func (p *Problem) Grid() Grid { return p.grid }

func (p *Problem) Start() Position { return p.start }

// Targets returns the target positions in enumeration order.
func (p *Problem) Targets() []Position {
	out := make([]Position, len(p.targets))
	copy(out, p.targets)
	return out
}

// TargetAt returns the position of target index i.
func (p *Problem) TargetAt(i int) Position { return p.targets[i] }

// TargetCount returns the size of the target enumeration.
func (p *Problem) TargetCount() int { return len(p.targets) }

// InitialState is the start position with every target pending.
func (p *Problem) InitialState() State {
	var all TargetSet
	for i := range p.targets {
		all |= 1 << i
	}
	return State{Pos: p.start, Remaining: all}
}

// StepCost is the cost of entering a cell of the given terrain. Walls
// are never entered so they carry no cost.
func (p *Problem) StepCost(c Cell) int {
	if c == Mud {
		return 2
	}
	return 1
}

// IsGoal reports whether every target has been visited.
func (p *Problem) IsGoal(s State) bool {
	return s.Remaining.Empty()
}

// apply computes the state and cost of one move, in-bounds and non-wall
// destinations only. Stepping onto a pending target clears its bit.
func (p *Problem) apply(s State, d Direction) (State, int, bool) {
	dc, dr := d.Offset()
	next := Position{Col: s.Pos.Col + dc, Row: s.Pos.Row + dr}
	cell := p.grid.At(next)
	if cell == Wall {
		return State{}, 0, false
	}
	remaining := s.Remaining
	if i, ok := p.targetIndex[next]; ok {
		remaining = remaining.Drop(i)
	}
	return State{Pos: next, Remaining: remaining}, p.StepCost(cell), true
}

// Successors returns the valid transitions out of s, in the fixed order
// of [Directions]. Off-grid and wall moves are omitted, not errors.
func (p *Problem) Successors(s State) []Transition {
	out := make([]Transition, 0, 4)
	for _, d := range Directions {
		if next, cost, ok := p.apply(s, d); ok {
			out = append(out, Transition{Dir: d, Next: next, Cost: cost})
		}
	}
	return out
}

// Replay applies moves from the initial state and scores the result. It
// fails closed: any off-grid or wall move, or a final state with targets
// still pending, yields Valid=false. Mud is charged on every entry, and
// revisiting a consumed target costs its plain terrain cost. Replay is
// pure, so scoring the same solution twice gives identical results.
func (p *Problem) Replay(moves []Direction) Score {
	s := p.InitialState()
	total := 0
	for _, d := range moves {
		next, cost, ok := p.apply(s, d)
		if !ok {
			return Score{Valid: false, Cost: 0}
		}
		total += cost
		s = next
	}
	if !p.IsGoal(s) {
		return Score{Valid: false, Cost: 0}
	}
	return Score{Valid: true, Cost: total}
}
