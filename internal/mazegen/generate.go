// Package mazegen produces random maze text for stress testing and the
// generate endpoint. Mazes are carved on an odd lattice with a
// recursive backtracker, so every floor cell is reachable from every
// other; targets and the start always land on carved floor, which keeps
// generated instances solvable.
package mazegen

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/avezina/mazehunt/internal/maze"
)

var Log = logrus.New()

// Params describes a maze to generate. Width and Height count cells
// including the outer wall and must be odd.
type Params struct {
	Width     int     `schema:"width,required" json:"width"`
	Height    int     `schema:"height,required" json:"height"`
	Targets   int     `schema:"targets,required" json:"targets"`
	MudChance float64 `schema:"mud_chance" json:"mud_chance"`
	Braid     float64 `schema:"braid" json:"braid"`
}

func (p Params) Validate() error {
	if p.Width < 5 || p.Height < 5 {
		return fmt.Errorf("maze must be at least 5x5, got %dx%d", p.Width, p.Height)
	}
	if p.Width%2 == 0 || p.Height%2 == 0 {
		return fmt.Errorf("maze dimensions must be odd, got %dx%d", p.Width, p.Height)
	}
	if p.Targets < 0 || p.Targets > maze.MaxTargets {
		return fmt.Errorf("target count must be in [0, %d], got %d", maze.MaxTargets, p.Targets)
	}
	if p.MudChance < 0 || p.MudChance > 1 {
		return fmt.Errorf("mud_chance must be in [0, 1], got %g", p.MudChance)
	}
	if p.Braid < 0 || p.Braid > 1 {
		return fmt.Errorf("braid must be in [0, 1], got %g", p.Braid)
	}
	rooms := (p.Width / 2) * (p.Height / 2)
	if p.Targets+1 > rooms {
		return fmt.Errorf("%d targets do not fit %d rooms", p.Targets, rooms)
	}
	return nil
}

// Generate builds maze text for params using r. The same params and
// seed always produce the same maze.
func Generate(params Params, r *rand.Rand) ([]string, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	width, height := params.Width, params.Height
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = 'X'
	}
	carve := func(col, row int) { cells[row*width+col] = '.' }
	carved := func(col, row int) bool { return cells[row*width+col] != 'X' }

	// Rooms sit at odd coordinates; carve passages with an iterative
	// backtracker.
	type cell struct{ col, row int }
	stack := []cell{{1, 1}}
	carve(1, 1)
	offsets := [4]cell{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		var next []cell
		for _, o := range offsets {
			col, row := cur.col+o.col, cur.row+o.row
			if 0 < col && col < width-1 && 0 < row && row < height-1 && !carved(col, row) {
				next = append(next, cell{col, row})
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		n := next[r.IntN(len(next))]
		carve((cur.col+n.col)/2, (cur.row+n.row)/2)
		carve(n.col, n.row)
		stack = append(stack, n)
	}

	// Braiding knocks out walls between two carved cells, opening
	// alternate routes so optimal paths are not forced.
	if params.Braid > 0 {
		for row := 1; row < height-1; row++ {
			for col := 1; col < width-1; col++ {
				if carved(col, row) {
					continue
				}
				horizontal := carved(col-1, row) && carved(col+1, row)
				vertical := carved(col, row-1) && carved(col, row+1)
				if (horizontal || vertical) && r.Float64() < params.Braid {
					carve(col, row)
				}
			}
		}
	}

	var floor []cell
	for row := 1; row < height-1; row++ {
		for col := 1; col < width-1; col++ {
			if carved(col, row) {
				if r.Float64() < params.MudChance {
					cells[row*width+col] = 'M'
				}
				floor = append(floor, cell{col, row})
			}
		}
	}

	// Pick start and targets from distinct floor cells.
	r.Shuffle(len(floor), func(i, j int) { floor[i], floor[j] = floor[j], floor[i] })
	start := floor[0]
	cells[start.row*width+start.col] = '@'
	for _, t := range floor[1 : params.Targets+1] {
		cells[t.row*width+t.col] = 'T'
	}

	rows := make([]string, height)
	for row := range height {
		rows[row] = string(cells[row*width : (row+1)*width])
	}

	Log.WithFields(logrus.Fields{
		"width":   width,
		"height":  height,
		"targets": params.Targets,
		"floor":   len(floor),
	}).Debug("generated maze")

	return rows, nil
}
