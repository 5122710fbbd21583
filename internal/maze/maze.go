// Package maze models a multi-target maze puzzle: typed terrain grids
// parsed from text, the derived search problem with its successor and
// goal functions, and pure replay scoring of candidate solutions.
package maze

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Cell is the terrain type of a single grid square.
type Cell int8

const (
	Wall Cell = iota
	Floor
	Mud
	Target
)

func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return 'X'
	case Mud:
		return 'M'
	case Target:
		return 'T'
	default:
		return '.'
	}
}

func (c Cell) String() string {
	return string(c.Rune())
}

// Position addresses a grid square by column and row. Row 0 is the top
// row of the maze text.
type Position struct {
	Col, Row int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Direction is one of the four cardinal unit moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all moves in the order successors are emitted.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) Offset() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	default:
		return "R"
	}
}

// FormatMoves renders a move sequence as a compact string like "UURDD".
func FormatMoves(moves []Direction) string {
	var b strings.Builder
	for _, m := range moves {
		b.WriteString(m.String())
	}
	return b.String()
}

// ParseMoves is the inverse of [FormatMoves].
func ParseMoves(s string) ([]Direction, error) {
	moves := make([]Direction, 0, len(s))
	for _, r := range s {
		switch r {
		case 'U':
			moves = append(moves, Up)
		case 'D':
			moves = append(moves, Down)
		case 'L':
			moves = append(moves, Left)
		case 'R':
			moves = append(moves, Right)
		default:
			return nil, fmt.Errorf("unknown move %q", r)
		}
	}
	return moves, nil
}

// Grid is an immutable rectangular terrain field. Cells are stored in a
// flat slice in row-major order, indexed row*width+col.
type Grid struct {
	width, height int
	cells         []Cell
}

func (g Grid) Width() int { return g.width }

func (g Grid) Height() int { return g.height }

func (g Grid) InBounds(p Position) bool {
	return 0 <= p.Col && p.Col < g.width && 0 <= p.Row && p.Row < g.height
}

// At returns the terrain at p. Anything outside the grid reads as Wall,
// so a maze without a walled border is still closed.
func (g Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Row*g.width+p.Col]
}

func (g Grid) String() string {
	var b strings.Builder
	for row := range g.height {
		for col := range g.width {
			b.WriteRune(g.cells[row*g.width+col].Rune())
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// MalformedMazeError reports a structural defect found while parsing
// maze text.
type MalformedMazeError struct {
	Reason string
}

func (e MalformedMazeError) Error() string {
	return "malformed maze: " + e.Reason
}

// MaxTargets bounds the number of targets per maze; the remaining-target
// set is a TargetSet bitmask, one bit per target.
const MaxTargets = 64

// Parse reads maze text into a Problem. Rows must be non-empty and of
// equal length, contain exactly one '@', and use only the symbols
// 'X' (wall), '.' (floor), 'M' (mud), 'T' (target) and '@' (start).
// A maze with no targets is valid and trivially solved.
func Parse(rows []string) (*Problem, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, MalformedMazeError{"empty grid"}
	}

	width, height := len(rows[0]), len(rows)
	g := Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}

	var (
		start    Position
		numStart int
		targets  []Position
	)
	for row, line := range rows {
		if len(line) != width {
			return nil, MalformedMazeError{fmt.Sprintf(
				"row %d has length %d, want %d", row, len(line), width,
			)}
		}
		for col, sym := range []byte(line) {
			pos := Position{Col: col, Row: row}
			var cell Cell
			switch sym {
			case 'X':
				cell = Wall
			case '.':
				cell = Floor
			case 'M':
				cell = Mud
			case 'T':
				cell = Target
				targets = append(targets, pos)
			case '@':
				cell = Floor
				start = pos
				numStart++
			default:
				return nil, MalformedMazeError{fmt.Sprintf(
					"unknown symbol %q at %s", sym, pos,
				)}
			}
			g.cells[row*width+col] = cell
		}
	}

	if numStart != 1 {
		return nil, MalformedMazeError{fmt.Sprintf(
			"want exactly one start cell, got %d", numStart,
		)}
	}
	if len(targets) > MaxTargets {
		return nil, MalformedMazeError{fmt.Sprintf(
			"too many targets: %d > %d", len(targets), MaxTargets,
		)}
	}

	index := make(map[Position]int, len(targets))
	for i, t := range targets {
		index[t] = i
	}

	Log.WithFields(logrus.Fields{
		"width":   width,
		"height":  height,
		"start":   start,
		"targets": len(targets),
	}).Debug("parsed maze")

	return &Problem{
		grid:        g,
		start:       start,
		targets:     targets,
		targetIndex: index,
	}, nil
}
