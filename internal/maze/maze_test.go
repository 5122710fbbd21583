package maze

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := Parse([]string{
		"XXXXXX",
		"XT..MX",
		"X....X",
		"X@..TX",
		"XXXXXX",
	})
	require.NoError(t, err)

	assert.Equal(t, Position{Col: 1, Row: 3}, p.Start())
	assert.Equal(t, []Position{{Col: 1, Row: 1}, {Col: 4, Row: 3}}, p.Targets())

	g := p.Grid()
	assert.Equal(t, 6, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, Wall, g.At(Position{Col: 0, Row: 0}))
	assert.Equal(t, Mud, g.At(Position{Col: 4, Row: 1}))
	assert.Equal(t, Target, g.At(Position{Col: 1, Row: 1}))
	// the start symbol normalizes to floor
	assert.Equal(t, Floor, g.At(Position{Col: 1, Row: 3}))
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows []string
	}{
		{name: "empty grid", rows: nil},
		{name: "empty row", rows: []string{""}},
		{
			name: "ragged rows",
			rows: []string{"XXXX", "X@.X", "XXXXX"},
		},
		{
			name: "no start",
			rows: []string{"XXXX", "X..X", "XXXX"},
		},
		{
			name: "two starts",
			rows: []string{"XXXX", "X@@X", "XXXX"},
		},
		{
			name: "unknown symbol",
			rows: []string{"XXXX", "X@?X", "XXXX"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(test.rows)
			require.Error(t, err)
			var malformed MalformedMazeError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestParseTooManyTargets(t *testing.T) {
	t.Parallel()

	// one target over the bitmask limit
	rows := []string{
		strings.Repeat("X", 68),
		"X@" + strings.Repeat("T", MaxTargets+1) + "X",
		strings.Repeat("X", 68),
	}
	_, err := Parse(rows)
	var malformed MalformedMazeError
	require.ErrorAs(t, err, &malformed)
}

func TestParseZeroTargets(t *testing.T) {
	t.Parallel()

	p, err := Parse([]string{"XXX", "X@X", "XXX"})
	require.NoError(t, err)
	assert.Empty(t, p.Targets())
	assert.True(t, p.IsGoal(p.InitialState()))
}

func TestGridOutOfBoundsIsWall(t *testing.T) {
	t.Parallel()

	// no walled border; the grid edge itself must be impassable
	p, err := Parse([]string{"@.", ".T"})
	require.NoError(t, err)

	g := p.Grid()
	assert.Equal(t, Wall, g.At(Position{Col: -1, Row: 0}))
	assert.Equal(t, Wall, g.At(Position{Col: 0, Row: -1}))
	assert.Equal(t, Wall, g.At(Position{Col: 2, Row: 0}))
	assert.Equal(t, Wall, g.At(Position{Col: 0, Row: 2}))
}

func TestMovesRoundTrip(t *testing.T) {
	t.Parallel()

	moves, err := ParseMoves("UDLR")
	require.NoError(t, err)
	assert.Equal(t, []Direction{Up, Down, Left, Right}, moves)
	assert.Equal(t, "UDLR", FormatMoves(moves))

	_, err = ParseMoves("UDX")
	assert.Error(t, err)
}
