package mazegen

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avezina/mazehunt/internal/maze"
	"github.com/avezina/mazehunt/internal/search"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Params
		ok     bool
	}{
		{name: "minimal", params: Params{Width: 5, Height: 5, Targets: 1}, ok: true},
		{name: "no targets", params: Params{Width: 7, Height: 7}, ok: true},
		{name: "too small", params: Params{Width: 3, Height: 5, Targets: 1}},
		{name: "even width", params: Params{Width: 10, Height: 11, Targets: 1}},
		{name: "even height", params: Params{Width: 11, Height: 10, Targets: 1}},
		{name: "negative targets", params: Params{Width: 11, Height: 11, Targets: -1}},
		{name: "too many targets", params: Params{Width: 5, Height: 5, Targets: 4}},
		{name: "mud chance out of range", params: Params{Width: 11, Height: 11, Targets: 1, MudChance: 1.5}},
		{name: "braid out of range", params: Params{Width: 11, Height: 11, Targets: 1, Braid: -0.1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := test.params.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	params := Params{Width: 21, Height: 15, Targets: 3, MudChance: 0.2, Braid: 0.3}

	first, err := Generate(params, rand.New(rand.NewPCG(42, 42)))
	require.NoError(t, err)
	second, err := Generate(params, rand.New(rand.NewPCG(42, 42)))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateParses(t *testing.T) {
	t.Parallel()

	params := Params{Width: 21, Height: 21, Targets: 4, MudChance: 0.3, Braid: 0.2}
	rows, err := Generate(params, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	require.Len(t, rows, params.Height)

	for _, row := range rows {
		assert.Len(t, row, params.Width)
	}
	// outer wall stays intact
	assert.Equal(t, strings.Repeat("X", params.Width), rows[0])
	assert.Equal(t, strings.Repeat("X", params.Width), rows[params.Height-1])

	p, err := maze.Parse(rows)
	require.NoError(t, err)
	assert.Len(t, p.Targets(), params.Targets)
}

func TestGenerateAll(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params Params
	}{
		{
			name:   "9x9(1)",
			params: Params{Width: 9, Height: 9, Targets: 1},
		},
		{
			name:   "21x21(3)",
			params: Params{Width: 21, Height: 21, Targets: 3, MudChance: 0.2},
		},
		{
			name:   "41x41(4)",
			params: Params{Width: 41, Height: 41, Targets: 4, MudChance: 0.2, Braid: 0.3},
		},
		{
			name:   "101x101(4)",
			params: Params{Width: 101, Height: 101, Targets: 4, MudChance: 0.1, Braid: 0.2},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			for seed := range uint64(5) {
				r := rand.New(rand.NewPCG(seed, seed+1))
				rows, err := Generate(test.params, r)
				require.NoError(t, err)

				p, err := maze.Parse(rows)
				require.NoError(t, err)

				// carved mazes are connected, so every instance solves
				moves, ok := search.Pathfind(p)
				require.True(t, ok, "%s seed %d", test.name, seed)
				assert.True(t, p.Replay(moves).Valid)
			}
		})
	}
}
