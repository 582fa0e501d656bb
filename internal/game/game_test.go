package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeband/internal/level"
	"github.com/samdwyer/mazeband/internal/world"
)

func newTestGame(t *testing.T, seed int64, rows, cols int) *Game {
	t.Helper()
	g := &Game{
		level:   level.New(),
		manager: newTestManager(t, seed, rows, cols),
		state:   StateExplore,
		running: true,
		logger:  quietLogger(),
	}
	require.NoError(t, g.regenerate(context.Background()))
	return g
}

func stepDirection(t *testing.T, from, to world.Position) world.Direction {
	t.Helper()
	for _, d := range world.Directions {
		if from.Step(d) == to {
			return d
		}
	}
	t.Fatalf("%v and %v are not adjacent", from, to)
	return world.Up
}

func TestWalkSolvedPathEscapes(t *testing.T) {
	g := newTestGame(t, 21, 5, 6)
	path := g.gen.Path

	assert.Equal(t, world.Pos(0, 0), g.player.Pos)
	for i := 1; i < len(path); i++ {
		assert.Equal(t, StateExplore, g.state)
		g.tryMove(stepDirection(t, path[i-1], path[i]))
		require.Equal(t, path[i], g.player.Pos)
	}

	assert.Equal(t, StateEscaped, g.state)
	assert.Equal(t, path.Steps(), g.player.Moves)
	assert.Contains(t, g.status(), "Escaped in")

	// Frozen once escaped
	g.tryMove(world.Left)
	assert.Equal(t, g.gen.Goal(), g.player.Pos)
}

func TestBlockedMove(t *testing.T) {
	g := newTestGame(t, 4, 3, 3)

	g.tryMove(world.Up)
	g.tryMove(world.Left)
	assert.Equal(t, world.Pos(0, 0), g.player.Pos)
	assert.Zero(t, g.player.Moves)
	assert.Equal(t, StateExplore, g.state)
}

func TestRegenerateResetsPlayer(t *testing.T) {
	g := newTestGame(t, 9, 4, 4)
	first := g.gen

	g.tryMove(stepDirection(t, first.Path[0], first.Path[1]))
	require.Equal(t, 1, g.player.Moves)

	require.NoError(t, g.regenerate(context.Background()))
	assert.NotSame(t, first, g.gen)
	assert.Equal(t, world.Pos(0, 0), g.player.Pos)
	assert.Zero(t, g.player.Moves)
	assert.Equal(t, g.gen.Created, g.level.Count())
}

func TestRegenerateKeepsMazeOnError(t *testing.T) {
	g := newTestGame(t, 9, 4, 4)
	prev := g.gen
	count := g.level.Count()

	g.manager.SetSize(0, 4)
	assert.ErrorIs(t, g.regenerate(context.Background()), world.ErrInvalidConfiguration)
	assert.Same(t, prev, g.gen)
	assert.Equal(t, count, g.level.Count())
}

func TestStatus(t *testing.T) {
	g := newTestGame(t, 2, 2, 2)
	assert.Contains(t, g.status(), "arrows")

	g.message = "hello"
	assert.Equal(t, "hello", g.status())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "explore", StateExplore.String())
	assert.Equal(t, "escaped", StateEscaped.String())
	assert.Equal(t, "unknown", State(9).String())
}
