package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/pathfind"
	"github.com/samdwyer/mazeband/internal/world"
)

func runeAt(t *testing.T, sim tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := sim.GetContents()
	runes := cells[y*w+x].Runes
	if len(runes) == 0 {
		return ' '
	}
	return runes[0]
}

func TestRenderMaze(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	screen, err := newScreen(sim)
	require.NoError(t, err)
	defer screen.Close()
	sim.SetSize(20, 10)

	// 1x2 corridor
	doors := world.NewDoorGrid(1, 2)
	doors.Connect(world.Pos(0, 0), world.Right)

	r := NewRenderer(screen, gamedata.MustLoadObjectRegistry())
	r.Render(Frame{
		Doors:    doors,
		Path:     pathfind.Path{world.Pos(0, 0), world.Pos(0, 1)},
		Player:   entity.NewPlayer(world.Pos(0, 0)),
		Goal:     world.Pos(0, 1),
		ShowPath: true,
		Status:   "hi",
	})

	assert.Equal(t, '#', runeAt(t, sim, 0, 1), "left edge")
	assert.Equal(t, '@', runeAt(t, sim, 1, 1), "player")
	assert.Equal(t, ' ', runeAt(t, sim, 2, 1), "open door")
	assert.Equal(t, 'E', runeAt(t, sim, 3, 1), "exit")
	assert.Equal(t, '#', runeAt(t, sim, 4, 1), "right edge")
	assert.Equal(t, '#', runeAt(t, sim, 1, 0), "top edge")
	assert.Equal(t, '#', runeAt(t, sim, 3, 2), "bottom edge")
	assert.Equal(t, 'h', runeAt(t, sim, 0, 4), "status line")
}
