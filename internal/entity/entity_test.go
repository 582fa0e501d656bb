package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/mazeband/internal/world"
)

func TestObjectLabels(t *testing.T) {
	o := NewObject(NewHandle(), RoleWall, "Wall_0", "wall.object.json")
	assert.Equal(t, IdentityQuat, o.Rotation)

	o.AddLabel(LabelMaze)
	o.AddLabels("north", LabelMaze, "outer")
	assert.Equal(t, []string{LabelMaze, "north", "outer"}, o.Labels())
	assert.True(t, o.HasLabel("north"))

	assert.True(t, o.DeleteLabel("north"))
	assert.False(t, o.DeleteLabel("north"))
	assert.Equal(t, []string{LabelMaze, "outer"}, o.Labels())
}

func TestHandle(t *testing.T) {
	assert.True(t, NilHandle.IsNil())
	h := NewHandle()
	assert.False(t, h.IsNil())
	assert.NotEqual(t, h, NewHandle())
	assert.Len(t, h.String(), 36)
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(AxisZ, 90)
	assert.InDelta(t, math.Sqrt2/2, q.W, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, q.Z, 1e-12)
	assert.Zero(t, q.X)
	assert.Zero(t, q.Y)

	assert.Equal(t, IdentityQuat, QuatFromAxisAngle(AxisZ, 0))
}

func TestPlayerTryMove(t *testing.T) {
	doors := world.NewDoorGrid(2, 2)
	doors.Connect(world.Pos(0, 0), world.Right)

	p := NewPlayer(world.Pos(0, 0))
	assert.False(t, p.TryMove(doors, world.Down))
	assert.True(t, p.TryMove(doors, world.Right))
	assert.Equal(t, world.Pos(0, 1), p.Pos)
	assert.False(t, p.TryMove(doors, world.Right), "grid edge")
	assert.Equal(t, 1, p.Moves)
	assert.False(t, p.TryMove(nil, world.Left))
}
