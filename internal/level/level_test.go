package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeband/internal/entity"
)

func TestCreateAndRemove(t *testing.T) {
	l := New()

	a, err := l.CreateObject(entity.RoleWall, "Wall_0", "wall.json")
	require.NoError(t, err)
	b, err := l.CreateObject(entity.RoleHint, "Hint_0", "label.json")
	require.NoError(t, err)
	_, err = l.CreateObject(entity.RoleWall, "Wall_1", "wall.json")
	require.NoError(t, err)

	assert.Equal(t, 3, l.Count())
	names := []string{}
	for _, o := range l.Objects() {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"Wall_0", "Hint_0", "Wall_1"}, names)
	assert.Len(t, l.ObjectsByRole(entity.RoleWall), 2)

	l.RemoveObject(b)
	l.RemoveObject(b) // no-op
	assert.Equal(t, 2, l.Count())
	_, ok := l.Object(b)
	assert.False(t, ok)

	o, ok := l.Object(a)
	require.True(t, ok)
	assert.Equal(t, entity.RoleWall, o.Role)
	assert.Equal(t, "Wall_1", l.Objects()[1].Name)
}

func TestCreateValidation(t *testing.T) {
	l := New(WithDefinitions("player.json"))

	_, err := l.CreateObject(entity.RolePlayer, "", "player.json")
	assert.ErrorIs(t, err, ErrInvalidObject)

	_, err = l.CreateObject(entity.RoleWall, "Wall_0", "missing.json")
	assert.ErrorIs(t, err, ErrDefinitionNotFound)

	_, err = l.CreateObject(entity.RolePlayer, "Player", "player.json")
	assert.NoError(t, err)
	assert.Equal(t, 1, l.Count())
}

func TestTransformsAndActiveCharacter(t *testing.T) {
	l := New()
	h, err := l.CreateObject(entity.RolePlayer, "Player", "player.json")
	require.NoError(t, err)

	require.NoError(t, l.SetPosition(h, entity.Vec3{X: 1, Y: 2}))
	q := entity.QuatFromAxisAngle(entity.AxisZ, 90)
	require.NoError(t, l.SetRotation(h, q))

	o, _ := l.Object(h)
	assert.Equal(t, entity.Vec3{X: 1, Y: 2}, o.Position)
	assert.Equal(t, q, o.Rotation)

	assert.Nil(t, l.ActiveCharacter())
	require.NoError(t, l.SetActiveCharacter(h))
	assert.Equal(t, o, l.ActiveCharacter())

	missing := entity.NewHandle()
	assert.ErrorIs(t, l.SetPosition(missing, entity.Vec3{}), ErrObjectNotFound)
	assert.ErrorIs(t, l.SetRotation(missing, entity.IdentityQuat), ErrObjectNotFound)
	assert.ErrorIs(t, l.SetActiveCharacter(missing), ErrObjectNotFound)

	l.RemoveObject(h)
	assert.Nil(t, l.ActiveCharacter())
}
