package game

import "github.com/samdwyer/mazeband/internal/entity"

// Level is the object table the maze is placed into.
// *level.Level implements it.
type Level interface {
	CreateObject(role entity.Role, name, definition string) (entity.Handle, error)
	RemoveObject(h entity.Handle)
	Object(h entity.Handle) (*entity.Object, bool)
	Objects() []*entity.Object
	SetPosition(h entity.Handle, p entity.Vec3) error
	SetRotation(h entity.Handle, q entity.Quat) error
	SetActiveCharacter(h entity.Handle) error
}
