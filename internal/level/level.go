// Package level provides an in-memory object table standing in for a game level.
package level

import (
	"errors"
	"fmt"

	"github.com/samdwyer/mazeband/internal/entity"
)

var (
	// ErrDefinitionNotFound is returned when an object's asset definition is unknown.
	ErrDefinitionNotFound = errors.New("object definition not found")
	// ErrObjectNotFound is returned for handles not present in the level.
	ErrObjectNotFound = errors.New("object not found")
	// ErrInvalidObject is returned when an object request is missing required fields.
	ErrInvalidObject = errors.New("invalid object")
)

// Level holds every object currently placed, keyed by handle.
type Level struct {
	objects     map[entity.Handle]*entity.Object
	order       []entity.Handle
	definitions map[string]bool // nil accepts any definition
	active      entity.Handle
}

// Option configures a Level.
type Option func(*Level)

// WithDefinitions restricts CreateObject to the given definition paths.
func WithDefinitions(paths ...string) Option {
	return func(l *Level) {
		l.definitions = make(map[string]bool, len(paths))
		for _, p := range paths {
			l.definitions[p] = true
		}
	}
}

// New creates an empty level.
func New(opts ...Option) *Level {
	l := &Level{
		objects: make(map[entity.Handle]*entity.Object),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateObject instantiates a definition and returns its handle.
func (l *Level) CreateObject(role entity.Role, name, definition string) (entity.Handle, error) {
	if name == "" || definition == "" {
		return entity.NilHandle, fmt.Errorf("%w: name %q, definition %q", ErrInvalidObject, name, definition)
	}
	if l.definitions != nil && !l.definitions[definition] {
		return entity.NilHandle, fmt.Errorf("loading object %s: %w: %s", name, ErrDefinitionNotFound, definition)
	}

	h := entity.NewHandle()
	l.objects[h] = entity.NewObject(h, role, name, definition)
	l.order = append(l.order, h)
	return h, nil
}

// RemoveObject deletes an object. Unknown handles are ignored.
func (l *Level) RemoveObject(h entity.Handle) {
	if _, ok := l.objects[h]; !ok {
		return
	}
	delete(l.objects, h)
	for i, o := range l.order {
		if o == h {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	if l.active == h {
		l.active = entity.NilHandle
	}
}

// Object returns the object for a handle.
func (l *Level) Object(h entity.Handle) (*entity.Object, bool) {
	o, ok := l.objects[h]
	return o, ok
}

// Objects returns every object in creation order.
func (l *Level) Objects() []*entity.Object {
	out := make([]*entity.Object, 0, len(l.order))
	for _, h := range l.order {
		out = append(out, l.objects[h])
	}
	return out
}

// ObjectsByRole returns the objects with the given role in creation order.
func (l *Level) ObjectsByRole(role entity.Role) []*entity.Object {
	var out []*entity.Object
	for _, h := range l.order {
		if o := l.objects[h]; o.Role == role {
			out = append(out, o)
		}
	}
	return out
}

// Count returns the number of objects.
func (l *Level) Count() int {
	return len(l.objects)
}

// SetPosition moves an object.
func (l *Level) SetPosition(h entity.Handle, p entity.Vec3) error {
	o, ok := l.objects[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, h)
	}
	o.Position = p
	return nil
}

// SetRotation rotates an object.
func (l *Level) SetRotation(h entity.Handle, q entity.Quat) error {
	o, ok := l.objects[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, h)
	}
	o.Rotation = q
	return nil
}

// SetActiveCharacter marks the object the player controls.
func (l *Level) SetActiveCharacter(h entity.Handle) error {
	if _, ok := l.objects[h]; !ok {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, h)
	}
	l.active = h
	return nil
}

// ActiveCharacter returns the controlled object, or nil if none is set.
func (l *Level) ActiveCharacter() *entity.Object {
	if l.active.IsNil() {
		return nil
	}
	return l.objects[l.active]
}
