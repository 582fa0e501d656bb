// Package entity provides the objects placed into a level and the player marker.
package entity

import "github.com/google/uuid"

// Handle identifies an object within a level.
type Handle uuid.UUID

// NilHandle is the zero handle, never assigned to an object.
var NilHandle Handle

// NewHandle returns a fresh random handle.
func NewHandle() Handle {
	return Handle(uuid.New())
}

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool {
	return h == NilHandle
}

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Role classifies what a placed object represents in the maze.
type Role string

const (
	RolePlayer Role = "player"
	RoleGround Role = "ground"
	RoleWall   Role = "wall"
	RoleHint   Role = "hint"
)

// Well-known labels.
const (
	// LabelEssential marks objects that survive maze regeneration.
	LabelEssential = "essential"
	// LabelMaze marks objects created by maze generation.
	LabelMaze = "maze"
)

// Object is a named instance of an asset definition with a world transform.
type Object struct {
	Handle     Handle
	Name       string
	Role       Role
	Definition string // asset definition path
	Position   Vec3
	Rotation   Quat
	labels     []string
}

// NewObject creates an object with an identity rotation.
func NewObject(h Handle, role Role, name, definition string) *Object {
	return &Object{
		Handle:     h,
		Name:       name,
		Role:       role,
		Definition: definition,
		Rotation:   IdentityQuat,
	}
}

// AddLabel attaches a label. Duplicates are ignored.
func (o *Object) AddLabel(label string) {
	if o.HasLabel(label) {
		return
	}
	o.labels = append(o.labels, label)
}

// AddLabels attaches several labels.
func (o *Object) AddLabels(labels ...string) {
	for _, l := range labels {
		o.AddLabel(l)
	}
}

// DeleteLabel removes a label, returning false if it was not present.
func (o *Object) DeleteLabel(label string) bool {
	for i, l := range o.labels {
		if l == label {
			o.labels = append(o.labels[:i], o.labels[i+1:]...)
			return true
		}
	}
	return false
}

// HasLabel reports whether the object carries label.
func (o *Object) HasLabel(label string) bool {
	for _, l := range o.labels {
		if l == label {
			return true
		}
	}
	return false
}

// Labels returns the attached labels in insertion order.
func (o *Object) Labels() []string {
	return o.labels
}
