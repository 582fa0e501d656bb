package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/mazeband/internal/entity"
)

// ObjectDef describes how a maze role is instantiated and drawn.
type ObjectDef struct {
	Role       entity.Role `json:"role"`       // Role this definition serves
	Name       string      `json:"name"`       // Object name, or prefix for indexed objects
	Definition string      `json:"definition"` // Asset definition path handed to the level
	Glyph      string      `json:"glyph"`      // Single character for terminal rendering
	Color      string      `json:"color"`      // Hex color for terminal rendering
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ObjectDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// IndexedName returns the object name for the i-th instance, e.g. "Wall_12".
func (d *ObjectDef) IndexedName(i int) string {
	return fmt.Sprintf("%s_%d", d.Name, i)
}

// TileSize is the footprint of one ground tile in world units.
type TileSize struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// Layout holds the physical dimensions used to place maze objects.
type Layout struct {
	CellSize   float64  `json:"cellSize"`
	GroundTile TileSize `json:"groundTile"`
}

// Validate checks that every dimension is positive.
func (l Layout) Validate() error {
	if l.CellSize <= 0 || l.GroundTile.Width <= 0 || l.GroundTile.Length <= 0 {
		return fmt.Errorf("invalid layout dimensions: %+v", l)
	}
	return nil
}

// ObjectsFile represents the structure of objects.json.
type ObjectsFile struct {
	Layout  Layout      `json:"layout"`
	Objects []ObjectDef `json:"objects"`
}

// ObjectRegistry resolves maze roles to their definitions.
type ObjectRegistry struct {
	layout Layout
	byRole map[entity.Role]*ObjectDef
	all    []ObjectDef
}

// requiredRoles must all be defined for a maze to be placed.
var requiredRoles = []entity.Role{entity.RolePlayer, entity.RoleGround, entity.RoleWall, entity.RoleHint}

// NewObjectRegistry creates a registry from a loaded objects file.
func NewObjectRegistry(file ObjectsFile) (*ObjectRegistry, error) {
	if err := file.Layout.Validate(); err != nil {
		return nil, err
	}

	registry := &ObjectRegistry{
		layout: file.Layout,
		byRole: make(map[entity.Role]*ObjectDef, len(file.Objects)),
		all:    file.Objects,
	}
	for i := range file.Objects {
		def := &file.Objects[i]
		if _, dup := registry.byRole[def.Role]; dup {
			return nil, fmt.Errorf("duplicate object role %q", def.Role)
		}
		registry.byRole[def.Role] = def
	}
	for _, role := range requiredRoles {
		if registry.byRole[role] == nil {
			return nil, fmt.Errorf("missing object role %q", role)
		}
	}
	return registry, nil
}

// LoadObjectRegistry loads the registry from the embedded objects.json.
func LoadObjectRegistry() (*ObjectRegistry, error) {
	file, err := Load[ObjectsFile]("objects.json")
	if err != nil {
		return nil, err
	}
	if len(file.Objects) == 0 {
		return nil, errors.New("no objects loaded from objects.json")
	}
	return NewObjectRegistry(file)
}

// MustLoadObjectRegistry loads the registry, panicking on error.
func MustLoadObjectRegistry() *ObjectRegistry {
	registry, err := LoadObjectRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Layout returns the placement dimensions.
func (r *ObjectRegistry) Layout() Layout {
	return r.layout
}

// GetByRole returns the definition for a role, or nil if not found.
func (r *ObjectRegistry) GetByRole(role entity.Role) *ObjectDef {
	return r.byRole[role]
}

// Definitions returns every asset definition path.
func (r *ObjectRegistry) Definitions() []string {
	paths := make([]string, 0, len(r.all))
	for _, def := range r.all {
		paths = append(paths, def.Definition)
	}
	return paths
}

// All returns all object definitions.
func (r *ObjectRegistry) All() []ObjectDef {
	return r.all
}
