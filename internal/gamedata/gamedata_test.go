package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/entity"
)

func TestLoadObjectRegistry(t *testing.T) {
	registry, err := LoadObjectRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if len(registry.All()) != 4 {
		t.Errorf("Expected 4 object definitions, got %d", len(registry.All()))
	}

	wall := registry.GetByRole(entity.RoleWall)
	if wall == nil {
		t.Fatal("Wall definition not found by role")
	}
	if wall.Definition != "asset/objects/environment/wall/wall.object.json" {
		t.Errorf("Unexpected wall definition %q", wall.Definition)
	}
	if wall.IndexedName(12) != "Wall_12" {
		t.Errorf("Expected Wall_12, got %q", wall.IndexedName(12))
	}

	layout := registry.Layout()
	if layout.CellSize != 10 {
		t.Errorf("Expected cell size 10, got %v", layout.CellSize)
	}
	if layout.GroundTile.Width != 87.1536 || layout.GroundTile.Length != 49.7335 {
		t.Errorf("Unexpected ground tile %+v", layout.GroundTile)
	}

	if len(registry.Definitions()) != 4 {
		t.Errorf("Expected 4 definition paths, got %d", len(registry.Definitions()))
	}
}

func TestNewObjectRegistryValidation(t *testing.T) {
	layout := Layout{CellSize: 10, GroundTile: TileSize{Width: 1, Length: 1}}
	full := []ObjectDef{
		{Role: entity.RolePlayer, Name: "Player", Definition: "p"},
		{Role: entity.RoleGround, Name: "Ground", Definition: "g"},
		{Role: entity.RoleWall, Name: "Wall", Definition: "w"},
		{Role: entity.RoleHint, Name: "Hint", Definition: "h"},
	}

	tests := []struct {
		name  string
		file  ObjectsFile
		valid bool
	}{
		{"complete", ObjectsFile{Layout: layout, Objects: full}, true},
		{"missing hint", ObjectsFile{Layout: layout, Objects: full[:3]}, false},
		{"duplicate role", ObjectsFile{Layout: layout, Objects: append(append([]ObjectDef{}, full...), full[0])}, false},
		{"zero cell size", ObjectsFile{Layout: Layout{GroundTile: layout.GroundTile}, Objects: full}, false},
	}

	for _, tt := range tests {
		_, err := NewObjectRegistry(tt.file)
		if tt.valid && err != nil {
			t.Errorf("%s: expected valid registry, got %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestDecodeRejectsBadJSON(t *testing.T) {
	if _, err := decode[ObjectsFile]("broken.json", []byte(`{"layout":`)); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00d7af", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GG0000", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c, _ := ParseHexColor("#FF0000")
	if c != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected pure red, got %v", c)
	}
}

func TestObjectDefMethods(t *testing.T) {
	def := ObjectDef{Role: entity.RoleHint, Name: "Hint", Glyph: "*", Color: "#00D7AF"}

	if def.GlyphRune() != '*' {
		t.Errorf("Expected glyph '*', got %c", def.GlyphRune())
	}
	if def.Style() == tcell.StyleDefault {
		t.Error("Style should carry the parsed color")
	}

	empty := ObjectDef{Color: "nope"}
	if empty.GlyphRune() != '?' {
		t.Errorf("Expected fallback glyph, got %c", empty.GlyphRune())
	}
	if empty.Style() != tcell.StyleDefault {
		t.Error("Unparseable color should fall back to the default style")
	}
}
