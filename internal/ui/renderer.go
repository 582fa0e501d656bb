package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/pathfind"
	"github.com/samdwyer/mazeband/internal/world"
)

// Frame is everything drawn in one render pass.
type Frame struct {
	Doors    *world.DoorGrid
	Path     pathfind.Path
	Player   *entity.Player
	Goal     world.Position
	ShowPath bool
	Status   string
}

// Renderer handles drawing the maze to the screen.
// Cell (row, col) is drawn at screen (2*col+1, 2*row+1); walls sit on the even lines.
type Renderer struct {
	screen  *Screen
	objects *gamedata.ObjectRegistry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, objects *gamedata.ObjectRegistry) *Renderer {
	return &Renderer{screen: screen, objects: objects}
}

// Render draws the maze, the hint overlay and the player.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	if f.Doors == nil {
		r.screen.Show()
		return
	}

	wall := r.objects.GetByRole(entity.RoleWall)
	ground := r.objects.GetByRole(entity.RoleGround)
	hint := r.objects.GetByRole(entity.RoleHint)

	wallRune, wallStyle := wall.GlyphRune(), wall.Style()
	d := f.Doors

	// Corner posts and the outer frame
	for y := 0; y <= 2*d.Rows; y += 2 {
		for x := 0; x <= 2*d.Cols; x += 2 {
			r.screen.SetContent(x, y, wallRune, wallStyle)
		}
	}

	for row := 0; row < d.Rows; row++ {
		for col := 0; col < d.Cols; col++ {
			p := world.Pos(row, col)
			x, y := 2*col+1, 2*row+1

			r.screen.SetContent(x, y, ground.GlyphRune(), ground.Style())
			if !d.IsOpen(p, world.Up) {
				r.screen.SetContent(x, y-1, wallRune, wallStyle)
			}
			if !d.IsOpen(p, world.Left) {
				r.screen.SetContent(x-1, y, wallRune, wallStyle)
			}
			if col == d.Cols-1 {
				r.screen.SetContent(x+1, y, wallRune, wallStyle)
			}
			if row == d.Rows-1 {
				r.screen.SetContent(x, y+1, wallRune, wallStyle)
			}
		}
	}

	if f.ShowPath {
		for _, p := range f.Path {
			r.screen.SetContent(2*p.Col+1, 2*p.Row+1, hint.GlyphRune(), hint.Style())
		}
	}

	goalStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	r.screen.SetContent(2*f.Goal.Col+1, 2*f.Goal.Row+1, 'E', goalStyle)

	if f.Player != nil {
		player := r.objects.GetByRole(entity.RolePlayer)
		r.screen.SetContent(2*f.Player.Pos.Col+1, 2*f.Player.Pos.Row+1, f.Player.Symbol, player.Style().Bold(true))
	}

	r.RenderMessage(f.Status, 2*d.Rows+2)
	r.screen.Show()
}

// RenderMessage displays a message on the given line.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
