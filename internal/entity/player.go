package entity

import "github.com/samdwyer/mazeband/internal/world"

// Player is the controllable marker walking the maze in grid space.
type Player struct {
	Pos    world.Position // Current cell
	Symbol rune           // Display symbol
	Moves  int            // Steps taken since placement
}

// NewPlayer creates a player at the given cell.
func NewPlayer(pos world.Position) *Player {
	return &Player{
		Pos:    pos,
		Symbol: '@',
	}
}

// TryMove steps through the door in direction d if it is open.
// It returns false when the way is blocked.
func (p *Player) TryMove(doors *world.DoorGrid, d world.Direction) bool {
	if doors == nil || !doors.IsOpen(p.Pos, d) {
		return false
	}
	p.Pos = p.Pos.Step(d)
	p.Moves++
	return true
}
