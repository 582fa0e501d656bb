// Package pathfind finds the start-to-goal route through a generated maze.
package pathfind

import (
	"errors"

	"github.com/samdwyer/mazeband/internal/world"
)

var (
	// ErrNilGrid is returned when no door grid is supplied.
	ErrNilGrid = errors.New("nil door grid")
	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrUnreachableGoal is returned when the open list drains before the goal is reached.
	ErrUnreachableGoal = errors.New("goal unreachable")
)

// Path is an ordered cell sequence from start to goal.
type Path []world.Position

// Steps returns the number of moves along the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether pos lies on the path.
func (p Path) Contains(pos world.Position) bool {
	for _, q := range p {
		if q == pos {
			return true
		}
	}
	return false
}

// Start returns the first cell. The path must not be empty.
func (p Path) Start() world.Position {
	return p[0]
}

// Goal returns the last cell. The path must not be empty.
func (p Path) Goal() world.Position {
	return p[len(p)-1]
}
