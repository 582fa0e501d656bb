// Package game drives maze generation and the interactive maze viewer.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the player walks the maze.
	StateExplore State = iota
	// StateEscaped is entered once the player reaches the exit cell.
	StateEscaped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}
