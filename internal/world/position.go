// Package world provides maze topology generation and grid-space types.
package world

import "fmt"

// Direction identifies one of the four doors of a maze cell.
type Direction int

const (
	// Up points toward row-1.
	Up Direction = iota
	// Right points toward col+1.
	Right
	// Down points toward row+1.
	Down
	// Left points toward col-1.
	Left
)

// Directions lists every direction in door index order.
var Directions = [4]Direction{Up, Right, Down, Left}

var offsets = [4]Position{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Offset returns the grid delta for moving one cell in this direction.
func (d Direction) Offset() Position {
	return offsets[d]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Position is a cell coordinate in grid space.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the component-wise sum.
func (p Position) Add(o Position) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Step returns the neighbouring position in the given direction.
func (p Position) Step(d Direction) Position {
	return p.Add(d.Offset())
}

// Compare orders positions by row, then by column.
// It returns -1, 0 or +1.
func (p Position) Compare(o Position) int {
	switch {
	case p.Row < o.Row:
		return -1
	case p.Row > o.Row:
		return 1
	case p.Col < o.Col:
		return -1
	case p.Col > o.Col:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before o.
func (p Position) Less(o Position) bool {
	return p.Compare(o) < 0
}

// Manhattan returns the 4-connected grid distance between p and o.
func (p Position) Manhattan(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
