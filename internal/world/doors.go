package world

import "strings"

// Doors holds the open state of a cell's four doors, indexed by Direction.
type Doors [4]bool

// Open reports whether the door in direction d is open.
func (d Doors) Open(dir Direction) bool {
	return d[dir]
}

// Count returns the number of open doors.
func (d Doors) Count() int {
	n := 0
	for _, open := range d {
		if open {
			n++
		}
	}
	return n
}

// DoorGrid is the per-cell door mask of a rows x cols maze.
// Doors are always opened in pairs, so the mask stays symmetric.
type DoorGrid struct {
	Rows  int
	Cols  int
	cells []Doors
}

// NewDoorGrid creates a grid with every door closed. A negative dimension
// is treated as zero, giving a grid with no cells.
func NewDoorGrid(rows, cols int) *DoorGrid {
	rows, cols = max(rows, 0), max(cols, 0)
	return &DoorGrid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]Doors, rows*cols),
	}
}

// InBounds returns true if the position lies inside the grid.
func (g *DoorGrid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Index returns the row-major cell index of p, or -1 when p is out of bounds.
func (g *DoorGrid) Index(p Position) int {
	if !g.InBounds(p) {
		return -1
	}
	return p.Row*g.Cols + p.Col
}

// Cells returns rows*cols.
func (g *DoorGrid) Cells() int {
	return len(g.cells)
}

// At returns the door mask of the cell, or all-closed when out of bounds.
func (g *DoorGrid) At(p Position) Doors {
	if !g.InBounds(p) {
		return Doors{}
	}
	return g.cells[g.Index(p)]
}

// IsOpen reports whether the door from p in direction d is open.
func (g *DoorGrid) IsOpen(p Position, d Direction) bool {
	return g.At(p).Open(d)
}

// Connect opens the door between p and its neighbour in direction d,
// and the matching door on the neighbour. It returns false if either
// cell is out of bounds.
func (g *DoorGrid) Connect(p Position, d Direction) bool {
	n := p.Step(d)
	if !g.InBounds(p) || !g.InBounds(n) {
		return false
	}
	g.cells[g.Index(p)][d] = true
	g.cells[g.Index(n)][d.Opposite()] = true
	return true
}

// OpenPairs counts open doors, each shared door counted once.
func (g *DoorGrid) OpenPairs() int {
	n := 0
	for _, c := range g.cells {
		n += c.Count()
	}
	return n / 2
}

// Bytes packs the mask one byte per cell, bit d set when door d is open.
func (g *DoorGrid) Bytes() []byte {
	out := make([]byte, len(g.cells))
	for i, c := range g.cells {
		for d, open := range c {
			if open {
				out[i] |= 1 << d
			}
		}
	}
	return out
}

// Draw renders the maze as ASCII art. Cells listed in marks are drawn with
// the given rune.
func (g *DoorGrid) Draw(marks map[Position]rune) string {
	var sb strings.Builder
	for row := 0; row < g.Rows; row++ {
		// Wall line above this row
		for col := 0; col < g.Cols; col++ {
			sb.WriteByte('+')
			if g.IsOpen(Pos(row, col), Up) {
				sb.WriteString("   ")
			} else {
				sb.WriteString("---")
			}
		}
		sb.WriteString("+\n")

		for col := 0; col < g.Cols; col++ {
			p := Pos(row, col)
			if g.IsOpen(p, Left) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
			sb.WriteByte(' ')
			if r, ok := marks[p]; ok {
				sb.WriteRune(r)
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	for col := 0; col < g.Cols; col++ {
		sb.WriteString("+---")
	}
	sb.WriteString("+\n")
	return sb.String()
}
