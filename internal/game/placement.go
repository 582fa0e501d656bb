package game

import (
	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/pathfind"
	"github.com/samdwyer/mazeband/internal/world"
)

// Placement is one object creation request for the level.
type Placement struct {
	Role       entity.Role
	Index      int
	Name       string
	Definition string
	Position   entity.Vec3
	Rotation   entity.Quat
}

// planner converts grid-space maze results into world-space placements.
// World X runs along rows and world Y along columns, centred on the maze.
type planner struct {
	objects *gamedata.ObjectRegistry
	layout  gamedata.Layout
	rows    int
	cols    int
}

func newPlanner(objects *gamedata.ObjectRegistry, rows, cols int) *planner {
	return &planner{
		objects: objects,
		layout:  objects.Layout(),
		rows:    rows,
		cols:    cols,
	}
}

// plan returns placements in emission order: player, ground, hints, walls.
func (p *planner) plan(doors *world.DoorGrid, path pathfind.Path) []Placement {
	walls := p.wallNumbers(doors)
	tilesW, tilesL := p.groundTiles()

	out := make([]Placement, 0, 1+tilesW*tilesL+len(path)+len(walls))
	out = append(out, p.player())
	for i := 0; i < tilesW*tilesL; i++ {
		out = append(out, p.ground(i, tilesW, tilesL))
	}
	for i, cell := range path {
		out = append(out, p.hint(i, cell))
	}
	for _, n := range walls {
		out = append(out, p.wall(n))
	}
	return out
}

func (p *planner) placement(role entity.Role, index int, named bool) Placement {
	def := p.objects.GetByRole(role)
	name := def.Name
	if named {
		name = def.IndexedName(index)
	}
	return Placement{
		Role:       role,
		Index:      index,
		Name:       name,
		Definition: def.Definition,
		Rotation:   entity.IdentityQuat,
	}
}

// origin is the world position of cell (0,0), where the player starts.
func (p *planner) origin() entity.Vec3 {
	s := p.layout.CellSize
	return entity.Vec3{
		X: -s - s*float64(p.rows-1)/2 + s/2,
		Y: -s * float64(p.cols-1) / 2,
	}
}

// cellCenter returns the world position of a grid cell.
func (p *planner) cellCenter(cell world.Position) entity.Vec3 {
	s := p.layout.CellSize
	return p.origin().Add(entity.Vec3{X: s * float64(cell.Row), Y: s * float64(cell.Col)})
}

func (p *planner) player() Placement {
	pl := p.placement(entity.RolePlayer, 0, false)
	pl.Position = p.origin()
	return pl
}

func (p *planner) hint(i int, cell world.Position) Placement {
	pl := p.placement(entity.RoleHint, i, true)
	pl.Position = p.cellCenter(cell)
	return pl
}

// groundTiles returns how many tiles cover the maze along X and Y.
func (p *planner) groundTiles() (int, int) {
	width := float64(p.rows) * p.layout.CellSize
	length := float64(p.cols) * p.layout.CellSize
	return int(width/p.layout.GroundTile.Width) + 1, int(length/p.layout.GroundTile.Length) + 1
}

// ground centres a tilesW x tilesL carpet of tiles over the maze.
func (p *planner) ground(i, tilesW, tilesL int) Placement {
	s := p.layout.CellSize
	tw, tl := p.layout.GroundTile.Width, p.layout.GroundTile.Length
	width := float64(p.rows) * s
	length := float64(p.cols) * s

	wi := i % tilesW
	li := i / tilesW
	cornerX := -s - s*float64(p.rows-1)/2
	cornerY := -s*float64(p.cols-1)/2 - s/2

	pl := p.placement(entity.RoleGround, i, true)
	pl.Position = entity.Vec3{
		X: cornerX + tw/2 + tw*float64(wi) - (float64(tilesW)*tw-width)/2,
		Y: cornerY + tl/2 + tl*float64(li) - (float64(tilesL)*tl-length)/2,
	}
	return pl
}

// wallNumbers lists the walls to build, numbered on a lattice 2*cols+1 wide:
// slots [0, cols) of a lattice row hold the horizontal wall above each cell,
// slots [cols, 2*cols] the vertical wall left of each cell plus the right edge.
// Lattice row == rows holds the bottom edge.
func (p *planner) wallNumbers(doors *world.DoorGrid) []int {
	stride := 2*p.cols + 1
	var walls []int
	for i := 0; i < p.rows; i++ {
		for j := 0; j < p.cols; j++ {
			cell := world.Pos(i, j)
			if !doors.IsOpen(cell, world.Up) {
				walls = append(walls, i*stride+j)
			}
			if !doors.IsOpen(cell, world.Left) {
				walls = append(walls, i*stride+j+p.cols)
			}
			if j == p.cols-1 {
				walls = append(walls, i*stride+j+p.cols+1)
			}
			if i == p.rows-1 {
				walls = append(walls, i*stride+j+stride)
			}
		}
	}
	return walls
}

// wall places wall number n; vertical walls are turned 90 degrees about Z.
func (p *planner) wall(n int) Placement {
	s := p.layout.CellSize
	stride := 2*p.cols + 1
	row := n / stride
	col := n % stride

	pl := p.placement(entity.RoleWall, n, true)
	if col < p.cols {
		pl.Position = entity.Vec3{
			X: -s - s*float64(p.rows-1)/2 + float64(row)*s,
			Y: -s*float64(p.cols-1)/2 + float64(col)*s,
		}
		return pl
	}

	col -= p.cols
	pl.Position = entity.Vec3{
		X: -s/2 - s*float64(p.rows-1)/2 + float64(row)*s,
		Y: -s/2 - s*float64(p.cols-1)/2 + float64(col)*s,
	}
	pl.Rotation = entity.QuatFromAxisAngle(entity.AxisZ, 90)
	return pl
}
