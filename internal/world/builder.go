package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/telemetry"
)

// Rand is the random source used to pick which wall to break.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Builder carves spanning-tree mazes by merging grid regions.
type Builder struct {
	rng Rand
}

// NewBuilder creates a builder drawing choices from rng.
func NewBuilder(rng Rand) *Builder {
	return &Builder{rng: rng}
}

// Build creates a rows x cols maze whose open doors form a spanning tree:
// rows*cols-1 door pairs, one connected component and no cycles.
func (b *Builder) Build(ctx context.Context, rows, cols int) (*DoorGrid, error) {
	if err := ValidateSize(rows, cols); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.build")
	defer span.End()

	startTime := time.Now()

	grid := NewDoorGrid(rows, cols)
	regions := newRegions(grid)

	candidates := make([]Direction, 0, 4)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cur := Pos(row, col)
			curRegion := regions.find(cur)

			// Any in-bounds neighbour from another region can be joined without a cycle
			candidates = candidates[:0]
			for _, d := range Directions {
				n := cur.Step(d)
				if grid.InBounds(n) && regions.find(n) != curRegion {
					candidates = append(candidates, d)
				}
			}
			if len(candidates) == 0 {
				continue
			}

			d := candidates[b.rng.Intn(len(candidates))]
			grid.Connect(cur, d)
			regions.merge(curRegion, regions.find(cur.Step(d)))
		}
	}

	span.SetAttributes(
		attribute.Int("maze.rows", rows),
		attribute.Int("maze.cols", cols),
		attribute.Int("maze.open_pairs", grid.OpenPairs()),
		attribute.Int("maze.regions", regions.count()),
		attribute.Int64("maze.build_ms", time.Since(startTime).Milliseconds()),
	)

	return grid, nil
}

// regions tracks which cells are already connected while carving.
type regions struct {
	grid    *DoorGrid
	label   []int
	members map[int][]Position
}

func newRegions(grid *DoorGrid) *regions {
	r := &regions{
		grid:    grid,
		label:   make([]int, grid.Cells()),
		members: make(map[int][]Position, grid.Cells()),
	}
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			p := Pos(row, col)
			id := grid.Index(p)
			r.label[id] = id
			r.members[id] = []Position{p}
		}
	}
	return r
}

// find returns the current region label of p.
func (r *regions) find(p Position) int {
	return r.label[r.grid.Index(p)]
}

// merge joins region b into region a. The smaller member list is relabelled,
// so the surviving label may be b's.
func (r *regions) merge(a, b int) {
	if a == b {
		return
	}
	if len(r.members[a]) < len(r.members[b]) {
		a, b = b, a
	}
	for _, p := range r.members[b] {
		r.label[r.grid.Index(p)] = a
	}
	r.members[a] = append(r.members[a], r.members[b]...)
	delete(r.members, b)
}

// count returns the number of live regions.
func (r *regions) count() int {
	return len(r.members)
}
