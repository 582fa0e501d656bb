package pathfind

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

// node is an open-list entry.
type node struct {
	pos  world.Position
	g    int // moves from start
	h    int // Manhattan distance to goal
	cost int // g + h
}

func newNode(pos world.Position, g, h int) node {
	return node{pos: pos, g: g, h: h, cost: g + h}
}

// before orders nodes by cost, then row, then column.
func before(a, b node) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.pos.Less(b.pos)
}

// record is the best known way to reach a cell.
type record struct {
	parent world.Position
	g      int
	h      int
	cost   int
}

// Solver runs a best-first search over a door grid with unit move cost.
//
// A cell that is already queued is never pushed again: a shorter route found
// later only rewrites its parent record and does not reorder the queue.
// On the spanning-tree mazes produced by world.Builder each cell has a
// single route, so the result is the unique path.
type Solver struct{}

// NewSolver creates a solver.
func NewSolver() *Solver {
	return &Solver{}
}

// Solve returns the path from start to goal through open doors.
func (s *Solver) Solve(ctx context.Context, grid *world.DoorGrid, start, goal world.Position) (Path, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, grid.Rows, grid.Cols)
	}
	if !grid.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v in %dx%d grid", ErrOutOfBounds, goal, grid.Rows, grid.Cols)
	}

	tracer := telemetry.Tracer("pathfind")
	_, span := tracer.Start(ctx, "maze.solve")
	defer span.End()

	res := s.search(grid, start, goal)

	span.SetAttributes(
		attribute.Int("maze.nodes_popped", res.popped),
		attribute.Int("maze.nodes_closed", res.closed),
		attribute.Int("maze.relaxed", res.relaxed),
	)

	if !res.found {
		span.SetStatus(codes.Error, "goal unreachable")
		return nil, fmt.Errorf("%w: %v to %v", ErrUnreachableGoal, start, goal)
	}

	path, err := reconstruct(res.parents, start, goal, grid.Cells())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("maze.path_length", len(path)))
	return path, nil
}

// searchResult is the state left behind by one search.
type searchResult struct {
	parents map[world.Position]record
	found   bool
	popped  int
	closed  int
	relaxed int // parent records rewritten by a shorter route
}

// search expands cells until goal is popped or the open list runs dry.
// start and goal must be in bounds.
func (s *Solver) search(grid *world.DoorGrid, start, goal world.Position) searchResult {
	open := heap.New[node](before)
	openSeen := make([]bool, grid.Cells())
	closed := mapset.New[world.Position]()
	res := searchResult{parents: make(map[world.Position]record)}

	open.Push(newNode(start, 0, start.Manhattan(goal)))
	openSeen[grid.Index(start)] = true

	for open.Size() > 0 {
		cur, _ := open.Pop()
		res.popped++
		if closed.Has(cur.pos) {
			// Leftover duplicate
			continue
		}
		closed.Put(cur.pos)
		if cur.pos == goal {
			res.found = true
			break
		}

		for _, d := range world.Directions {
			if !grid.IsOpen(cur.pos, d) {
				continue
			}
			next := cur.pos.Step(d)
			if !grid.InBounds(next) || closed.Has(next) {
				continue
			}

			g := cur.g + 1
			if !openSeen[grid.Index(next)] {
				h := next.Manhattan(goal)
				res.parents[next] = record{parent: cur.pos, g: g, h: h, cost: g + h}
				open.Push(newNode(next, g, h))
				openSeen[grid.Index(next)] = true
				continue
			}

			// Already queued: rewrite the record in place, no second push
			if rec := res.parents[next]; g < rec.g {
				rec.parent = cur.pos
				rec.g = g
				rec.cost = g + rec.h
				res.parents[next] = rec
				res.relaxed++
			}
		}
	}

	res.closed = closed.Size()
	return res
}

// reconstruct walks parent records back from goal and returns the path in
// start-to-goal order.
func reconstruct(parents map[world.Position]record, start, goal world.Position, limit int) (Path, error) {
	path := Path{goal}
	for cur := goal; cur != start; {
		rec, ok := parents[cur]
		if !ok || len(path) > limit {
			return nil, fmt.Errorf("%w: broken parent chain at %v", ErrUnreachableGoal, cur)
		}
		cur = rec.parent
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
