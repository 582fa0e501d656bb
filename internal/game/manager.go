package game

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/pathfind"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

// Generation is the result of one MazeManager.Generate call.
type Generation struct {
	Doors      *world.DoorGrid
	Path       pathfind.Path
	Placements []Placement
	Created    int // placements the level accepted
	Failed     int // placements skipped after a level error
}

// Start returns the cell the player starts in.
func (g *Generation) Start() world.Position {
	return world.Pos(0, 0)
}

// Goal returns the exit cell.
func (g *Generation) Goal() world.Position {
	return world.Pos(g.Doors.Rows-1, g.Doors.Cols-1)
}

// MazeManager builds a maze, solves it and places the result into a level.
type MazeManager struct {
	rows, cols int

	builder *world.Builder
	solver  *pathfind.Solver
	objects *gamedata.ObjectRegistry
	logger  *slog.Logger

	doors *world.DoorGrid
	path  pathfind.Path
}

// NewMazeManager creates a manager drawing maze choices from rng.
// The size must be set with SetSize before generating.
func NewMazeManager(rng world.Rand, objects *gamedata.ObjectRegistry, logger *slog.Logger) *MazeManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &MazeManager{
		builder: world.NewBuilder(rng),
		solver:  pathfind.NewSolver(),
		objects: objects,
		logger:  logger,
	}
}

// SetSize sets the maze dimensions used by the next Generate.
func (m *MazeManager) SetSize(rows, cols int) {
	m.rows = rows
	m.cols = cols
}

// Size returns the configured dimensions.
func (m *MazeManager) Size() (rows, cols int) {
	return m.rows, m.cols
}

// Doors returns the door grid of the last successful generation.
func (m *MazeManager) Doors() *world.DoorGrid {
	return m.doors
}

// Path returns the solved path of the last successful generation.
func (m *MazeManager) Path() pathfind.Path {
	return m.path
}

// Generate replaces the maze in lvl with a freshly built one.
//
// Configuration, build and solve errors are returned before the level is
// touched. Once placement starts, objects the level refuses are logged and
// skipped, so the level may end up partially populated.
func (m *MazeManager) Generate(ctx context.Context, lvl Level) (*Generation, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()
	ticker := telemetry.NewTicker()

	gen, err := m.generate(ctx, lvl, ticker)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		telemetry.GenerationsTotal.WithLabelValues(telemetry.ResultError).Inc()
		m.logger.Error("maze generation failed", "rows", m.rows, "cols", m.cols, "error", err)
		return nil, err
	}

	elapsed := time.Since(startTime)
	telemetry.GenerationsTotal.WithLabelValues(telemetry.ResultOK).Inc()
	telemetry.GenerationDuration.Observe(elapsed.Seconds())
	telemetry.PathLength.Observe(float64(len(gen.Path)))

	span.SetAttributes(
		attribute.Int("maze.rows", m.rows),
		attribute.Int("maze.cols", m.cols),
		attribute.Int("maze.path_length", len(gen.Path)),
		attribute.Int("maze.placements", len(gen.Placements)),
		attribute.Int("maze.created", gen.Created),
		attribute.Int("maze.failed", gen.Failed),
		attribute.Int64("maze.generation_ms", elapsed.Milliseconds()),
	)
	m.logger.Info("maze generated",
		"rows", m.rows,
		"cols", m.cols,
		"path_length", len(gen.Path),
		"created", gen.Created,
		"failed", gen.Failed,
		"avg_step", ticker.Average(),
	)

	return gen, nil
}

func (m *MazeManager) generate(ctx context.Context, lvl Level, ticker *telemetry.Ticker) (*Generation, error) {
	if err := world.ValidateSize(m.rows, m.cols); err != nil {
		return nil, err
	}

	doors, err := m.builder.Build(ctx, m.rows, m.cols)
	if err != nil {
		return nil, err
	}
	ticker.Tick()

	path, err := m.solver.Solve(ctx, doors, world.Pos(0, 0), world.Pos(m.rows-1, m.cols-1))
	if err != nil {
		return nil, err
	}
	ticker.Tick()

	removed := m.clear(lvl)
	ticker.Tick()

	gen := &Generation{
		Doors:      doors,
		Path:       path,
		Placements: newPlanner(m.objects, m.rows, m.cols).plan(doors, path),
	}
	m.emit(lvl, gen)
	ticker.Tick()

	m.doors = doors
	m.path = path

	m.logger.Debug("maze placed", "removed", removed, "placements", len(gen.Placements))
	return gen, nil
}

// clear removes every object not labelled essential and returns how many went.
func (m *MazeManager) clear(lvl Level) int {
	removed := 0
	for _, o := range lvl.Objects() {
		if o.HasLabel(entity.LabelEssential) {
			continue
		}
		lvl.RemoveObject(o.Handle)
		removed++
	}
	return removed
}

// emit sends every placement to the level, skipping the ones it refuses.
func (m *MazeManager) emit(lvl Level, gen *Generation) {
	for _, pl := range gen.Placements {
		h, err := lvl.CreateObject(pl.Role, pl.Name, pl.Definition)
		if err != nil {
			m.skip(gen, pl, "create", err)
			continue
		}
		if err := lvl.SetPosition(h, pl.Position); err != nil {
			m.skip(gen, pl, "position", err)
			continue
		}
		if err := lvl.SetRotation(h, pl.Rotation); err != nil {
			m.skip(gen, pl, "rotation", err)
			continue
		}
		if o, ok := lvl.Object(h); ok {
			o.AddLabel(entity.LabelMaze)
		}
		if pl.Role == entity.RolePlayer {
			if err := lvl.SetActiveCharacter(h); err != nil {
				m.logger.Warn("player not made active", "name", pl.Name, "error", err)
			}
		}
		gen.Created++
	}
}

func (m *MazeManager) skip(gen *Generation, pl Placement, stage string, err error) {
	gen.Failed++
	telemetry.CreationFailuresTotal.WithLabelValues(string(pl.Role)).Inc()
	m.logger.Warn("placement skipped",
		"stage", stage,
		"role", pl.Role,
		"name", pl.Name,
		"error", err,
	)
}
