package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/level"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/ui"
	"github.com/samdwyer/mazeband/internal/world"
)

// Game holds the interactive viewer state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	level    *level.Level
	manager  *MazeManager
	gen      *Generation
	player   *entity.Player
	state    State
	showPath bool
	message  string
	running  bool
	logger   *slog.Logger
}

// New creates a new game instance.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	objects, err := gamedata.LoadObjectRegistry()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	manager := NewMazeManager(cfg.NewRand(), objects, logger)
	manager.SetSize(cfg.Rows, cfg.Cols)

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, objects),
		level:    level.New(level.WithDefinitions(objects.Definitions()...)),
		manager:  manager,
		state:    StateExplore,
		showPath: cfg.ShowPath,
		running:  true,
		logger:   manager.logger,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	err := g.regenerate(ctx)
	if err == nil {
		rows, cols := g.manager.Size()
		initSpan.SetAttributes(
			attribute.Int("maze.rows", rows),
			attribute.Int("maze.cols", cols),
			attribute.Int("level.objects", g.level.Count()),
		)
	}
	initSpan.End()
	if err != nil {
		g.screen.Close()
		return err
	}

	rows, cols := g.manager.Size()
	if w, h := g.screen.Size(); w < 2*cols+1 || h < 2*rows+3 {
		g.message = fmt.Sprintf("Terminal %dx%d is too small for a %dx%d maze", w, h, rows, cols)
	}

	for g.running {
		g.renderer.Render(ui.Frame{
			Doors:    g.gen.Doors,
			Path:     g.gen.Path,
			Player:   g.player,
			Goal:     g.gen.Goal(),
			ShowPath: g.showPath,
			Status:   g.status(),
		})

		// Blocking
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// regenerate builds a new maze and puts the player back at the start.
func (g *Game) regenerate(ctx context.Context) error {
	gen, err := g.manager.Generate(ctx, g.level)
	if err != nil {
		return err
	}
	g.gen = gen
	g.player = entity.NewPlayer(gen.Start())
	g.state = StateExplore
	g.message = ""
	if gen.Failed > 0 {
		g.message = fmt.Sprintf("%d objects could not be placed", gen.Failed)
	}
	return nil
}

// status returns the line shown under the maze.
func (g *Game) status() string {
	if g.message != "" {
		return g.message
	}
	switch g.state {
	case StateEscaped:
		return fmt.Sprintf("Escaped in %d moves (shortest %d). r: new maze  q: quit", g.player.Moves, g.gen.Path.Steps())
	default:
		return "arrows: move  h: hint  r: new maze  q: quit"
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(world.Up)
	case tcell.KeyDown:
		g.tryMove(world.Down)
	case tcell.KeyLeft:
		g.tryMove(world.Left)
	case tcell.KeyRight:
		g.tryMove(world.Right)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'h', 'H':
			g.showPath = !g.showPath
		case 'r', 'R':
			if err := g.regenerate(ctx); err != nil {
				g.message = "Regeneration failed: " + err.Error()
			}
		}
	}
}

// tryMove moves the player through an open door.
func (g *Game) tryMove(d world.Direction) {
	if g.state != StateExplore {
		return
	}
	g.message = ""
	if g.player.TryMove(g.gen.Doors, d) && g.player.Pos == g.gen.Goal() {
		g.state = StateEscaped
		g.logger.Info("maze escaped", "moves", g.player.Moves, "shortest", g.gen.Path.Steps())
	}
}
