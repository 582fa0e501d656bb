// Package main is the entry point for mazeband.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/game"
	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/level"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	rows := flag.Int("rows", cfg.Rows, "maze rows")
	cols := flag.Int("cols", cfg.Cols, "maze columns")
	seed := flag.Int64("seed", cfg.Seed, "random seed (0 = clock)")
	dump := flag.Bool("dump", false, "print one maze with its solution and exit")
	flag.Parse()

	cfg.Rows, cfg.Cols, cfg.Seed = *rows, *cols, *seed
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		telemetry.Disable()
	} else {
		mode := "viewer"
		if *dump {
			mode = "dump"
		}
		shutdown, err := telemetry.Setup(ctx, telemetry.MazeAttributes(cfg.Rows, cfg.Cols, cfg.Seed, mode)...)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Mazes will be built without tracing")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if cfg.MetricsAddr != "" {
		serveMetrics(cfg.MetricsAddr)
	}

	logger, closeLog, err := newLogger(cfg.LogFile, *dump)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	if *dump {
		if err := dumpMaze(ctx, cfg, logger); err != nil {
			log.Fatalf("Maze generation failed: %v", err)
		}
		return
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// newLogger writes to logFile when set. Otherwise the viewer discards logs
// since tcell owns the terminal, and dump mode logs to stderr.
func newLogger(logFile string, dump bool) (*slog.Logger, func(), error) {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		log.SetOutput(f)
		return slog.New(slog.NewJSONHandler(f, nil)), func() { f.Close() }, nil
	}

	var w io.Writer = io.Discard
	if dump {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, nil)), func() {}, nil
}

// dumpMaze builds a single maze and prints it with the solution marked.
func dumpMaze(ctx context.Context, cfg game.Config, logger *slog.Logger) error {
	objects, err := gamedata.LoadObjectRegistry()
	if err != nil {
		return err
	}

	manager := game.NewMazeManager(cfg.NewRand(), objects, logger)
	manager.SetSize(cfg.Rows, cfg.Cols)

	lvl := level.New(level.WithDefinitions(objects.Definitions()...))
	gen, err := manager.Generate(ctx, lvl)
	if err != nil {
		return err
	}

	hint := objects.GetByRole(entity.RoleHint).GlyphRune()
	marks := make(map[world.Position]rune, len(gen.Path))
	for _, p := range gen.Path {
		marks[p] = hint
	}
	marks[gen.Start()] = objects.GetByRole(entity.RolePlayer).GlyphRune()

	fmt.Print(gen.Doors.Draw(marks))
	fmt.Printf("%dx%d maze, path %d steps, %d objects placed, %d skipped\n",
		cfg.Rows, cfg.Cols, gen.Path.Steps(), gen.Created, gen.Failed)
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_MAZEBAND_API_KEY")
	if apiKey == "" {
		return
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_MAZEBAND_DATASET")
	if dataset == "" {
		dataset = "mazeband" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
