package game

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/mazeband/internal/world"
)

// Default maze dimensions
const (
	DefaultRows = 15
	DefaultCols = 20
)

// Config holds game configuration options.
type Config struct {
	Rows int
	Cols int

	// Seed for random number generation. Used for reproducible maze generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// ShowPath starts the viewer with the hint overlay visible.
	ShowPath bool

	// MetricsAddr is the listen address for the Prometheus endpoint; empty disables it.
	MetricsAddr string

	// LogFile receives structured logs while the terminal UI owns the screen.
	LogFile string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Rows: DefaultRows,
		Cols: DefaultCols,
	}
}

// LoadConfig reads MAZE_* environment variables over the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if err := envInt("MAZE_ROWS", &cfg.Rows); err != nil {
		return cfg, err
	}
	if err := envInt("MAZE_COLS", &cfg.Cols); err != nil {
		return cfg, err
	}
	if v := os.Getenv("MAZE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("MAZE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("MAZE_SHOW_PATH"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("MAZE_SHOW_PATH: %w", err)
		}
		cfg.ShowPath = show
	}
	cfg.MetricsAddr = os.Getenv("MAZE_METRICS_ADDR")
	cfg.LogFile = os.Getenv("MAZE_LOG_FILE")

	return cfg, nil
}

// Validate checks the maze dimensions.
func (c Config) Validate() error {
	return world.ValidateSize(c.Rows, c.Cols)
}

// NewRand returns the random source for maze building, seeded from Seed
// or from the clock when Seed is 0.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
