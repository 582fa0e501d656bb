package world

import (
	"errors"
	"fmt"
)

// MaxCells bounds rows*cols for a single maze.
const MaxCells = 1 << 16

// ErrInvalidConfiguration is returned when maze dimensions are unusable.
var ErrInvalidConfiguration = errors.New("invalid maze configuration")

// ValidateSize checks that a rows x cols maze can be built.
func ValidateSize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	if rows > MaxCells/cols {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidConfiguration, rows, cols, MaxCells)
	}
	return nil
}
