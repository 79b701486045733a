package puzzle

import (
	"errors"
	"fmt"
)

// ShuffleStrategy selects how a shuffle step picks its neighbour.
type ShuffleStrategy string

const (
	// ShuffleRotate scans the fixed offsets from a random start and takes the first valid one.
	ShuffleRotate ShuffleStrategy = "rotate"
	// ShuffleUniform picks uniformly among every valid non-reversing neighbour.
	ShuffleUniform ShuffleStrategy = "uniform"
)

// Configuration errors returned by Config.Validate.
var (
	ErrGridSize     = errors.New("puzzle: grid size must be at least 2")
	ErrDuration     = errors.New("puzzle: tile move duration must be positive")
	ErrShuffleMoves = errors.New("puzzle: shuffle move count must not be negative")
	ErrStrategy     = errors.New("puzzle: unknown shuffle strategy")
)

// Config holds the construction-time options of a puzzle.
type Config struct {
	GridSize                int             // Board dimension N (N x N cells)
	ManualTileMoveDuration  float64         // Seconds for a player move
	ShuffleTileMoveDuration float64         // Seconds for a shuffle move
	NumShuffleMoves         int             // Swaps performed by one shuffle
	Strategy                ShuffleStrategy // Empty means ShuffleRotate
}

// DefaultConfig returns a 4x4 puzzle with the classic timings.
func DefaultConfig() Config {
	return Config{
		GridSize:                4,
		ManualTileMoveDuration:  0.1,
		ShuffleTileMoveDuration: 0.04,
		NumShuffleMoves:         50,
		Strategy:                ShuffleRotate,
	}
}

// Validate reports every violated constraint.
func (c Config) Validate() error {
	var errs []error
	if c.GridSize < 2 {
		errs = append(errs, fmt.Errorf("%w (got %d)", ErrGridSize, c.GridSize))
	}
	if c.ManualTileMoveDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: manual move %v", ErrDuration, c.ManualTileMoveDuration))
	}
	if c.ShuffleTileMoveDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: shuffle move %v", ErrDuration, c.ShuffleTileMoveDuration))
	}
	if c.NumShuffleMoves < 0 {
		errs = append(errs, fmt.Errorf("%w (got %d)", ErrShuffleMoves, c.NumShuffleMoves))
	}
	switch c.Strategy {
	case "", ShuffleRotate, ShuffleUniform:
	default:
		errs = append(errs, fmt.Errorf("%w %q", ErrStrategy, c.Strategy))
	}
	return errors.Join(errs...)
}
