// Package config provides YAML-based puzzle configuration loading and
// difficulty presets for the slide platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// SlideConfig contains all configuration for the sliding-tile puzzle.
type SlideConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Shuffle ShuffleConfig `yaml:"shuffle"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	GridSize int `yaml:"grid_size"`
}

// TimingConfig defines tile animation durations in seconds.
type TimingConfig struct {
	ManualMove  float64 `yaml:"manual_move"`
	ShuffleMove float64 `yaml:"shuffle_move"`
}

// ShuffleConfig defines how a solved board is scrambled.
type ShuffleConfig struct {
	Moves    int    `yaml:"moves"`
	Strategy string `yaml:"strategy"` // "rotate" or "uniform"
}

// Puzzle converts the file format into the puzzle core's configuration.
func (c SlideConfig) Puzzle() puzzle.Config {
	return puzzle.Config{
		GridSize:                c.Board.GridSize,
		ManualTileMoveDuration:  c.Timing.ManualMove,
		ShuffleTileMoveDuration: c.Timing.ShuffleMove,
		NumShuffleMoves:         c.Shuffle.Moves,
		Strategy:                puzzle.ShuffleStrategy(c.Shuffle.Strategy),
	}
}

// Validate checks the configuration against the puzzle's construction rules.
func (c SlideConfig) Validate() error {
	if err := c.Puzzle().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
