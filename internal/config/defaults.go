package config

import (
	_ "embed"
)

//go:embed defaults/slide.yaml
var defaultSlideYAML []byte

// DefaultSlideConfig returns the hard-coded default configuration.
// It matches defaults/slide.yaml and is used if the embedded file cannot be parsed.
func DefaultSlideConfig() SlideConfig {
	return SlideConfig{
		Board: BoardConfig{
			GridSize: 4,
		},
		Timing: TimingConfig{
			ManualMove:  0.1,
			ShuffleMove: 0.04,
		},
		Shuffle: ShuffleConfig{
			Moves:    50,
			Strategy: "rotate",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSlideYAML
}
