package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change how many shuffle moves scramble the board.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. An empty name means no preset.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ShuffleMovesForPreset returns the shuffle move count for a preset,
// or -1 if the preset leaves the configured count alone.
func ShuffleMovesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 20
	case DifficultyNormal:
		return 50
	case DifficultyHard:
		return 150
	default:
		return -1
	}
}

// ApplySlidePreset modifies the config based on a difficulty preset.
func ApplySlidePreset(cfg *SlideConfig, preset DifficultyPreset) {
	if moves := ShuffleMovesForPreset(preset); moves >= 0 {
		cfg.Shuffle.Moves = moves
	}
}
