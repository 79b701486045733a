package config

import "testing"

func TestApplySlidePreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   int
	}{
		{DifficultyEasy, 20},
		{DifficultyNormal, 50},
		{DifficultyHard, 150},
		{"", 33},
	}

	for _, tt := range tests {
		cfg := DefaultSlideConfig()
		cfg.Shuffle.Moves = 33
		ApplySlidePreset(&cfg, tt.preset)
		if cfg.Shuffle.Moves != tt.want {
			t.Errorf("preset %q: moves = %d, want %d", tt.preset, cfg.Shuffle.Moves, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParseDifficulty(name); err != nil {
			t.Errorf("ParseDifficulty(%q): %v", name, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
