package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlide loads the puzzle configuration.
// Search order: customPath -> ~/.slide/configs/slide.yaml -> ./configs/slide.yaml -> embedded default.
// Fields missing from a file keep their default values. The result is validated.
func LoadSlide(customPath string) (SlideConfig, error) {
	cfg, err := ReadSlide(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ReadSlide is LoadSlide without validation, for callers that override
// fields before checking the result.
func ReadSlide(customPath string) (SlideConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultSlideConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("slide.yaml"), filepath.Join("configs", "slide.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg := DefaultSlideConfig()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultSlideConfig()
	if err := yaml.Unmarshal(defaultSlideYAML, &cfg); err != nil {
		return DefaultSlideConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slide", "configs", filename)
}
