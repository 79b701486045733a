package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-slide/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConfig(&buf, "", true); err != nil {
		t.Fatalf("writeConfig() failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), config.GetDefaultYAML()) {
		t.Error("--default should print the built-in YAML verbatim")
	}
}

func TestWriteEffectiveConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("board:\n  grid_size: 6\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := writeConfig(&buf, path, false); err != nil {
		t.Fatalf("writeConfig() failed: %v", err)
	}

	var got config.SlideConfig
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	want := config.DefaultSlideConfig()
	want.Board.GridSize = 6
	if got != want {
		t.Errorf("effective config = %+v, want %+v", got, want)
	}
}

func TestWriteConfigMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConfig(&buf, filepath.Join(t.TempDir(), "missing.yaml"), false); err == nil {
		t.Error("a missing --config file should be an error")
	}
}
