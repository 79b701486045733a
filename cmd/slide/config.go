package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-slide/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the puzzle configuration",
	Long: `Print the configuration boards start with, after the search order
(--config, ~/.slide/configs/slide.yaml, ./configs/slide.yaml, built-in defaults).

With --default, print the built-in YAML instead. It makes a good starting
point for a custom file.

Examples:
  slide config
  slide config --config ./my-board.yaml
  slide config --default > ~/.slide/configs/slide.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return writeConfig(os.Stdout, flagConfig, flagDefaultConfig)
	},
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default YAML")
}

func writeConfig(w io.Writer, path string, builtin bool) error {
	if builtin {
		_, err := w.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.LoadSlide(path)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	_, err = w.Write(out)
	return err
}
