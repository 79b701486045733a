package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <board>",
	Short: "Play a board",
	Long: `Start playing the specified board.

Controls:
  Space            - Shuffle a solved board
  Arrows/WASD      - Slide the tile next to the gap in that direction
  Mouse click      - Slide the clicked tile
  P                - Pause
  R                - Reset to a fresh board
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options (number of shuffle moves):
  easy   - 20
  normal - 50
  hard   - 150

Examples:
  slide play 15puzzle
  slide play 24puzzle --difficulty hard
  slide play slide --config ./my-board.yaml
  slide play 8puzzle --seed 42 --log /tmp/slide.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by commands that start boards.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newGame creates a board and applies --config and the given difficulty.
func newGame(gameID, difficulty string) (registry.Game, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Configurable); ok {
		c.SetConfigPath(flagConfig)
		if err := c.SetDifficulty(difficulty); err != nil {
			return nil, err
		}
	}
	return game, nil
}

// openStore opens the solves database, or returns nil with a warning.
// Boards are playable without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q (run 'slide list' to see available boards)", gameID)
	}

	game, err := newGame(gameID, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), tui.GameOptions{Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
