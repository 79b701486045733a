package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from an interactive menu",
	Long: `Start slide in interactive menu mode.

Use arrow keys or j/k to pick a board, left/right to choose a difficulty,
Enter to play and Tab to browse best solves. Esc in a game returns here.

Examples:
  slide menu
  slide menu --fps 30
  slide menu --db ./slide.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			game, err := newGame(res.GameID, res.Difficulty)
			if err != nil {
				return err
			}
			back, err := tui.Run(game, store, cfg, tui.GameOptions{Logger: logger, ExitOnBack: true})
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !back {
				return nil
			}
		}
	}
}
