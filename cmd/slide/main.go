// slide is the classic sliding-tile puzzle for the terminal.
//
// Usage:
//
//	slide list              - List available boards
//	slide play <board>      - Play a board
//	slide menu              - Pick boards interactively
//	slide serve             - Start SSH server for remote play
//	slide scores [board]    - Show best solves
//	slide config            - Print the puzzle configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible shuffles
//	--db <path>     - Set database path (default: ~/.slide/slide.db)
//	--log <file>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import boards to register them
	_ "github.com/vovakirdan/tui-slide/internal/games/slide"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "Slide - the N-puzzle in your terminal",
	Long: `Slide is the classic sliding-tile puzzle. Shuffle the board, then
slide tiles into the gap until every number is back in place.

Available commands:
  list     - Show all boards
  play     - Play a specific board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  scores   - View best solves
  config   - Print the puzzle configuration

Examples:
  slide list
  slide play 15puzzle
  slide play 8puzzle --difficulty easy
  slide menu
  slide serve --ssh :2222 --watch :8080
  slide scores 15puzzle`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide/slide.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
