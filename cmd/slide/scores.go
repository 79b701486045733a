package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show best solves",
	Long: `Display solve records.

With a board, shows its best solves: fewest moves first, then fastest.
Without one, shows a summary line for every board that has been solved.

Examples:
  slide scores
  slide scores 15puzzle
  slide scores 8puzzle --limit 20
  slide scores --player alice
  slide scores 15puzzle --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of solves to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show the most recent solves by this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every solve of the board")
}

func runScores(_ *cobra.Command, args []string) error {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown board %q (run 'slide list' to see available boards)", gameID)
		}
	}
	if flagClear && gameID == "" {
		return fmt.Errorf("--clear needs a board")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearSolves(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all solves of %s.\n", gameID)
		return nil
	case flagPlayer != "":
		return printPlayerSolves(os.Stdout, store, flagPlayer, flagLimit)
	case gameID == "":
		return printAllStats(os.Stdout, store)
	default:
		return printBoardScores(os.Stdout, store, gameID, flagLimit)
	}
}

// boardTitle returns the registered title of a board, or its ID.
func boardTitle(gameID string) string {
	for _, info := range registry.List() {
		if info.ID == gameID {
			return info.Title
		}
	}
	return gameID
}

func printBoardScores(w io.Writer, store *storage.Store, gameID string, limit int) error {
	solves, err := store.BestSolves(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Best Solves - %s\n\n", boardTitle(gameID))

	if len(solves) == 0 {
		fmt.Fprintln(w, "No solves recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'slide play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-9s  %-12s  %s\n", "Rank", "Moves", "Time", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-9s  %-12s  %s\n", "----", "-----", "----", "------", "----")
	for i, s := range solves {
		fmt.Fprintf(w, "  %-4d  %-6d  %-9s  %-12s  %s\n",
			i+1, s.Moves, storage.FormatDuration(s.Duration), s.Player, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Solves: %d  Best: %d moves  Average: %.1f moves  Fastest: %s\n",
			stats.Solves, stats.BestMoves, stats.AvgMoves, storage.FormatDuration(stats.BestTime))
	}
	return nil
}

func printAllStats(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No solves recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-10s  %-6s  %-5s  %-7s  %-9s  %s\n", "Board", "Solves", "Best", "Average", "Fastest", "Last played")
	fmt.Fprintf(w, "  %-10s  %-6s  %-5s  %-7s  %-9s  %s\n", "-----", "------", "----", "-------", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(w, "  %-10s  %-6d  %-5d  %-7.1f  %-9s  %s\n",
			id, s.Solves, s.BestMoves, s.AvgMoves, storage.FormatDuration(s.BestTime), s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printPlayerSolves(w io.Writer, store *storage.Store, player string, limit int) error {
	solves, err := store.PlayerSolves(player, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Recent Solves - %s\n\n", player)
	if len(solves) == 0 {
		fmt.Fprintln(w, "No solves recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-10s  %-6s  %-9s  %s\n", "Board", "Moves", "Time", "Date")
	fmt.Fprintf(w, "  %-10s  %-6s  %-9s  %s\n", "-----", "-----", "----", "----")
	for _, s := range solves {
		fmt.Fprintf(w, "  %-10s  %-6d  %-9s  %s\n",
			s.GameID, s.Moves, storage.FormatDuration(s.Duration), s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
