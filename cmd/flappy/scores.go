package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// maxListed caps --limit.
const maxListed = 100

var (
	flagLimit  int
	flagClear  bool
	flagBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score ledger",
	Long: `Display the best recorded runs and overall statistics.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --browse
  flappy scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the ledger interactively")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: score ledger is disabled (--db is empty)")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if err := showScores(store); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store.Close()
}

func showScores(store *storage.Store) error {
	switch {
	case flagClear:
		n, err := store.ClearScores(flappy.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %d recorded runs.\n", n)
		return nil

	case flagBrowse:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("--browse needs a terminal")
		}
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			w, h = 80, 24
		}
		return tui.RunScoreboard(store, w, h)
	}

	scores, err := store.TopScores(flappy.ID, core.Clamp(flagLimit, 1, maxListed))
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", flappy.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(flappy.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.Runs, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
