package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
	flagMine   bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs, or browse all of them interactively.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --limit 0                # every run
  flappy scores --mine --player ana
  flappy scores --browse
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list (0 = all)")
	scoresCmd.Flags().BoolVar(&flagMine, "mine", false, "List the most recent runs of --player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(flappy.GameID); err != nil {
			return fmt.Errorf("error clearing scores: %w", err)
		}
		fmt.Println("All scores deleted.")
		return nil
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flappy.GameID, "Flappy Bird", flagPlayer, width, height)
	}

	scores, err := listScores(store, flagMine, flagPlayer, flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	stats, err := store.GetGameStats(flappy.GameID)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}

	printScores(os.Stdout, scores, stats)
	return nil
}

// listScores returns the best runs, or the latest runs of player if mine
// is set. A zero limit lists every run.
func listScores(store *storage.Store, mine bool, player string, limit int) ([]storage.ScoreEntry, error) {
	switch {
	case limit < 0:
		return nil, fmt.Errorf("--limit must not be negative, got %d", limit)
	case mine && limit == 0:
		return store.PlayerScores(flappy.GameID, player, math.MaxInt32)
	case mine:
		return store.PlayerScores(flappy.GameID, player, limit)
	case limit == 0:
		return store.AllScores(flappy.GameID)
	default:
		return store.TopScores(flappy.GameID, limit)
	}
}

// printScores writes a plain text score table to w.
func printScores(w io.Writer, scores []storage.ScoreEntry, stats *storage.GameStats) {
	fmt.Fprintln(w, "High Scores - Flappy Bird")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Ticks", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-16s  %-6d  %-6d  %s\n", i+1, entry.Player, entry.Score, entry.Ticks, dateStr)
	}

	if stats != nil && stats.GamesCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d   Runs: %d   Players: %d   Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	}
}
