package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-rat/internal/games/snakerat"
	"github.com/vovakirdan/snake-rat/internal/platform/tui"
	"github.com/vovakirdan/snake-rat/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished games: points, and how long the snake lived.

Examples:
  snakerat scores
  snakerat scores --limit 25
  snakerat scores --tui
  snakerat scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("cannot open scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(snakerat.GameID); err != nil {
			fail("%v", err)
		}
		fmt.Println("Scores cleared.")
		return

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, snakerat.GameID, snakerat.Title, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	scores, err := store.TopScores(snakerat.GameID, flagScoresLimit)
	if err != nil {
		fail("cannot retrieve scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", snakerat.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snakerat play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %s\n", "Rank", "Player", "Points", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %s\n", "----", "------", "------", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-6d  %-6d  %s\n", i+1, entry.Player, entry.Score, entry.Ticks, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(snakerat.GameID); err == nil {
		fmt.Printf("Best: %d   Games: %d   Average: %.1f   Longest: %d ticks\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LongestRun)
	}
}
