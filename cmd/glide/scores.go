package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-glide/internal/games/snake"
	"github.com/vovakirdan/snake-glide/internal/platform/tui"
	"github.com/vovakirdan/snake-glide/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and stats",
	Long: `Display the best runs and overall statistics.

Examples:
  glide scores
  glide scores --limit 25
  glide scores --tui
  glide scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history and best score")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(snake.GameID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
	case flagScoresTUI:
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := printScores(store); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}
}

func printScores(store *storage.Store) error {
	runs, err := store.TopRuns(snake.GameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", snake.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'glide play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Length", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "------", "----", "----")

	for i, run := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-6s  %s\n",
			i+1, run.Score, run.Length, formatDuration(run.Duration), run.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(snake.GameID)
	if err != nil {
		return err
	}
	best, err := store.BestScore(snake.GameID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	fmt.Printf("Games: %d  Average: %.1f  Longest snake: %d  Played: %s\n",
		stats.GamesCount, stats.AvgScore, stats.LongestSnake, stats.TotalPlayTime.Round(time.Second))
	return nil
}

// formatDuration renders d as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
