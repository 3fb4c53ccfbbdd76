package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/biketrail/internal/platform/tui"
	"github.com/vovakirdan/biketrail/internal/registry"
	"github.com/vovakirdan/biketrail/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show top runs and best level times",
	Long: `Display the top runs for a mode (default "trail") and the best
clear time of every level.

Examples:
  biketrail scores
  biketrail scores trail_practice --limit 5
  biketrail scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "trail"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'biketrail list' to see modes)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresInteractive {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Printf("Top runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'biketrail play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-7s  %-6s  %-9s  %-12s  %s\n", "Rank", "Score", "Levels", "Outcome", "Player", "Date")
		fmt.Printf("  %-4s  %-7s  %-6s  %-9s  %-12s  %s\n", "----", "-----", "------", "-------", "------", "----")
		for i, r := range runs {
			fmt.Printf("  %-4d  %-7d  %-6d  %-9s  %-12s  %s\n",
				i+1, r.Score, r.LevelsCleared, r.Outcome, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.Stats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Runs: %d  Completed: %d  Best: %d  Average: %.0f\n",
				stats.Runs, stats.Completed, stats.HighScore, stats.AvgScore)
		}
	}

	best, err := store.BestClearTimes()
	if err != nil {
		return fmt.Errorf("error retrieving level times: %w", err)
	}
	if len(best) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Best level times")
	fmt.Println()
	fmt.Printf("  %-5s  %-8s  %-6s  %s\n", "Level", "Seconds", "Clears", "Player")
	fmt.Printf("  %-5s  %-8s  %-6s  %s\n", "-----", "-------", "------", "------")
	for _, b := range best {
		fmt.Printf("  %-5d  %-8.2f  %-6d  %s\n", b.Level, b.Seconds, b.Clears, b.Player)
	}
	return nil
}
