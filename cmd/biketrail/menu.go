package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/biketrail/internal/platform/tui"
	"github.com/vovakirdan/biketrail/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Pick the campaign, a practice level or the high scores. After a run
you return to the menu to play again.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Choose the practice level
  Enter/Space   - Select
  Tab           - High scores
  Q             - Quit

Examples:
  biketrail menu
  biketrail menu --fps 30
  biketrail menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := tui.RunSession(runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Player: playerName(),
	})

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("error running menu: %w", runErr)
	}
	return nil
}

// playerName is the local user's name, recorded with runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}
