package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/biketrail/internal/platform/tui"
	"github.com/vovakirdan/biketrail/internal/registry"
	"github.com/vovakirdan/biketrail/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Play the bike trail in the terminal. The mode defaults to "trail",
the campaign from --level to the last level; "trail_practice" plays
--level only.

Controls:
  Enter         - Start / retry the level
  Space/Up/W    - Jump (only on the ground)
  Left/Right    - Steer instead of riding forward
  Mouse click   - Jump
  P             - Pause
  R             - New run (after the last level)
  B/Esc         - Leave (when stopped or paused)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 50% more time, faster steering
  normal - Config as is
  hard   - 25% less time, speed grows faster per level
  fixed  - Speed never grows; holes still do

Examples:
  biketrail play
  biketrail play --level 4 --difficulty hard
  biketrail play trail_practice --level 10
  biketrail play --config ./my-trail.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "trail"
	if len(args) == 1 {
		gameID = args[0]
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'biketrail list' to see modes)", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := tui.Run(game, runtimeConfig(), tui.Options{
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
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
