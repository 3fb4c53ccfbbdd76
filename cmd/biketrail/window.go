package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/biketrail/internal/platform/gfx"
)

var flagPractice bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a graphical window",
	Long: `Open a 900x500 window and play with keyboard, mouse or touch.

Controls:
  Enter / click START   - Start / retry the level
  Space/Up / tap        - Jump (only on the ground)
  Left/Right, A/D       - Steer instead of riding forward
  Hold a screen edge    - Steer (touch)
  P                     - Pause
  R                     - New run (after the last level)
  Q                     - Quit

Examples:
  biketrail window
  biketrail window --practice --level 7`,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().BoolVar(&flagPractice, "practice", false, "Play --level only")
}

func runWindow(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, _, err := newLogger(false)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	return gfx.Run(gfx.Options{
		Runtime:  cfg,
		Practice: flagPractice,
		Logger:   logger,
	})
}
