package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/biketrail/internal/games/trail"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config",
	Long: `Print the config a run would use as YAML: the embedded defaults,
overridden by ~/.biketrail/configs/bike.yaml or --config, with the
--difficulty preset applied. The output is a valid --config file.

Examples:
  biketrail config > my-trail.yaml
  biketrail config --difficulty easy`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	cfg, err := trail.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
