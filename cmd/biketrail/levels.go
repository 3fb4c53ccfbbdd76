package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/biketrail/internal/games/trail"
	"github.com/vovakirdan/biketrail/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty of every level",
	Long: `Print hole count, rock count and forward speed per level for the
effective config. With --seed, also print the hole layout that seed
generates for each level.

Examples:
  biketrail levels
  biketrail levels --difficulty hard
  biketrail levels --seed 42`,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runLevels(_ *cobra.Command, _ []string) error {
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

	gen := level.NewGenerator(cfg, flagSeed)
	scaling := gen.Scaling()

	fmt.Printf("  %-5s  %-5s  %-5s  %-6s  %s\n", "Level", "Holes", "Rocks", "Speed", "Time")
	fmt.Printf("  %-5s  %-5s  %-5s  %-6s  %s\n", "-----", "-----", "-----", "-----", "----")
	for n := 1; n <= scaling.LevelCount(); n++ {
		fmt.Printf("  %-5d  %-5d  %-5d  %-6.0f  %.0fs\n",
			n, scaling.HoleCount(n), scaling.ObstacleCount(n), scaling.ForwardSpeed(n), cfg.Timing.LevelTime)
	}

	if flagSeed == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("Hole layout for seed %d (centre/width)\n", flagSeed)
	fmt.Println()
	for n := 1; n <= scaling.LevelCount(); n++ {
		spec := gen.Generate(n)
		parts := make([]string, len(spec.Holes))
		for i, h := range spec.Holes {
			parts[i] = fmt.Sprintf("%.0f/%.0f", h.Center, h.Width)
		}
		fmt.Printf("  %2d: %s\n", n, strings.Join(parts, " "))
	}
	return nil
}
