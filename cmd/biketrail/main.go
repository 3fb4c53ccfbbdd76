// biketrail is a side-scrolling bike game: ride each level to the flag
// before the clock runs out, jumping the holes on the way.
//
// Usage:
//
//	biketrail play [mode]      - Play in the terminal (mode: trail, trail_practice)
//	biketrail menu             - Menu with campaign, practice and high scores
//	biketrail window           - Play in a graphical window
//	biketrail serve            - Start SSH server for remote play
//	biketrail scores           - Show top runs and best level times
//	biketrail list             - List game modes
//	biketrail levels           - Show the difficulty of every level
//	biketrail config           - Print the effective config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible levels
//	--db <path>          - Set database path (default: ~/.biketrail/biketrail.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log file for full-screen modes
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/biketrail/internal/config"
	"github.com/vovakirdan/biketrail/internal/core"
	"github.com/vovakirdan/biketrail/internal/games/trail"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Game flags shared by play and window
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "biketrail",
	Short: "Bike Trail - ride to the flag before time runs out",
	Long: `Bike Trail is a side-scrolling bike game for the terminal, a window
or an SSH session. The bike rides forward on its own; jump the holes and
reach the flag of each of the levels before the clock runs out.

Available commands:
  play     - Play in the terminal
  menu     - Interactive menu
  window   - Play in a graphical window
  serve    - Start SSH server for remote play
  scores   - View top runs and best level times
  list     - Show game modes
  levels   - Show the difficulty of every level
  config   - Print the effective config

Examples:
  biketrail play
  biketrail play trail_practice --level 5
  biketrail window --difficulty hard
  biketrail serve --ssh :2222
  biketrail levels --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.biketrail/biketrail.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.biketrail/biketrail.log", "Log file for full-screen modes")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameFlags registers the flags that shape a run.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on")
}

// applyGameFlags hands the game flags to the trail package.
func applyGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	trail.SetConfigPath(flagConfig)
	trail.SetDifficultyPreset(flagDifficulty)
	trail.SetStartLevel(flagLevel)
	return nil
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger builds the CLI logger. Full-screen modes log to the log file
// so the alternate screen stays clean; the returned func closes it.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "biketrail",
		Level:           level,
	})
	return logger, closeFn, nil
}

func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
