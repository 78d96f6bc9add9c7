// tetris is a terminal Tetris that runs locally or over SSH.
//
// Usage:
//
//	tetris list              - List available games
//	tetris play              - Play in this terminal
//	tetris serve             - Start SSH server for remote play
//	tetris scores            - Show high scores
//	tetris replay <file>     - Rebuild a recorded game and print the final board
//	tetris config            - Print the default configuration
//
// Global flags:
//
//	--config <path> - Configuration file (default: search path)
//	--fps <rate>    - Simulation steps per second (default: from config, 100)
//	--seed <value>  - RNG seed for reproducible gameplay
//	--db <path>     - Database path (default: ~/.tetris/scores.db)
//	--verbose       - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris" // registers the game
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	// Resolved in PersistentPreRunE
	cfg    config.TetrisConfig
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal Tetris with persistent high scores, SSH hosting
and deterministic replays.

Available commands:
  list     - Show all available games
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Rebuild a recorded game
  config   - Print the default configuration

Examples:
  tetris play
  tetris play --seed 42 --record run.yaml
  tetris replay run.yaml
  tetris serve --ssh :2222
  tetris scores --limit 20`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation steps per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagFPS > 0 {
		cfg.Platform.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Platform.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Platform.DBPath = flagDBPath
	}

	logger, err = newLogger(cfg.Log.Level, flagVerbose)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "command", cmd.Name(), "tick_rate", cfg.Platform.TickRate, "db", cfg.Platform.DBPath)
	return nil
}

// newLogger builds the process logger. verbose forces debug level.
func newLogger(level string, verbose bool) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		lvl = parsed
	}
	if verbose {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           lvl,
	}), nil
}
