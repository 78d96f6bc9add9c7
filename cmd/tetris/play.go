package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris in this terminal",
	Long: `Start a game in the current terminal.

Default controls (configurable under keys: in the config file):
  Left/A, Right/D  - Move
  Up/W/X           - Rotate clockwise
  Z                - Rotate anticlockwise
  Space/Down       - Drop
  P/Esc            - Pause
  R                - Restart after game over
  Tab              - High scores
  Q/Ctrl+C         - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --record run.yaml
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write every engine action to this YAML file on exit")
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	// The alt screen owns the terminal; only warnings and errors reach stderr.
	sessionLog := logger.With()
	sessionLog.SetLevel(max(logger.GetLevel(), log.WarnLevel))
	tetris.SetLogger(sessionLog)

	store, err := storage.Open(cfg.Platform.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}

	game := tetris.New()
	runErr := tui.Run(game, tui.Options{
		Store: store,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Platform.TickRate,
			Seed:     cfg.Platform.Seed,
		},
		Keys:   tui.NewKeyMap(cfg.Keys),
		Logger: sessionLog,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	if flagRecord != "" {
		if err := tetris.SaveRecording(flagRecord, game.Recording()); err != nil {
			return err
		}
		logger.Info("recording saved", "path", flagRecord, "actions", len(game.Recording().Actions))
	}
	return nil
}
