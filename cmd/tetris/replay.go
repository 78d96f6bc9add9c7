package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Rebuild a recorded game and print the final board",
	Long: `Fold every action in a recording written by 'tetris play --record'
through the engine and print the resulting board, score and level.

Examples:
  tetris play --record run.yaml
  tetris replay run.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	rec, err := tetris.LoadRecording(args[0])
	if err != nil {
		return err
	}

	state, err := tetris.Replay(rec)
	if err != nil {
		return err
	}
	logger.Debug("replayed", "run", rec.RunID, "actions", len(rec.Actions))

	printReplay(cmd.OutOrStdout(), rec, state)
	return nil
}

// printReplay writes the run header, the board and the final counters.
func printReplay(out io.Writer, rec tetris.Recording, s engine.State) {
	fmt.Fprintf(out, "Run %s (seed %d, %d actions)\n\n", rec.RunID, rec.Seed, len(rec.Actions))
	fmt.Fprintln(out, boardString(s))
	fmt.Fprintln(out)

	status := "in progress"
	if s.GameEnd {
		status = "game over"
	}
	fmt.Fprintf(out, "Score: %d  Level: %d  High: %d  Status: %s\n",
		s.Score, s.Level, max(s.HighScore, s.Score), status)
}

// boardString draws the grid as ASCII: '#' for placed cubes, '@' for the
// active block and '.' for empty cells.
func boardString(s engine.State) string {
	var cells [engine.Rows][engine.Columns]byte
	for row := range engine.Rows {
		for col := range engine.Columns {
			cells[row][col] = '.'
		}
	}
	for _, c := range s.Grid.Cubes() {
		cells[c.Row][c.Col] = '#'
	}
	if !s.GameEnd {
		for _, c := range s.ActiveBlock {
			if c.Row >= 0 && c.Row < engine.Rows && c.Col >= 0 && c.Col < engine.Columns {
				cells[c.Row][c.Col] = '@'
			}
		}
	}

	lines := make([]string, 0, engine.Rows+1)
	for row := range engine.Rows {
		lines = append(lines, "|"+string(cells[row][:])+"|")
	}
	lines = append(lines, "+"+strings.Repeat("-", engine.Columns)+"+")
	return strings.Join(lines, "\n")
}
