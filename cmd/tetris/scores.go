package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

Examples:
  tetris scores
  tetris scores --limit 25
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.Platform.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(tetris.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(tetris.GameID, flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(tetris.GameID)
	if err != nil {
		return err
	}

	printScores(out, scores, stats)
	return nil
}

// printScores writes the score table and a one-line summary.
func printScores(out io.Writer, scores []storage.ScoreEntry, stats *storage.GameStats) {
	fmt.Fprintln(out, "High Scores - Tetris")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tetris play' to set the first high score!")
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Rank", "Score", "Level", "When", "Run"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetColumnSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	rows := make([][]string, 0, len(scores))
	for i, e := range scores {
		rows = append(rows, []string{
			"#" + strconv.Itoa(i+1),
			humanize.Comma(int64(e.Score)),
			strconv.Itoa(e.Level),
			humanize.Time(e.CreatedAt),
			shortRunID(e.RunID),
		})
	}
	table.AppendBulk(rows)
	table.Render()

	if stats != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %s  Games: %s  Average: %.0f  Best level: %d\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.GamesCount)),
			stats.AvgScore,
			stats.BestLevel,
		)
	}
}

// shortRunID trims a UUID to its first group.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
