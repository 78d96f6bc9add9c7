package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// maxScores is the number of entries the scoreboard shows.
const maxScores = 10

// scoreboard is the in-session high score view.
type scoreboard struct {
	table  table.Model
	stats  *storage.GameStats
	empty  bool
	errMsg string
}

// newScoreboard loads the top scores of gameID. A nil store yields an
// empty board.
func newScoreboard(store *storage.Store, gameID string, height int) scoreboard {
	sb := scoreboard{table: newScoreTable(height)}

	if store == nil {
		sb.empty = true
		sb.errMsg = "Scores are not being saved."
		return sb
	}

	entries, err := store.TopScores(gameID, maxScores)
	if err != nil {
		sb.empty = true
		sb.errMsg = "Could not load scores."
		return sb
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		sb.stats = stats
	}

	sb.table.SetRows(scoreRows(entries))
	sb.empty = len(entries) == 0
	return sb
}

func newScoreTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "When", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(e.Score)),
			fmt.Sprintf("%d", e.Level),
			humanize.Time(e.CreatedAt),
		}
	}
	return rows
}

// View renders the scoreboard centred in width.
func (sb scoreboard) View(width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title.Render("HIGH SCORES")))
	b.WriteString("\n\n")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var body string
	if sb.empty {
		msg := sb.errMsg
		if msg == "" {
			msg = "No scores recorded yet.\nFinish a game to set a high score!"
		}
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render(msg)
	} else {
		body = sb.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, frame.Render(body)))

	if sb.stats != nil && sb.stats.GamesCount > 0 {
		summary := fmt.Sprintf("%s games · best level %d · avg %.0f · last played %s",
			humanize.Comma(int64(sb.stats.GamesCount)),
			sb.stats.BestLevel,
			sb.stats.AvgScore,
			humanize.Time(sb.stats.LastPlayed),
		)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(summary)))
	}

	return b.String()
}
