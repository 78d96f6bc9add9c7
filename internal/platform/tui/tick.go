// Package tui runs the game in a terminal with Bubble Tea, locally or
// over SSH via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// maxTickRate caps the step rate at one step per millisecond.
const maxTickRate = 1000

// TickMsg is sent to trigger a game simulation step.
type TickMsg time.Time

// tickCmd schedules the next step tickRate times per second.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(core.Clamp(tickRate, 1, maxTickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
