package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Options configures a game session.
type Options struct {
	Store  *storage.Store // nil disables persistence
	Config core.RuntimeConfig
	Keys   KeyMap
	Logger *log.Logger
}

// Model is the Bubble Tea model for one Tetris session.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	scores     scoreboard
	showScores bool
	quitting   bool
	scoreSaved bool // Whether the current game over has been saved
}

// NewModel creates a session for game. The stored high score, if any,
// seeds the game before it starts.
func NewModel(game *tetris.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	if opts.Store != nil {
		high, err := opts.Store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		game.SetHighScore(high)
	}
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       keys,
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Scores) {
		return m.toggleScores(), nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showScores {
		var cmd tea.Cmd
		m.scores.table, cmd = m.scores.table.Update(msg)
		return m, cmd
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// toggleScores opens or closes the scoreboard. Opening it pauses a
// running game.
func (m Model) toggleScores() Model {
	m.showScores = !m.showScores
	if !m.showScores {
		return m
	}
	if !m.gameState.Paused && !m.gameState.GameOver {
		m.inputFrame.Set(core.ActionPause)
	}
	m.scores = newScoreboard(m.store, m.game.ID(), m.config.ScreenH)
	return m
}

// handleResize keeps the screen in step with the terminal. The game
// state does not depend on the terminal size, so nothing restarts.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore persists a finished run. Failures are logged and ignored.
func (m Model) saveScore() {
	if m.store == nil || m.gameState.Score == 0 {
		return
	}
	_, err := m.store.SaveScore(m.game.ID(), m.game.RunID(), m.gameState.Score, m.gameState.Level)
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Debug("score saved", "run", m.game.RunID(), "score", m.gameState.Score)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if m.showScores {
		return m.scores.View(m.config.ScreenW) + "\n" + footer
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footer
}

// GameState returns the state reported by the last step.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game *tetris.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
