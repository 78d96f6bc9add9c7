package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Cell is a grid position.
type Cell struct {
	Row, Col int
}

// Snapshot captures the observable game state for determinism tests and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	HighScore   int
	Level       int
	Speed       int
	Preview     engine.Shape
	ActiveShape engine.Shape
	Active      []Cell
	Placed      int
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.state.GameEnd:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	active := make([]Cell, 0, len(g.state.ActiveBlock))
	var shape engine.Shape
	for _, c := range g.state.ActiveBlock {
		active = append(active, Cell{Row: c.Row, Col: c.Col})
		shape = c.Shape
	}

	return Snapshot{
		Tick:        g.tick,
		Score:       g.state.Score,
		HighScore:   g.state.HighScore,
		Level:       g.state.Level,
		Speed:       engine.Speed(g.state.Level),
		Preview:     g.state.ShapePreview,
		ActiveShape: shape,
		Active:      active,
		Placed:      len(g.state.Grid.Cubes()),
		State:       state,
	}
}
