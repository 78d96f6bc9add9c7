// Package tetris adapts the pure engine to the platform's registry.Game
// contract. It turns platform input into engine actions, keeps the
// id-keyed sprite scene in step with each state and draws the board.
package tetris

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "tetris"

// Game implements registry.Game on top of engine.State.
type Game struct {
	state  engine.State
	stream *engine.Stream
	scene  *Scene

	runID     string
	tick      uint64
	elapsed   int
	paused    bool
	highScore int

	recording Recording

	screenW int
	screenH int
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a game. Reset must be called before the first Step.
func New() *Game {
	return &Game{
		state:  engine.InitialState(),
		stream: engine.NewStream(0),
		scene:  NewScene(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// SetHighScore seeds the best known score, usually loaded from storage.
// It survives Reset.
func (g *Game) SetHighScore(high int) {
	g.highScore = max(g.highScore, high)
	g.state = g.state.WithHighScore(g.highScore)
}

// Reset starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := uint64(cfg.Seed)

	g.state = engine.InitialState().WithHighScore(g.highScore)
	g.stream.Restart(seed)
	g.scene = NewScene()
	g.scene.Apply(g.state)

	g.runID = uuid.NewString()
	g.tick = 0
	g.elapsed = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.recording = Recording{
		RunID:     g.runID,
		Seed:      seed,
		HighScore: g.highScore,
	}

	logger.Debug("run started", "run", g.runID, "seed", seed)
}

// Step folds one frame of input into the engine.
// The batch order is GenerateBlock, player actions, then Tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.state.GameEnd {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.elapsed += engine.TickRate

	before := g.state
	for _, a := range g.batch(in) {
		g.apply(a)
	}
	g.highScore = max(g.highScore, g.state.HighScore)
	if before.GameEnd && !g.state.GameEnd {
		g.runID = uuid.NewString()
	}
	g.logTransition(before, g.state)

	return core.StepResult{
		State:   g.State(),
		Cleared: clearedRows(before, g.state),
	}
}

// batch builds the engine actions for one frame.
func (g *Game) batch(in core.InputFrame) []engine.Action {
	actions := []engine.Action{
		engine.GenerateBlock{Index: g.stream.NextShapeIndex()},
	}
	if in.Has(core.ActionLeft) {
		actions = append(actions, engine.Move{Direction: -1})
	}
	if in.Has(core.ActionRight) {
		actions = append(actions, engine.Move{Direction: 1})
	}
	if in.Has(core.ActionRotateCW) {
		actions = append(actions, engine.Rotate{Direction: engine.Clockwise})
	}
	if in.Has(core.ActionRotateCCW) {
		actions = append(actions, engine.Rotate{Direction: engine.Anticlockwise})
	}
	if in.Has(core.ActionDrop) {
		actions = append(actions, engine.Drop{})
	}
	if in.Has(core.ActionRestart) {
		actions = append(actions, engine.Restart{})
	}
	return append(actions, engine.Tick{Elapsed: g.elapsed})
}

// apply reduces one action, syncs the scene and records the action.
func (g *Game) apply(a engine.Action) {
	g.state = engine.Reduce(g.state, a)
	if pruned := g.scene.Apply(g.state); pruned > 0 {
		logger.Debug("pruned orphaned sprites", "count", pruned)
	}
	g.recording.add(a)
}

// logTransition reports notable changes between two states.
func (g *Game) logTransition(before, after engine.State) {
	if n := clearedRows(before, after); n > 0 {
		logger.Debug("rows cleared", "rows", n, "score", after.Score)
	}
	if after.Level > before.Level {
		logger.Info("level up", "level", after.Level, "speed", engine.Speed(after.Level))
	}
	if after.GameEnd && !before.GameEnd {
		logger.Info("game over", "run", g.runID, "score", after.Score, "level", after.Level)
	}
	if before.GameEnd && !after.GameEnd {
		logger.Info("game restarted", "run", g.runID, "high", after.HighScore)
	}
}

// clearedRows infers the number of rows removed between two states from
// the score delta. Restart resets the score and reports zero.
func clearedRows(before, after engine.State) int {
	if after.Score <= before.Score {
		return 0
	}
	return (after.Score - before.Score) / engine.Columns
}

// State reports the platform view of the run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		GameOver: g.state.GameEnd,
		Paused:   g.paused,
	}
}

// Engine returns the current engine state.
func (g *Game) Engine() engine.State {
	return g.state
}

// Scene returns the sprite scene kept in step with the engine.
func (g *Game) Scene() *Scene {
	return g.scene
}

// RunID returns the identifier of the current run. A restart after game
// over starts a new run.
func (g *Game) RunID() string {
	return g.runID
}

// Recording returns a copy of every action folded since Reset.
func (g *Game) Recording() Recording {
	rec := g.recording
	rec.Actions = append([]RecordedAction(nil), g.recording.Actions...)
	return rec
}
