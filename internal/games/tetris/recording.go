package tetris

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Recorded action kinds.
const (
	kindGenerate = "generate"
	kindTick     = "tick"
	kindMove     = "move"
	kindRotate   = "rotate"
	kindDrop     = "drop"
	kindRestart  = "restart"
)

// RecordedAction is the serialized form of one engine action.
type RecordedAction struct {
	Kind  string `yaml:"kind"`
	Value int    `yaml:"value,omitempty"`
}

// Recording is every action folded since Reset, enough to rebuild the
// final state without the random stream. RunID names the run the
// recording started with; restarts inside it keep recording.
type Recording struct {
	RunID     string           `yaml:"run_id"`
	Seed      uint64           `yaml:"seed"`
	HighScore int              `yaml:"high_score,omitempty"`
	Actions   []RecordedAction `yaml:"actions"`
}

func (r *Recording) add(a engine.Action) {
	r.Actions = append(r.Actions, recordAction(a))
}

// recordAction converts an engine action to its serialized form.
func recordAction(a engine.Action) RecordedAction {
	switch a := a.(type) {
	case engine.GenerateBlock:
		return RecordedAction{Kind: kindGenerate, Value: a.Index}
	case engine.Tick:
		return RecordedAction{Kind: kindTick, Value: a.Elapsed}
	case engine.Move:
		return RecordedAction{Kind: kindMove, Value: a.Direction}
	case engine.Rotate:
		return RecordedAction{Kind: kindRotate, Value: int(a.Direction)}
	case engine.Drop:
		return RecordedAction{Kind: kindDrop}
	case engine.Restart:
		return RecordedAction{Kind: kindRestart}
	default:
		return RecordedAction{Kind: a.String()}
	}
}

// Action converts the record back to an engine action.
func (r RecordedAction) Action() (engine.Action, error) {
	switch r.Kind {
	case kindGenerate:
		return engine.GenerateBlock{Index: r.Value}, nil
	case kindTick:
		return engine.Tick{Elapsed: r.Value}, nil
	case kindMove:
		return engine.Move{Direction: r.Value}, nil
	case kindRotate:
		switch engine.Rotation(r.Value) {
		case engine.Clockwise, engine.Anticlockwise:
			return engine.Rotate{Direction: engine.Rotation(r.Value)}, nil
		}
		return nil, fmt.Errorf("tetris: invalid rotation %d", r.Value)
	case kindDrop:
		return engine.Drop{}, nil
	case kindRestart:
		return engine.Restart{}, nil
	default:
		return nil, fmt.Errorf("tetris: unknown action kind %q", r.Kind)
	}
}

// EngineActions decodes every recorded action.
func (r Recording) EngineActions() ([]engine.Action, error) {
	actions := make([]engine.Action, 0, len(r.Actions))
	for i, ra := range r.Actions {
		a, err := ra.Action()
		if err != nil {
			return nil, fmt.Errorf("tetris: action %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// SaveRecording writes rec to path as YAML.
func SaveRecording(path string, rec Recording) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("tetris: failed to encode recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("tetris: failed to write recording %s: %w", path, err)
	}
	return nil
}

// LoadRecording reads a recording and validates every action kind.
func LoadRecording(path string) (Recording, error) {
	var rec Recording
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("tetris: failed to read recording %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("tetris: failed to parse recording %s: %w", path, err)
	}
	if _, err := rec.EngineActions(); err != nil {
		return rec, fmt.Errorf("tetris: invalid recording %s: %w", path, err)
	}
	return rec, nil
}

// Replay folds the recorded actions from a fresh state.
func Replay(rec Recording) (engine.State, error) {
	actions, err := rec.EngineActions()
	if err != nil {
		return engine.State{}, err
	}
	s := engine.InitialState().WithHighScore(rec.HighScore)
	return engine.Fold(s, actions...), nil
}
