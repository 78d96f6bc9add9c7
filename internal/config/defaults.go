package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded configuration used when no
// file, not even the embedded one, can be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Platform: PlatformConfig{
			TickRate: 100,
			DBPath:   "~/.tetris/scores.db",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
		Keys: KeysConfig{
			Left:      []string{"left", "a", "h"},
			Right:     []string{"right", "d", "l"},
			RotateCW:  []string{"up", "w", "x"},
			RotateCCW: []string{"z", "ctrl+z"},
			Drop:      []string{" ", "down", "s"},
			Pause:     []string{"p", "esc"},
			Restart:   []string{"r"},
			Scores:    []string{"tab"},
			Quit:      []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
