// Package config provides YAML-based configuration loading for the
// tetris platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all runtime configuration. Game rules such as the
// grid size and fall speeds are fixed and not configurable.
type TetrisConfig struct {
	Platform PlatformConfig `yaml:"platform"`
	SSH      SSHConfig      `yaml:"ssh"`
	Log      LogConfig      `yaml:"log"`
	Keys     KeysConfig     `yaml:"keys"`
}

// PlatformConfig defines the simulation loop and persistence settings.
type PlatformConfig struct {
	TickRate int    `yaml:"tick_rate"` // Steps per second
	DBPath   string `yaml:"db_path"`
	Seed     int64  `yaml:"seed"` // 0 picks a time-based seed
}

// SSHConfig defines the SSH server settings.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// KeysConfig lists the terminal key names bound to each action.
type KeysConfig struct {
	Left      []string `yaml:"left"`
	Right     []string `yaml:"right"`
	RotateCW  []string `yaml:"rotate_cw"`
	RotateCCW []string `yaml:"rotate_ccw"`
	Drop      []string `yaml:"drop"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Scores    []string `yaml:"scores"`
	Quit      []string `yaml:"quit"`
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate reports every invalid setting.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Platform.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("config: tick_rate must be positive, got %d", c.Platform.TickRate))
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("config: idle_timeout_minutes must not be negative, got %d", c.SSH.IdleTimeoutMinutes))
	}
	if c.Log.Level != "" && !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("config: unknown log level %q", c.Log.Level))
	}

	bindings := []struct {
		name string
		keys []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"rotate_cw", c.Keys.RotateCW},
		{"rotate_ccw", c.Keys.RotateCCW},
		{"drop", c.Keys.Drop},
		{"pause", c.Keys.Pause},
		{"restart", c.Keys.Restart},
		{"scores", c.Keys.Scores},
		{"quit", c.Keys.Quit},
	}
	seen := make(map[string]string)
	for _, b := range bindings {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("config: no keys bound to %s", b.name))
		}
		for _, k := range b.keys {
			if prev, ok := seen[k]; ok && prev != b.name {
				errs = append(errs, fmt.Errorf("config: key %q bound to both %s and %s", k, prev, b.name))
			}
			seen[k] = b.name
		}
	}

	return errors.Join(errs...)
}
