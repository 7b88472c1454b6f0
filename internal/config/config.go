// Package config provides YAML-based configuration loading and the
// difficulty presets for the snake game.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for the snake game and its front ends.
type Config struct {
	BoardSize   int        `yaml:"board_size"`
	Difficulty  Difficulty `yaml:"difficulty"`
	FPS         int        `yaml:"fps"`
	DoubleTapMS int        `yaml:"double_tap_ms"`
	Save        SaveConfig `yaml:"save"`
	Log         LogConfig  `yaml:"log"`
	SSH         SSHConfig  `yaml:"ssh"`
}

// SaveConfig locates the save database and the slot the local player uses.
type SaveConfig struct {
	DBPath string `yaml:"db_path"`
	Slot   string `yaml:"slot"`
}

// LogConfig defines logger verbosity and destination.
// An empty File logs to stderr.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSHConfig defines the SSH server front end.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	MetricsAddress     string `yaml:"metrics_address"`
}

// Board size limits accepted by Validate.
const (
	MinBoardSize = 4
	MaxBoardSize = 64
)

// DoubleTap returns the double-tap pause window.
func (c Config) DoubleTap() time.Duration {
	return time.Duration(c.DoubleTapMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.BoardSize < MinBoardSize || c.BoardSize > MaxBoardSize {
		return fmt.Errorf("config: board_size %d out of range [%d, %d]", c.BoardSize, MinBoardSize, MaxBoardSize)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.DoubleTapMS < 0 {
		return fmt.Errorf("config: double_tap_ms must not be negative, got %d", c.DoubleTapMS)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("config: %w %q", ErrUnknownDifficulty, c.Difficulty)
	}
	return nil
}
