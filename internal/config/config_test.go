package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDifficultyIntervals(t *testing.T) {
	tests := []struct {
		d        Difficulty
		expected time.Duration
	}{
		{DifficultyPlacebo, 2000 * time.Millisecond},
		{DifficultyVeryEasy, 800 * time.Millisecond},
		{DifficultyEasy, 400 * time.Millisecond},
		{DifficultyMedium, 200 * time.Millisecond},
		{DifficultyHard, 100 * time.Millisecond},
		{DifficultyStupidHard, 50 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			if got := tc.d.Interval(); got != tc.expected {
				t.Errorf("Interval() = %v, expected %v", got, tc.expected)
			}
		})
	}

	if got := Difficulty("Nightmare").Interval(); got != DefaultDifficulty.Interval() {
		t.Errorf("unknown difficulty interval = %v, expected default", got)
	}
}

func TestDifficultiesOrder(t *testing.T) {
	ds := Difficulties()
	if len(ds) != 6 {
		t.Fatalf("expected 6 presets, got %d", len(ds))
	}
	for i := 1; i < len(ds); i++ {
		if ds[i].Interval() >= ds[i-1].Interval() {
			t.Errorf("presets should get faster: %v (%v) after %v (%v)",
				ds[i], ds[i].Interval(), ds[i-1], ds[i-1].Interval())
		}
	}

	// Callers must not be able to reorder the menu.
	ds[0] = DifficultyHard
	if Difficulties()[0] != DifficultyPlacebo {
		t.Error("Difficulties() should return a copy")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
	}{
		{"Medium", DifficultyMedium},
		{"medium", DifficultyMedium},
		{"Stupid_Hard", DifficultyStupidHard},
		{"StupidHard", DifficultyStupidHard},
		{"stupid-hard", DifficultyStupidHard},
		{"very easy", DifficultyVeryEasy},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if err != nil {
			t.Errorf("ParseDifficulty(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	_, err := ParseDifficulty("Nightmare")
	if !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestParseEmbeddedDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default differs from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte("board_size: 12\ndifficulty: stupid-hard\nssh:\n  address: \":2222\"\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.BoardSize != 12 {
		t.Errorf("BoardSize = %d, expected 12", cfg.BoardSize)
	}
	if cfg.Difficulty != DifficultyStupidHard {
		t.Errorf("Difficulty = %v, expected Stupid_Hard", cfg.Difficulty)
	}
	if cfg.SSH.Address != ":2222" {
		t.Errorf("SSH.Address = %q, expected :2222", cfg.SSH.Address)
	}
	// Untouched values keep defaults
	if cfg.FPS != 60 || cfg.SSH.IdleTimeoutMinutes != 30 {
		t.Errorf("defaults not preserved: fps=%d idle=%d", cfg.FPS, cfg.SSH.IdleTimeoutMinutes)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"board too small", "board_size: 2\n"},
		{"board too large", "board_size: 100\n"},
		{"zero fps", "fps: 0\n"},
		{"unknown difficulty", "difficulty: Nightmare\n"},
		{"negative double tap", "double_tap_ms: -1\n"},
		{"malformed yaml", "board_size: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("difficulty: Hard\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %v, expected Hard", cfg.Difficulty)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DoubleTap() != 300*time.Millisecond {
		t.Errorf("DoubleTap() = %v", cfg.DoubleTap())
	}
	if cfg.SSH.IdleTimeout() != 30*time.Minute {
		t.Errorf("IdleTimeout() = %v", cfg.SSH.IdleTimeout())
	}
}
