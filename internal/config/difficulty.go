package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned when a difficulty name matches no preset.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty is a named tick-interval preset controlling game speed.
type Difficulty string

const (
	DifficultyPlacebo    Difficulty = "Placebo"
	DifficultyVeryEasy   Difficulty = "Very_Easy"
	DifficultyEasy       Difficulty = "Easy"
	DifficultyMedium     Difficulty = "Medium"
	DifficultyHard       Difficulty = "Hard"
	DifficultyStupidHard Difficulty = "Stupid_Hard"
)

// DefaultDifficulty is selected on the start menu when nothing else is configured.
const DefaultDifficulty = DifficultyMedium

// difficulties is the start menu order, slowest first.
var difficulties = []Difficulty{
	DifficultyPlacebo,
	DifficultyVeryEasy,
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyStupidHard,
}

var intervals = map[Difficulty]time.Duration{
	DifficultyPlacebo:    2000 * time.Millisecond,
	DifficultyVeryEasy:   800 * time.Millisecond,
	DifficultyEasy:       400 * time.Millisecond,
	DifficultyMedium:     200 * time.Millisecond,
	DifficultyHard:       100 * time.Millisecond,
	DifficultyStupidHard: 50 * time.Millisecond,
}

// Difficulties returns all presets in menu order.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// ParseDifficulty resolves a preset name. Matching ignores case,
// underscores, dashes and spaces, so "stupid-hard" and "StupidHard" both work.
func ParseDifficulty(name string) (Difficulty, error) {
	key := normalizeName(name)
	for _, d := range difficulties {
		if normalizeName(string(d)) == key {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownDifficulty, name)
}

// Interval returns the time between simulation steps for this preset.
// Unknown values fall back to the default difficulty's interval.
func (d Difficulty) Interval() time.Duration {
	if iv, ok := intervals[d]; ok {
		return iv
	}
	return intervals[DefaultDifficulty]
}

// Valid reports whether d is one of the presets.
func (d Difficulty) Valid() bool {
	_, ok := intervals[d]
	return ok
}

// Label returns the display name with underscores turned into spaces.
func (d Difficulty) Label() string {
	return strings.ReplaceAll(string(d), "_", " ")
}

func (d Difficulty) String() string {
	return string(d)
}

func normalizeName(s string) string {
	r := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}
