package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagMoves     string
	flagSimDiff   string
	flagSimQuiet  bool
	flagSimBoards bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulator headless from a move string",
	Long: `Run the snake simulator without a UI.

Each character of --moves is one tick. A direction letter (L, U, R, D) is
queued before the tick runs; '.' ticks without new input. Every tick prints
its outcome, and the final board is printed at the end.

Board legend: '@' head, 'o' body, '*' apple, '.' empty.

Examples:
  snake sim --moves RRRR
  snake sim --moves RRRRRRRRRR --boards
  snake sim --moves UUUUUUUUUUUU --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Move string of L/U/R/D and '.' (one tick each)")
	simCmd.Flags().StringVar(&flagSimDiff, "difficulty", "", "Difficulty recorded in the run")
	simCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Print only the final result")
	simCmd.Flags().BoolVar(&flagSimBoards, "boards", false, "Print the board after every tick")
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyDifficulty(&cfg, flagSimDiff); err != nil {
		return err
	}

	moves, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rec := snake.InitialRecordFor(cfg.Difficulty, cfg.BoardSize)
	sim, _, err := snake.NewSimFromRecord(rec, cfg.BoardSize, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	for i, a := range moves {
		if d := a.Direction(); d != core.DirNone {
			sim.Snake().TryQueueDirection(d)
		}

		out := sim.Step()
		if !flagSimQuiet {
			fmt.Printf("%3d %-5s %-8s head=%v score=%d\n", i+1, a, out, sim.Snake().Head(), sim.Score())
			if flagSimBoards {
				fmt.Println(sim.RenderText())
				fmt.Println()
			}
		}
		if sim.GameOver() {
			break
		}
	}

	fmt.Println(sim.RenderText())
	fmt.Printf("score=%d length=%d ticks=%d\n", sim.Score(), sim.Snake().Len(), sim.Ticks())
	if sim.GameOver() {
		return fmt.Errorf("game over after %d ticks", sim.Ticks())
	}
	return nil
}

// normalizeMoves uppercases a move string and drops whitespace.
func normalizeMoves(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' {
			return -1
		}
		return r
	}, strings.ToUpper(s))
}

// parseMoves turns a move string into one action per tick. '.' is
// ActionNone; letters go through the same intent mapping as key presses.
func parseMoves(s string) ([]core.Action, error) {
	moves := []rune(normalizeMoves(s))
	actions := make([]core.Action, 0, len(moves))
	for i, r := range moves {
		if r == '.' {
			actions = append(actions, core.ActionNone)
			continue
		}
		d, err := core.ParseDirection(string(r))
		if err != nil || d == core.DirNone {
			return nil, fmt.Errorf("move %d: invalid move %q", i+1, r)
		}
		actions = append(actions, core.ActionFor(d))
	}
	return actions, nil
}
