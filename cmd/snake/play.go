package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagDifficulty string
	flagNew        bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Steer, move through menus
  Mouse click  - Steer toward the click; double click pauses
  Enter        - Select
  Esc/B        - Back
  P            - Pause / resume
  ?            - Toggle help
  Q/Ctrl+C     - Quit (a running game is saved)

A saved game is restored paused. Use --new to discard it.

Examples:
  snake play
  snake play --difficulty stupid_hard
  snake play --new`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty in the start menu")
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Discard any saved game")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyDifficulty(&cfg, flagDifficulty); err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play needs an interactive terminal")
	}
	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
		// One extra row for the help footer
		if minW, minH := snake.MinScreenSize(cfg.BoardSize); w < minW || h < minH+1 {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, minW, minH+1)
		}
	}

	// The TUI owns the terminal, so logs go to the configured file.
	logger, closer, err := logging.New(cfg.Log, "snake")
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := snake.GameOptions{
		Logger:     logger,
		BoardSize:  cfg.BoardSize,
		Difficulty: cfg.Difficulty,
		Seed:       flagSeed,
		DoubleTap:  cfg.DoubleTap(),
	}

	store, err := storage.Open(cfg.Save.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save database: %v\n", err)
		logger.Warn("playing without saves", "error", err)
	} else {
		defer store.Close()
		slot := store.Slot(cfg.Save.Slot)
		if flagNew {
			if err := slot.Remove(); err != nil {
				return err
			}
		}
		opts.Saver = slot
	}

	game := snake.NewGame(opts)
	logger.Info("starting", "slot", cfg.Save.Slot, "state", game.State())
	return tui.Run(game, cfg.FPS)
}
