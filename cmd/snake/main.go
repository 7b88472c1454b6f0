// snake is the classic snake game for the terminal, playable locally or
// over SSH.
//
// Usage:
//
//	snake play                  - Play in this terminal
//	snake serve                 - Start SSH server for remote play
//	snake save list|show|clear  - Inspect or drop saved games
//	snake difficulties          - List difficulty presets
//	snake sim --moves RRUU.     - Run the simulator headless
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/config.yaml)
//	--db <path>         - Save database path
//	--fps <rate>        - Frame rate
//	--seed <value>      - RNG seed for reproducible apple placement
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic grid game for the terminal.

Steer the snake to the apple, grow, and avoid the walls and your own tail.
A game paused or left mid-way is saved and resumed next time.

Available commands:
  play          - Play in this terminal
  serve         - Start SSH server for remote play
  save          - Show or clear saved games
  difficulties  - List difficulty presets
  sim           - Run the simulator without a UI

Examples:
  snake play
  snake play --difficulty hard --new
  snake serve --ssh :2222
  snake sim --moves RRRUUU...`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to save database (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Save.DBPath = flagDBPath
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// applyDifficulty overrides the configured difficulty when name is set.
func applyDifficulty(cfg *config.Config, name string) error {
	if name == "" {
		return nil
	}
	d, err := config.ParseDifficulty(name)
	if err != nil {
		return err
	}
	cfg.Difficulty = d
	return nil
}
