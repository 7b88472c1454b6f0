package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty presets",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("Difficulty presets (time per cell):")
		fmt.Println()
		for _, d := range config.Difficulties() {
			marker := " "
			if d == config.DefaultDifficulty {
				marker = "*"
			}
			fmt.Printf(" %s %-12s %v\n", marker, d, d.Interval())
		}
		fmt.Println()
		fmt.Println("Use: snake play --difficulty <name>")
	},
}
