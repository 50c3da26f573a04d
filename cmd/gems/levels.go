package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gems/internal/config"
	"github.com/vovakirdan/tui-gems/internal/games/gems"
	"github.com/vovakirdan/tui-gems/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels and modes",
	Long: `Shows the campaign levels with the target score, move budget and
number of gem colours after the difficulty preset is applied.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := gems.GetConfig()
	dm := config.NewDifficultyManager(cfg.Difficulty, len(cfg.Palette))

	fmt.Printf("Board: %d x %d\n\n", cfg.Board.Columns, cfg.Board.Rows)
	fmt.Printf("  %-3s  %-12s  %6s  %5s  %4s\n", "#", "Name", "Target", "Moves", "Gems")
	fmt.Printf("  %-3s  %-12s  %6s  %5s  %4s\n", "--", "----", "------", "-----", "----")
	for _, lvl := range gems.Levels {
		palette := min(dm.PaletteSize(lvl.Palette, gems.Levels[0].Palette), len(cfg.Palette))
		fmt.Printf("  %-3d  %-12s  %6d  %5d  %4d\n",
			lvl.ID, lvl.Name, dm.Target(lvl.Target), dm.Moves(lvl.Moves), palette)
	}

	fmt.Println()
	fmt.Println("Modes:")
	for _, g := range registry.List() {
		fmt.Printf("  %-14s  %s\n", g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gems play --level <n>' to start at a level.")
}
