package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gems/internal/games/gems"
)

var (
	flagSimMoves int
	flagSimQuiet bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Autoplay a board without a terminal",
	Long: `Deals a board with the endless palette and plays the first available
hint again and again, printing every move and its cascades. Useful to
check a config or difficulty without playing.

Examples:
  gems simulate
  gems simulate --moves 200 --seed 42
  gems simulate --config ./hard.yaml --quiet`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 50, "Number of swaps to play")
	simulateCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Only print the summary")
}

func runSimulate(_ *cobra.Command, _ []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	onMove := func(m gems.SimMove) {
		if flagSimQuiet {
			return
		}
		reshuffled := ""
		if m.Reshuffled {
			reshuffled = "  (reshuffled)"
		}
		fmt.Printf("%4d  %s <-> %s  removed %3d  chains %d  +%d%s\n",
			m.N, m.From, m.To, m.Removed, m.Chains, m.Points, reshuffled)
	}

	sum, err := gems.Simulate(gems.GetConfig(), seed, flagSimMoves, onMove)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Seed:          %d\n", seed)
	fmt.Printf("Board:         %d x %d, %d gems\n", sum.BoardDim.Columns, sum.BoardDim.Rows, sum.Palette)
	fmt.Printf("Score:         %d\n", sum.Score)
	fmt.Printf("Moves:         %d\n", sum.Stats.Moves)
	fmt.Printf("Tiles cleared: %d\n", sum.Stats.TilesCleared)
	fmt.Printf("Longest chain: %d\n", sum.Stats.LongestChain)
	fmt.Printf("Reshuffles:    %d\n", sum.Stats.Reshuffles)
	if sum.Stuck {
		fmt.Println("Stopped early: no playable board")
	}

	// Final is bottom row first
	fmt.Println()
	for i := len(sum.Final) - 1; i >= 0; i-- {
		fmt.Printf("  %s\n", sum.Final[i])
	}
}
