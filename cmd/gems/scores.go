package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gems/internal/registry"
	"github.com/vovakirdan/tui-gems/internal/storage"
)

var (
	flagClearScores bool
	flagRecentRuns  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a mode, or a summary of every mode
when no mode is given.

Examples:
  gems scores
  gems scores gems
  gems scores gems_endless --runs 5
  gems scores gems --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and runs of the mode")
	scoresCmd.Flags().IntVar(&flagRecentRuns, "runs", 0, "Also list this many recent runs")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gems levels' to see available modes.")
		os.Exit(1)
	}

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scores for %s cleared.\n", gameID)
		return
	}

	printTopScores(store, gameID)
	if flagRecentRuns > 0 {
		printRecentRuns(store, gameID, flagRecentRuns)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-14s  %6s  %8s  %8s  %5s\n", "Mode", "Games", "Best", "Tiles", "Chain")
	fmt.Printf("  %-14s  %6s  %8s  %8s  %5s\n", "----", "-----", "----", "-----", "-----")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-14s  %6d  %8s  %8s  %5s\n", g.ID, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-14s  %6d  %8d  %8d  %5d\n", g.ID, st.GamesCount, st.HighScore, st.TilesCleared, st.BestChain)
	}
}

func printTopScores(store *storage.Store, gameID string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", gameID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gems play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-14s  %-10d  %s\n", i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d", best)
		if chain, err := store.BestChain(gameID); err == nil && chain > 0 {
			fmt.Printf("  |  Longest chain: %d", chain)
		}
		fmt.Println()
	}
}

func printRecentRuns(store *storage.Store, gameID string, limit int) {
	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		fmt.Printf("  %s  %-14s  score %-6d  level %-2d  moves %-3d  tiles %-4d  chain %d  reshuffles %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Player, r.Score, r.Level, r.Moves, r.TilesCleared, r.LongestChain, r.Reshuffles)
	}
}
