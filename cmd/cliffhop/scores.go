package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/velikanov/cliffhop/internal/registry"
	"github.com/velikanov/cliffhop/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best runs for a mode",
	Long: `Display the top 10 runs recorded for the specified mode.
With no argument, shows a summary across all modes.

Examples:
  cliffhop scores
  cliffhop scores cliff
  cliffhop scores cliff_zen`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresSummary()
		return
	}
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cliffhop list' to see available modes.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}

	// Get top runs
	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Display runs
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cliffhop play %s' to set the first record!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %s\n", "Rank", "Score", "Time", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %s\n", "----", "-----", "----", "----", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6s  %-10d  %s\n",
			i+1, entry.Score, formatTicks(entry.Ticks), entry.Seed, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	if stats, statsErr := store.Stats(gameID); statsErr == nil && stats != nil {
		fmt.Printf("Runs: %d  Best: %d  Avg: %.0f\n", stats.Runs, stats.HighScore, stats.AvgScore)
	}
}

// runScoresSummary prints one aggregate line per mode that has runs.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cliffhop play' to set the first record!")
		return
	}

	fmt.Println("Recorded runs by mode:")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %-9s  %s\n", "Mode", "Runs", "Best", "Avg", "Played", "Last")
	fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %-9s  %s\n", "----", "----", "----", "---", "------", "----")

	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-8d  %-8.0f  %-9s  %s\n",
			g.ID, stats.Runs, stats.HighScore, stats.AvgScore,
			formatTicks(int(stats.TotalTicks)), stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'cliffhop scores <id>' for a mode's full table.")
}

// formatTicks renders a tick count as m:ss of play time at the standard rate.
func formatTicks(ticks int) string {
	secs := ticks / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
