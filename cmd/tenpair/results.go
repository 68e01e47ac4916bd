package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tenpair/internal/platform/tui"
	"github.com/vovakirdan/tui-tenpair/internal/storage"
)

var (
	flagResultsTUI   bool
	flagResultsClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recent game results",
	Long: `Display the most recent finished games, newest first.

Examples:
  tenpair results
  tenpair results --tui
  tenpair results --clear`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagResultsTUI, "tui", false, "Browse results in an interactive table")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete all recorded results")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResultsClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Results cleared.")
		return
	}

	if flagResultsTUI {
		if err := tui.RunResults(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.RecentResults(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent results")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No finished games yet.")
		fmt.Println()
		fmt.Println("Play 'tenpair play' to record the first result!")
		return
	}

	fmt.Printf("  %-9s  %-6s  %-6s  %-6s  %-6s  %s\n", "Mode", "Result", "Score", "Moves", "Time", "Finished")
	fmt.Printf("  %-9s  %-6s  %-6s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "--------")

	for _, r := range results {
		elapsed := fmt.Sprintf("%02d:%02d", r.Duration/60, r.Duration%60)
		dateStr := r.FinishedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-9s  %-6s  %-6d  %-6d  %-6s  %s\n", r.Mode, r.Result, r.Score, r.Moves, elapsed, dateStr)
	}

	if best, err := store.BestScore(); err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
