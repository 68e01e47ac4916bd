// tenpair is a terminal number-matching puzzle.
//
// Usage:
//
//	tenpair play [mode]      - Play a game (mode picker when omitted)
//	tenpair modes            - List available supply modes
//	tenpair results          - Show recent game results
//	tenpair serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible deals
//	--db <path>     - Set database path
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tenpair",
	Short: "Ten Pair - a number-matching puzzle in your terminal",
	Long: `Ten Pair is a terminal puzzle: clear pairs of equal numbers, or
numbers that sum to ten, from a growing grid until you reach the
target score.

Available commands:
  play     - Play a game
  modes    - Show available supply modes
  results  - View recent game results
  serve    - Start SSH server for remote play

Examples:
  tenpair play
  tenpair play classic
  tenpair play chaotic --seed 42
  tenpair results
  tenpair serve --ssh :2222`,
}

func init() {
	defaultDB := filepath.Join(xdg.DataHome, "tenpair", "results.db")

	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDB, "Path to results database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
