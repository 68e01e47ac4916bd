package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tenpair/internal/config"
	"github.com/vovakirdan/tui-tenpair/internal/engine"
	"github.com/vovakirdan/tui-tenpair/internal/platform/tui"
	"github.com/vovakirdan/tui-tenpair/internal/registry"
	"github.com/vovakirdan/tui-tenpair/internal/storage"
)

var (
	flagConfig string
	flagResume bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start a game in the given supply mode. With no mode argument an
interactive picker is shown.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Select a cell
  A            - Add numbers
  S            - Shuffle
  E            - Eraser (then select a cell)
  U            - Undo last move
  N            - New game
  Q/Ctrl+C     - Quit (in-progress games are saved)

Examples:
  tenpair play
  tenpair play classic
  tenpair play random --seed 42
  tenpair play --resume
  tenpair play classic --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the last saved game")
}

func runPlay(cmd *cobra.Command, args []string) {
	rulesCfg, err := config.LoadRules(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}
	rules := rulesCfg.Rules()

	// Each cell renders three columns wide inside a padded border.
	minWidth := rules.Cols*3 + 4
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && w < minWidth {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %d columns wide, the board needs %d\n", w, minWidth)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var session *engine.Session

	switch {
	case flagResume:
		session = loadSavedSession(store, rng)
		if session == nil {
			fmt.Fprintln(os.Stderr, "No saved game to resume.")
			os.Exit(1)
		}

	case len(args) == 1:
		mode := args[0]
		if !registry.Exists(mode) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
			fmt.Fprintln(os.Stderr, "Run 'tenpair modes' to see available modes.")
			os.Exit(1)
		}
		session, err = registry.NewSession(mode, rules, rng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
			os.Exit(1)
		}

	default:
		info, pickErr := tui.RunModePicker()
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		if info == nil {
			// User quit the picker
			return
		}
		session, err = registry.NewSession(string(info.ID), rules, rng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
			os.Exit(1)
		}
	}

	if runErr := tui.Run(session, store, tui.LocalSessionSlot); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadSavedSession restores the local resume slot, or nil when there is
// no saved game or it cannot be restored.
func loadSavedSession(store *storage.Store, rng *rand.Rand) *engine.Session {
	if store == nil {
		return nil
	}

	data, err := store.LoadSession(tui.LocalSessionSlot)
	if err != nil || data == nil {
		return nil
	}

	var state engine.SessionState
	if err := yaml.Unmarshal(data, &state); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saved game is corrupt: %v\n", err)
		return nil
	}

	session, err := engine.Restore(state, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saved game is invalid: %v\n", err)
		return nil
	}

	return session
}
