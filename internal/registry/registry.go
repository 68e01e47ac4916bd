// Package registry provides a global registry of game modes. Modes
// register themselves in init(), allowing the CLI and TUI to discover
// them without hardcoded lists.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tenpair/internal/engine"
)

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID          engine.Mode
	Title       string
	Description string
}

var (
	mu    sync.RWMutex
	modes = make(map[engine.Mode]ModeInfo)
)

// Register adds a mode to the registry.
// Panics if a mode with the same ID is already registered.
func Register(info ModeInfo) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	modes[info.ID] = info
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for _, info := range modes {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[engine.Mode(id)]
	return ok
}

// Info returns the metadata for a mode ID.
// Returns an error if the mode is not registered.
func Info(id string) (ModeInfo, error) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := modes[engine.Mode(id)]
	if !ok {
		return ModeInfo{}, fmt.Errorf("registry: unknown mode %q", id)
	}
	return info, nil
}

// NewSession creates a session for the given mode ID.
// Returns an error if the mode is not registered or the rules are invalid.
func NewSession(id string, rules engine.Rules, rng *rand.Rand) (*engine.Session, error) {
	info, err := Info(id)
	if err != nil {
		return nil, err
	}
	return engine.NewSession(info.ID, rules, rng)
}

func init() {
	Register(ModeInfo{
		ID:          engine.ModeClassic,
		Title:       "Classic",
		Description: "Deterministic deal from the cyclic 1-19 pool",
	})
	Register(ModeInfo{
		ID:          engine.ModeRandom,
		Title:       "Random",
		Description: "Pool deal with shuffled positions, random draws",
	})
	Register(ModeInfo{
		ID:          engine.ModeChaotic,
		Title:       "Chaotic",
		Description: "Uniform 1-9 values, draws double the live cells",
	})
}
