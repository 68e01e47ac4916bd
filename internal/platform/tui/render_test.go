package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tenpair/internal/engine"
)

// hudSession restores a session over a prepared board for HUD tests.
func hudSession(t *testing.T, cells []int) *engine.Session {
	t.Helper()
	st := engine.SessionState{
		Mode:   engine.ModeClassic,
		Rules:  engine.DefaultRules(),
		Cells:  cells,
		Quotas: engine.Quotas{AddNumbers: 10, Shuffle: 5, Eraser: 5},
	}
	s, err := engine.Restore(st, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	return s
}

func TestHUDPairCountCapped(t *testing.T) {
	// A full row of fives has more pairs than the hint cap; the HUD
	// must show "5+" instead of an exact count.
	s := hudSession(t, []int{5, 5, 5, 5, 5, 5, 5, 5, 5})

	hud := renderHUD(s, 0)
	if !strings.Contains(hud, "Pairs 5+") {
		t.Errorf("HUD %q should show the capped pair count as 5+", hud)
	}
}

func TestHUDPairCountExact(t *testing.T) {
	s := hudSession(t, []int{5, 5, 0, 0, 0, 0, 0, 0, 0})

	hud := renderHUD(s, 0)
	if !strings.Contains(hud, "Pairs 1 ") {
		t.Errorf("HUD %q should show the exact pair count 1", hud)
	}
	if strings.Contains(hud, "+") {
		t.Errorf("HUD %q should not cap a below-threshold count", hud)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "zero", d: 0, want: "00:00"},
		{name: "seconds only", d: 42 * time.Second, want: "00:42"},
		{name: "minutes and seconds", d: 65 * time.Second, want: "01:05"},
		{name: "over an hour keeps counting minutes", d: 61 * time.Minute, want: "61:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatElapsed(tt.d); got != tt.want {
				t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
