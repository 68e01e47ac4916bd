package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestResultsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.SaveResult(ResultEntry{
			Mode:       "classic",
			Score:      100 + i,
			Result:     "win",
			Moves:      40 + i,
			Duration:   120,
			FinishedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.RecentResults(0)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	// Newest first
	if results[0].Score != 102 || results[2].Score != 100 {
		t.Errorf("results out of order: %d, %d, %d",
			results[0].Score, results[1].Score, results[2].Score)
	}
	if results[0].Mode != "classic" || results[0].Result != "win" {
		t.Errorf("record fields lost: %+v", results[0])
	}
}

func TestResultsPrunedToRetentionLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < resultHistoryLimit+5; i++ {
		_, err := store.SaveResult(ResultEntry{
			Mode:       "chaotic",
			Score:      i,
			Result:     "lose",
			Moves:      i,
			FinishedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.RecentResults(0)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != resultHistoryLimit {
		t.Fatalf("got %d results, want pruned to %d", len(results), resultHistoryLimit)
	}

	// The oldest five records are gone; the newest survives.
	if results[0].Score != resultHistoryLimit+4 {
		t.Errorf("newest score = %d, want %d", results[0].Score, resultHistoryLimit+4)
	}
	if results[len(results)-1].Score != 5 {
		t.Errorf("oldest kept score = %d, want 5", results[len(results)-1].Score)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("empty store best = %d, want 0", best)
	}

	for _, score := range []int{101, 104, 100} {
		if _, err := store.SaveResult(ResultEntry{Mode: "classic", Score: score, Result: "win"}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 104 {
		t.Errorf("best = %d, want 104", best)
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(ResultEntry{Mode: "random", Score: 42, Result: "lose"}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, err := store.RecentResults(0)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results after clear, want 0", len(results))
	}
}

func TestSessionSaveLoadDelete(t *testing.T) {
	store := openTestStore(t)

	// Empty slot loads as nil without error.
	state, err := store.LoadSession("current")
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if state != nil {
		t.Errorf("empty slot returned %q", state)
	}

	blob := []byte("mode: classic\nscore: 12\n")
	if err := store.SaveSession("current", blob); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	state, err = store.LoadSession("current")
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if string(state) != string(blob) {
		t.Errorf("loaded %q, want %q", state, blob)
	}

	// Overwrite replaces, not stacks.
	blob2 := []byte("mode: classic\nscore: 30\n")
	if err := store.SaveSession("current", blob2); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	state, err = store.LoadSession("current")
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if string(state) != string(blob2) {
		t.Errorf("loaded %q, want %q", state, blob2)
	}

	if err := store.DeleteSession("current"); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}
	state, err = store.LoadSession("current")
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if state != nil {
		t.Error("slot should be empty after delete")
	}
}

func TestResultLimitParameter(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 10; i++ {
		entry := ResultEntry{
			Mode:   "classic",
			Score:  i,
			Result: "lose",
			FinishedAt: time.Date(2025, 10, 1, 10, i, 0, 0, time.UTC),
		}
		if _, err := store.SaveResult(entry); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	for _, limit := range []int{1, 5, 10} {
		results, err := store.RecentResults(limit)
		if err != nil {
			t.Fatalf("RecentResults(%d) failed: %v", limit, err)
		}
		if len(results) != limit {
			t.Errorf("RecentResults(%d) returned %d entries", limit, len(results))
		}
	}

	// Requests beyond the retention limit are clamped.
	results, err := store.RecentResults(500)
	if err != nil {
		t.Fatalf("RecentResults(500) failed: %v", err)
	}
	if len(results) != 10 {
		t.Errorf("got %d entries, want all 10", len(results))
	}
}
