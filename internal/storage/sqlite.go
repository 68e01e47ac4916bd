// Package storage provides SQLite-based persistence for finished-game
// results and the saved session used by resume.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// resultHistoryLimit caps how many finished-game records are retained.
// Older records are pruned after every insert.
const resultHistoryLimit = 20

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ResultEntry is one finished-game record.
type ResultEntry struct {
	ID         int64
	Mode       string
	Score      int
	Result     string // "win" or "lose"
	Moves      int
	Duration   int // seconds
	FinishedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			result TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			finished_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_finished ON results(finished_at DESC, id DESC);

		CREATE TABLE IF NOT EXISTS sessions (
			slot TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and prunes the log down to the
// retention limit. Returns the ID of the inserted record.
func (s *Store) SaveResult(e ResultEntry) (int64, error) {
	finishedAt := e.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO results (mode, score, result, moves, duration_secs, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Mode, e.Score, e.Result, e.Moves, e.Duration,
		finishedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	// Keep only the newest records.
	_, err = s.db.Exec(
		`DELETE FROM results WHERE id NOT IN (
			SELECT id FROM results ORDER BY finished_at DESC, id DESC LIMIT ?
		)`,
		resultHistoryLimit,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune results: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 || limit > resultHistoryLimit {
		limit = resultHistoryLimit
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, result, moves, duration_secs, finished_at
		 FROM results
		 ORDER BY finished_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var finishedAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.Result, &e.Moves, &e.Duration, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := finishedAt.(type) {
		case time.Time:
			e.FinishedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.FinishedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest score among the retained results.
// Returns 0 if no results exist.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM results").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearResults deletes all retained results.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// SaveSession stores a serialized session under the given slot,
// overwriting any previous save.
func (s *Store) SaveSession(slot string, state []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (slot, state, saved_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET state = excluded.state, saved_at = excluded.saved_at`,
		slot, string(state),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// LoadSession retrieves the serialized session stored under the slot.
// Returns nil with no error when the slot is empty.
func (s *Store) LoadSession(slot string) ([]byte, error) {
	var state string
	err := s.db.QueryRow("SELECT state FROM sessions WHERE slot = ?", slot).Scan(&state)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load session: %w", err)
	}
	return []byte(state), nil
}

// DeleteSession removes the saved session in the slot, if any.
func (s *Store) DeleteSession(slot string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	return nil
}
