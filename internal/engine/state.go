package engine

import (
	"fmt"
	"math/rand"
)

// SessionState is the serializable form of a session. Round-tripping
// through Serialize and Restore reproduces an identical session, pending
// undo snapshot included. The YAML tags define the saved-session format
// consumed by the persistence layer.
type SessionState struct {
	Mode      Mode           `yaml:"mode"`
	Rules     Rules          `yaml:"rules"`
	Cells     []int          `yaml:"cells,flow"`
	Score     int            `yaml:"score"`
	MoveCount int            `yaml:"move_count"`
	Quotas    Quotas         `yaml:"quotas"`
	Cursor    int            `yaml:"supply_cursor"`
	Selection []int          `yaml:"selection,flow,omitempty"`
	Snapshot  *SnapshotState `yaml:"snapshot,omitempty"`
	Finished  bool           `yaml:"finished,omitempty"`
	Result    Result         `yaml:"result,omitempty"`
	Overflow  bool           `yaml:"overflow,omitempty"`
}

// SnapshotState is the serializable form of the pending undo snapshot.
type SnapshotState struct {
	Cells     []int  `yaml:"cells,flow"`
	Score     int    `yaml:"score"`
	MoveCount int    `yaml:"move_count"`
	Quotas    Quotas `yaml:"quotas"`
	Cursor    int    `yaml:"supply_cursor"`
}

// Serialize captures the complete session state. All slices are copied;
// the state stays valid after further mutation.
func (s *Session) Serialize() SessionState {
	st := SessionState{
		Mode:      s.mode,
		Rules:     s.rules,
		Cells:     s.board.Values(),
		Score:     s.score,
		MoveCount: s.moveCount,
		Quotas:    s.quotas,
		Cursor:    s.cursor,
		Selection: s.Selection(),
		Finished:  s.finished,
		Result:    s.result,
		Overflow:  s.overflow,
	}
	if s.snap != nil {
		cells := make([]int, len(s.snap.cells))
		copy(cells, s.snap.cells)
		st.Snapshot = &SnapshotState{
			Cells:     cells,
			Score:     s.snap.score,
			MoveCount: s.snap.moveCount,
			Quotas:    s.snap.quotas,
			Cursor:    s.snap.cursor,
		}
	}
	return st
}

// Restore rebuilds a session from its serialized state. The rng plays the
// same role as in NewSession; the restored session continues drawing from
// it. Malformed states return an error.
func Restore(st SessionState, rng *rand.Rand) (*Session, error) {
	if !knownMode(st.Mode) {
		return nil, fmt.Errorf("engine: restore: unknown mode %q", st.Mode)
	}
	if err := st.Rules.validate(); err != nil {
		return nil, fmt.Errorf("engine: restore: %w", err)
	}
	if len(st.Cells)%st.Rules.Cols != 0 {
		return nil, fmt.Errorf("engine: restore: %d cells is not a multiple of %d columns", len(st.Cells), st.Rules.Cols)
	}
	if len(st.Selection) > 2 {
		return nil, fmt.Errorf("engine: restore: selection holds %d cells, at most 2 allowed", len(st.Selection))
	}
	if st.Finished && st.Result == ResultNone {
		return nil, fmt.Errorf("engine: restore: finished session without a result")
	}

	cells := make([]int, len(st.Cells))
	copy(cells, st.Cells)

	s := &Session{
		rules:     st.Rules,
		mode:      st.Mode,
		rng:       rng,
		board:     boardFromCells(st.Rules.Cols, cells),
		score:     st.Score,
		moveCount: st.MoveCount,
		quotas:    st.Quotas,
		cursor:    st.Cursor,
		finished:  st.Finished,
		result:    st.Result,
		overflow:  st.Overflow,
	}
	if len(st.Selection) > 0 {
		s.selection = make([]int, len(st.Selection))
		copy(s.selection, st.Selection)
		for _, i := range s.selection {
			if i < 0 || i >= len(cells) {
				return nil, fmt.Errorf("engine: restore: selected index %d out of range", i)
			}
		}
	}
	if st.Snapshot != nil {
		snapCells := make([]int, len(st.Snapshot.Cells))
		copy(snapCells, st.Snapshot.Cells)
		s.snap = &snapshot{
			cells:     snapCells,
			score:     st.Snapshot.Score,
			moveCount: st.Snapshot.MoveCount,
			quotas:    st.Snapshot.Quotas,
			cursor:    st.Snapshot.Cursor,
		}
	}
	return s, nil
}
