package engine

// snapshot is the single pre-mutation copy kept for one level of undo.
// Selection and the terminal flags are deliberately not part of it.
type snapshot struct {
	cells     []int
	score     int
	moveCount int
	quotas    Quotas
	cursor    int
}

// takeSnapshot overwrites the pending snapshot with the current state.
// Called immediately before every mutating action.
func (s *Session) takeSnapshot() {
	s.snap = &snapshot{
		cells:     s.board.Values(),
		score:     s.score,
		moveCount: s.moveCount,
		quotas:    s.quotas,
		cursor:    s.cursor,
	}
}

// Undo restores the state captured before the most recent mutating action
// and discards the snapshot: exactly one level, so a second consecutive
// undo fails. Undo is rejected once the session is finished; restoring a
// pre-terminal board while the result stays set would corrupt the session.
func (s *Session) Undo() UndoOutcome {
	if s.finished {
		return UndoOutcome{Failure: FailureSessionFinished}
	}
	if s.snap == nil {
		return UndoOutcome{Failure: FailureNothingToUndo}
	}

	s.board = boardFromCells(s.rules.Cols, s.snap.cells)
	s.score = s.snap.score
	s.moveCount = s.snap.moveCount
	s.quotas = s.snap.quotas
	s.cursor = s.snap.cursor
	s.snap = nil
	// Selected indices may not exist on the restored board.
	s.selection = s.selection[:0]

	return UndoOutcome{Applied: true}
}

// CanUndo reports whether a snapshot is pending.
func (s *Session) CanUndo() bool {
	return !s.finished && s.snap != nil
}
