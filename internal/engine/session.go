package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Result is the terminal outcome of a session.
type Result string

const (
	ResultNone Result = ""
	ResultWin  Result = "win"
	ResultLose Result = "lose"
)

// Session is one complete game, active or finished. It is the only type
// the UI layer talks to. A Session is not safe for concurrent use: every
// mutating call runs to completion before the next is accepted, and
// callers must serialize access (one writer per session).
type Session struct {
	rules Rules
	mode  Mode
	rng   *rand.Rand

	board     *Board
	score     int
	moveCount int
	quotas    Quotas
	cursor    int
	selection []int
	snap      *snapshot

	finished bool
	result   Result
	overflow bool // the loss was caused by row overflow, not exhaustion
}

// NewSession creates a session and deals the initial board. The rng is the
// session's only source of randomness; seed it for reproducible games.
// An unknown mode panics, invalid rules return an error.
func NewSession(mode Mode, rules Rules, rng *rand.Rand) (*Session, error) {
	if !knownMode(mode) {
		panic(fmt.Sprintf("engine: unknown mode %q", mode))
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}

	s := &Session{
		rules: rules,
		mode:  mode,
		rng:   rng,
		board: NewBoard(rules.Cols),
		quotas: Quotas{
			AddNumbers: rules.AddNumbersQuota,
			Shuffle:    rules.ShuffleQuota,
			Eraser:     rules.EraserQuota,
		},
	}
	s.board.Append(deal(mode, rules, rng, &s.cursor))
	return s, nil
}

// Mode returns the session's supply mode.
func (s *Session) Mode() Mode { return s.mode }

// Rules returns the session's fixed parameters.
func (s *Session) Rules() Rules { return s.rules }

// Board returns the live board. Callers read it for rendering; all
// mutation goes through the session.
func (s *Session) Board() *Board { return s.board }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// MoveCount returns the number of state-mutating player actions so far.
func (s *Session) MoveCount() int { return s.moveCount }

// Quotas returns the remaining tool uses.
func (s *Session) Quotas() Quotas { return s.quotas }

// SupplyCursor returns the classic-mode pool cursor.
func (s *Session) SupplyCursor() int { return s.cursor }

// Selection returns a copy of the currently selected cell indices.
func (s *Session) Selection() []int {
	sel := make([]int, len(s.selection))
	copy(sel, s.selection)
	return sel
}

// Selected reports whether cell i is currently selected.
func (s *Session) Selected(i int) bool {
	for _, sel := range s.selection {
		if sel == i {
			return true
		}
	}
	return false
}

// Finished reports whether the session reached a terminal state.
func (s *Session) Finished() bool { return s.finished }

// Result returns the terminal outcome, ResultNone while active.
func (s *Session) Result() Result { return s.result }

// AvailableMoves returns the valid-pair count capped at the hint cap.
func (s *Session) AvailableMoves() int {
	return s.board.AvailableMoves(s.rules.HintCap)
}

// SelectCell toggles the selection of a cell. The second selected cell
// triggers a match attempt immediately; the selection never holds more
// than two indices.
func (s *Session) SelectCell(i int) SelectionOutcome {
	if s.finished {
		return SelectionOutcome{Kind: SelectionRejected, Failure: FailureSessionFinished}
	}
	if s.board.Empty(i) {
		return SelectionOutcome{Kind: SelectionIgnored}
	}

	for k, sel := range s.selection {
		if sel == i {
			s.selection = append(s.selection[:k], s.selection[k+1:]...)
			return SelectionOutcome{Kind: SelectionRemoved}
		}
	}

	s.selection = append(s.selection, i)
	if len(s.selection) < 2 {
		return SelectionOutcome{Kind: SelectionAdded}
	}
	return s.attemptMatch(s.selection[0], s.selection[1])
}

// ClearSelection drops any pending selection without mutating the board.
func (s *Session) ClearSelection() {
	s.selection = s.selection[:0]
}

// evaluate runs the lifecycle state machine after a successful mutation:
// win on reaching the target score, lose when no valid pair remains and
// every quota is spent, lose on row overflow. Terminal states absorb.
// Returns true when the session is finished.
func (s *Session) evaluate() bool {
	if s.finished {
		return true
	}

	switch {
	case s.score >= s.rules.TargetScore:
		s.finished = true
		s.result = ResultWin
	case s.board.AvailableMoves(s.rules.HintCap) == 0 && s.quotas.Total() == 0:
		s.finished = true
		s.result = ResultLose
	case s.board.Rows() > s.rules.MaxRows:
		s.finished = true
		s.result = ResultLose
		s.overflow = true
	}

	return s.finished
}

// EndReason returns a short human-readable reason once the session has
// ended, empty while active.
func (s *Session) EndReason() string {
	switch {
	case !s.finished:
		return ""
	case s.result == ResultWin:
		return "target score reached"
	case s.overflow:
		return "grid overflow"
	default:
		return "no moves or tools left"
	}
}

// ResultRecord describes a finished session for the results log. The
// elapsed time belongs to the caller's clock: the engine never reads one.
type ResultRecord struct {
	Mode       Mode
	Score      int
	Result     Result
	Moves      int
	Elapsed    time.Duration
	FinishedAt time.Time
}

// ResultRecord builds the record handed to the results log. Calling it on
// an unfinished session is a caller bug.
func (s *Session) ResultRecord(elapsed time.Duration, finishedAt time.Time) ResultRecord {
	if !s.finished {
		panic("engine: ResultRecord on unfinished session")
	}
	return ResultRecord{
		Mode:       s.mode,
		Score:      s.score,
		Result:     s.result,
		Moves:      s.moveCount,
		Elapsed:    elapsed,
		FinishedAt: finishedAt,
	}
}
