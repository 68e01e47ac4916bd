package engine

// Failure identifies why a player action was rejected. Rule rejections are
// ordinary outcomes, not errors: the session is left untouched and the
// caller decides what feedback to show.
type Failure int

const (
	FailureNone Failure = iota
	// FailureInvalidPair means the two selected cells fail the value or
	// connectivity rules.
	FailureInvalidPair
	// FailureToolExhausted means the tool's quota is zero.
	FailureToolExhausted
	// FailureGridOverflow means add-numbers would push the board past the
	// row limit.
	FailureGridOverflow
	// FailureNothingToUndo means no snapshot is pending.
	FailureNothingToUndo
	// FailureSessionFinished means a mutating call arrived after the
	// session reached a terminal state.
	FailureSessionFinished
)

// String returns a short identifier for the failure.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureInvalidPair:
		return "invalid_pair"
	case FailureToolExhausted:
		return "tool_exhausted"
	case FailureGridOverflow:
		return "grid_overflow"
	case FailureNothingToUndo:
		return "nothing_to_undo"
	case FailureSessionFinished:
		return "session_finished"
	default:
		return "unknown"
	}
}

// SelectionKind describes what a SelectCell call did.
type SelectionKind int

const (
	// SelectionIgnored means the clicked cell was empty; nothing changed.
	SelectionIgnored SelectionKind = iota
	// SelectionAdded means the cell joined the selection.
	SelectionAdded
	// SelectionRemoved means the cell was already selected and toggled off.
	SelectionRemoved
	// SelectionMatched means the second cell completed a valid pair which
	// was removed.
	SelectionMatched
	// SelectionRejected means the pair was invalid or the session is
	// finished; see Failure.
	SelectionRejected
)

// SelectionOutcome reports the effect of a SelectCell call.
type SelectionOutcome struct {
	Kind    SelectionKind
	Failure Failure // set when Kind is SelectionRejected
	Gained  int     // score delta when Kind is SelectionMatched
	Ended   bool    // the session reached a terminal state during this call
}

// ToolOutcome reports the effect of a UseTool call. An eraser aimed at an
// already-empty cell returns Applied false with FailureNone: a neutral
// no-op that consumed nothing.
type ToolOutcome struct {
	Applied bool
	Failure Failure
	Added   int // values appended by the add-numbers tool
	Ended   bool
}

// UndoOutcome reports the effect of an Undo call.
type UndoOutcome struct {
	Applied bool
	Failure Failure
}
