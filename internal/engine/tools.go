package engine

import "fmt"

// Tool identifies one of the quota-limited tools.
type Tool string

const (
	ToolAddNumbers Tool = "add_numbers"
	ToolShuffle    Tool = "shuffle"
	ToolEraser     Tool = "eraser"
)

// Quotas tracks the remaining uses of each tool.
type Quotas struct {
	AddNumbers int `yaml:"add_numbers"`
	Shuffle    int `yaml:"shuffle"`
	Eraser     int `yaml:"eraser"`
}

// Total returns the sum of all remaining uses.
func (q Quotas) Total() int {
	return q.AddNumbers + q.Shuffle + q.Eraser
}

// Remaining returns the remaining uses of a single tool.
func (q Quotas) Remaining(tool Tool) int {
	switch tool {
	case ToolAddNumbers:
		return q.AddNumbers
	case ToolShuffle:
		return q.Shuffle
	case ToolEraser:
		return q.Eraser
	default:
		panic(fmt.Sprintf("engine: unknown tool %q", tool))
	}
}

// UseTool applies a quota-limited tool. The eraser requires a target cell
// index; the other tools ignore it. The tool set is a compile-time
// contract with the caller, so an unknown tool panics.
func (s *Session) UseTool(tool Tool, target int) ToolOutcome {
	if s.finished {
		return ToolOutcome{Failure: FailureSessionFinished}
	}

	switch tool {
	case ToolAddNumbers:
		return s.addNumbers()
	case ToolShuffle:
		return s.shuffle()
	case ToolEraser:
		return s.erase(target)
	default:
		panic(fmt.Sprintf("engine: unknown tool %q", tool))
	}
}

// addNumbers appends a mode-dependent supply draw to the board. The draw
// size is computed up front so the row-limit check runs before any
// mutation, quota decrement, or RNG consumption.
func (s *Session) addNumbers() ToolOutcome {
	if s.quotas.AddNumbers == 0 {
		return ToolOutcome{Failure: FailureToolExhausted}
	}

	n := drawCount(s.mode, s.board.NonEmpty())
	grown := s.board.Len() + n
	rows := (grown + s.rules.Cols - 1) / s.rules.Cols
	if rows > s.rules.MaxRows {
		return ToolOutcome{Failure: FailureGridOverflow}
	}

	s.takeSnapshot()
	s.board.Append(draw(s.mode, s.rng, &s.cursor, n))
	s.quotas.AddNumbers--
	s.moveCount++
	s.selection = s.selection[:0]
	ended := s.evaluate()

	return ToolOutcome{Applied: true, Added: n, Ended: ended}
}

// shuffle applies a uniform random permutation to the values of the filled
// cells. Empty positions stay empty.
func (s *Session) shuffle() ToolOutcome {
	if s.quotas.Shuffle == 0 {
		return ToolOutcome{Failure: FailureToolExhausted}
	}

	s.takeSnapshot()
	idx := s.board.NonEmptyIndices()
	vals := make([]int, len(idx))
	for k, i := range idx {
		vals[k] = s.board.At(i)
	}
	s.rng.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
	for k, i := range idx {
		s.board.set(i, vals[k])
	}
	s.quotas.Shuffle--
	s.moveCount++
	s.selection = s.selection[:0]
	ended := s.evaluate()

	return ToolOutcome{Applied: true, Ended: ended}
}

// erase empties a single target cell. Aiming at an already-empty cell is a
// neutral no-op: no snapshot, no quota, no move counted.
func (s *Session) erase(target int) ToolOutcome {
	if s.quotas.Eraser == 0 {
		return ToolOutcome{Failure: FailureToolExhausted}
	}
	if s.board.Empty(target) {
		return ToolOutcome{}
	}

	s.takeSnapshot()
	s.board.clear(target)
	s.quotas.Eraser--
	s.moveCount++
	s.selection = s.selection[:0]
	ended := s.evaluate()

	return ToolOutcome{Applied: true, Ended: ended}
}
