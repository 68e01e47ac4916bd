package engine

// pairValues reports whether two values are match-eligible: equal or
// summing to ten.
func pairValues(a, b int) bool {
	return a == b || a+b == 10
}

// matchGain returns the score awarded for removing a valid pair. A pair of
// fives satisfies both the equal rule and the sum-to-ten rule; it is
// checked first and awards 3 so the rules never stack.
func matchGain(a, b int) int {
	switch {
	case a == 5 && b == 5:
		return 3
	case a == b:
		return 1
	default:
		return 2
	}
}

// ValidPair reports whether cells i and j form a removable pair: both
// filled, values equal or summing to ten, and connectable.
func (b *Board) ValidPair(i, j int) bool {
	if b.Empty(i) || b.Empty(j) {
		return false
	}
	return pairValues(b.cells[i], b.cells[j]) && b.Connectable(i, j)
}

// AvailableMoves counts index pairs (i, j), i < j, forming a valid pair.
// Counting stops once it reaches cap; the exact number beyond the cap is
// never needed. cap <= 0 means unbounded.
func (b *Board) AvailableMoves(cap int) int {
	count := 0
	for i, v := range b.cells {
		if v == 0 {
			continue
		}
		for j := i + 1; j < len(b.cells); j++ {
			if b.cells[j] == 0 || !b.ValidPair(i, j) {
				continue
			}
			count++
			if cap > 0 && count >= cap {
				return count
			}
		}
	}
	return count
}

// attemptMatch resolves the two selected cells. An invalid pair clears the
// selection and mutates nothing else.
func (s *Session) attemptMatch(i, j int) SelectionOutcome {
	if !s.board.ValidPair(i, j) {
		s.selection = s.selection[:0]
		return SelectionOutcome{Kind: SelectionRejected, Failure: FailureInvalidPair}
	}

	s.takeSnapshot()
	gained := matchGain(s.board.At(i), s.board.At(j))
	s.board.clear(i)
	s.board.clear(j)
	s.score += gained
	s.moveCount++
	s.selection = s.selection[:0]
	ended := s.evaluate()

	return SelectionOutcome{Kind: SelectionMatched, Gained: gained, Ended: ended}
}
