package engine

import (
	"math/rand"
	"testing"
)

// testSession builds a session over a prepared board for rule tests.
func testSession(t *testing.T, mode Mode, cells []int, quotas Quotas) *Session {
	t.Helper()
	rules := DefaultRules()
	if len(cells)%rules.Cols != 0 {
		t.Fatalf("test board length %d is not a multiple of %d", len(cells), rules.Cols)
	}
	return &Session{
		rules:  rules,
		mode:   mode,
		rng:    rand.New(rand.NewSource(1)),
		board:  boardFromCells(rules.Cols, cells),
		quotas: quotas,
	}
}

func fullQuotas() Quotas {
	return Quotas{AddNumbers: 10, Shuffle: 5, Eraser: 5}
}

func TestMatchGain(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{name: "double five", a: 5, b: 5, want: 3},
		{name: "equal values", a: 7, b: 7, want: 1},
		{name: "sum to ten", a: 3, b: 7, want: 2},
		{name: "one and nine", a: 1, b: 9, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchGain(tt.a, tt.b); got != tt.want {
				t.Errorf("matchGain(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValidPair(t *testing.T) {
	tests := []struct {
		name  string
		cells []int
		i, j  int
		want  bool
	}{
		{
			name:  "equal across empties",
			cells: []int{5, 0, 0, 0, 0, 0, 0, 0, 5},
			i:     0, j: 8,
			want: true,
		},
		{
			name:  "sum to ten adjacent",
			cells: row(3, 7),
			i:     0, j: 1,
			want: true,
		},
		{
			name:  "connectable but values mismatch",
			cells: row(3, 4),
			i:     0, j: 1,
			want: false,
		},
		{
			name:  "values match but not connectable",
			cells: row(3, 8, 7),
			i:     0, j: 2,
			want: false,
		},
		{
			name:  "empty cell",
			cells: row(3, 0, 7),
			i:     0, j: 1,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromCells(9, tt.cells)
			if got := b.ValidPair(tt.i, tt.j); got != tt.want {
				t.Errorf("ValidPair(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
			}
		})
	}
}

func TestSelectCellMatchRemovesExactlyTwoCells(t *testing.T) {
	cells := []int{5, 0, 0, 0, 0, 0, 0, 0, 5}
	s := testSession(t, ModeClassic, cells, fullQuotas())

	out := s.SelectCell(0)
	if out.Kind != SelectionAdded {
		t.Fatalf("first select: kind = %v, want SelectionAdded", out.Kind)
	}

	out = s.SelectCell(8)
	if out.Kind != SelectionMatched {
		t.Fatalf("second select: kind = %v, want SelectionMatched", out.Kind)
	}
	if out.Gained != 3 {
		t.Errorf("double five gained = %d, want 3", out.Gained)
	}

	if !s.board.Empty(0) || !s.board.Empty(8) {
		t.Error("matched cells should be empty")
	}
	for i := 1; i < 8; i++ {
		if !s.board.Empty(i) {
			t.Errorf("cell %d changed, expected untouched", i)
		}
	}
	if s.Score() != 3 {
		t.Errorf("score = %d, want 3", s.Score())
	}
	if s.MoveCount() != 1 {
		t.Errorf("move count = %d, want 1", s.MoveCount())
	}
	if len(s.Selection()) != 0 {
		t.Error("selection should be cleared after a resolved match")
	}
}

func TestSelectCellRowWrapMatch(t *testing.T) {
	cells := rows(
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		[]int{9, 8, 7, 6, 5, 4, 3, 2, 1},
	)
	s := testSession(t, ModeClassic, cells, fullQuotas())

	s.SelectCell(8)
	out := s.SelectCell(9)
	if out.Kind != SelectionMatched {
		t.Fatalf("kind = %v, want SelectionMatched", out.Kind)
	}
	if out.Gained != 1 {
		t.Errorf("equal nines gained = %d, want 1", out.Gained)
	}
}

func TestSelectCellInvalidPair(t *testing.T) {
	cells := row(3, 4, 5)
	s := testSession(t, ModeClassic, cells, fullQuotas())

	s.SelectCell(0)
	out := s.SelectCell(1)
	if out.Kind != SelectionRejected || out.Failure != FailureInvalidPair {
		t.Fatalf("got kind=%v failure=%v, want SelectionRejected/FailureInvalidPair", out.Kind, out.Failure)
	}

	// Nothing mutated, selection cleared.
	if s.Score() != 0 || s.MoveCount() != 0 {
		t.Error("rejected pair must not change score or move count")
	}
	if s.board.At(0) != 3 || s.board.At(1) != 4 {
		t.Error("rejected pair must not change the board")
	}
	if len(s.Selection()) != 0 {
		t.Error("selection should be cleared after a rejected pair")
	}
	if s.CanUndo() {
		t.Error("rejected pair must not leave a snapshot")
	}
}

func TestSelectCellToggleAndEmpty(t *testing.T) {
	cells := row(3, 0, 5)
	s := testSession(t, ModeClassic, cells, fullQuotas())

	if out := s.SelectCell(1); out.Kind != SelectionIgnored {
		t.Errorf("empty cell: kind = %v, want SelectionIgnored", out.Kind)
	}

	s.SelectCell(0)
	if out := s.SelectCell(0); out.Kind != SelectionRemoved {
		t.Errorf("re-select: kind = %v, want SelectionRemoved", out.Kind)
	}
	if len(s.Selection()) != 0 {
		t.Error("toggled cell should leave the selection empty")
	}
}

func TestAvailableMovesCap(t *testing.T) {
	// A row of fives: every pair of neighbors (and across-empties pairs)
	// matches, far more than the cap.
	cells := []int{5, 5, 5, 5, 5, 5, 5, 5, 5}
	b := boardFromCells(9, cells)

	if got := b.AvailableMoves(6); got != 6 {
		t.Errorf("AvailableMoves(6) = %d, want capped 6", got)
	}
	if got := b.AvailableMoves(0); got != 8 {
		t.Errorf("AvailableMoves(0) = %d, want 8 uncapped", got)
	}
}

func TestAvailableMovesNone(t *testing.T) {
	cells := row(1, 2, 4)
	b := boardFromCells(9, cells)

	if got := b.AvailableMoves(6); got != 0 {
		t.Errorf("AvailableMoves = %d, want 0", got)
	}
}
