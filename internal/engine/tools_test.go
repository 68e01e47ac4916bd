package engine

import (
	"reflect"
	"testing"
)

func TestToolExhaustedLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name   string
		tool   Tool
		quotas Quotas
	}{
		{name: "add numbers", tool: ToolAddNumbers, quotas: Quotas{Shuffle: 5, Eraser: 5}},
		{name: "shuffle", tool: ToolShuffle, quotas: Quotas{AddNumbers: 10, Eraser: 5}},
		{name: "eraser", tool: ToolEraser, quotas: Quotas{AddNumbers: 10, Shuffle: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession(t, ModeClassic, row(3, 7, 5), tt.quotas)
			before := s.Board().Values()

			out := s.UseTool(tt.tool, 0)
			if out.Applied || out.Failure != FailureToolExhausted {
				t.Fatalf("outcome = %+v, want FailureToolExhausted", out)
			}
			if !reflect.DeepEqual(s.Board().Values(), before) {
				t.Error("board changed on exhausted tool")
			}
			if s.Quotas() != tt.quotas {
				t.Error("quotas changed on exhausted tool")
			}
			if s.MoveCount() != 0 {
				t.Error("move count changed on exhausted tool")
			}
		})
	}
}

func TestAddNumbersDecrementsQuotaAndCountsMove(t *testing.T) {
	s := testSession(t, ModeClassic, row(3, 7), fullQuotas())

	out := s.UseTool(ToolAddNumbers, 0)
	if !out.Applied {
		t.Fatalf("outcome = %+v, want Applied", out)
	}
	if got := s.Quotas().AddNumbers; got != 9 {
		t.Errorf("add-numbers quota = %d, want 9", got)
	}
	if s.MoveCount() != 1 {
		t.Errorf("move count = %d, want 1", s.MoveCount())
	}
}

func TestAddNumbersGridOverflowRejectedBeforeMutation(t *testing.T) {
	rules := DefaultRules()
	rules.MaxRows = 2
	cells := rows(
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9},
	)
	s := testSession(t, ModeClassic, cells, fullQuotas())
	s.rules = rules
	before := s.Board().Values()

	out := s.UseTool(ToolAddNumbers, 0)
	if out.Applied || out.Failure != FailureGridOverflow {
		t.Fatalf("outcome = %+v, want FailureGridOverflow", out)
	}
	if !reflect.DeepEqual(s.Board().Values(), before) {
		t.Error("board changed on rejected add")
	}
	if s.Quotas().AddNumbers != 10 {
		t.Errorf("quota = %d, want untouched 10", s.Quotas().AddNumbers)
	}
	if s.SupplyCursor() != 0 {
		t.Errorf("cursor = %d, want untouched 0", s.SupplyCursor())
	}
	if s.CanUndo() {
		t.Error("rejected add must not leave a snapshot")
	}
}

func TestShufflePermutesValuesInPlace(t *testing.T) {
	cells := row(2)
	cells[3] = 9
	cells[7] = 2
	s := testSession(t, ModeClassic, cells, fullQuotas())

	out := s.UseTool(ToolShuffle, 0)
	if !out.Applied {
		t.Fatalf("outcome = %+v, want Applied", out)
	}

	// The same three positions hold a permutation of {2, 9, 2}; every
	// other position stays empty.
	got := map[int]int{}
	for i := 0; i < s.Board().Len(); i++ {
		v := s.Board().At(i)
		if v == 0 {
			continue
		}
		got[i] = v
	}
	if len(got) != 3 {
		t.Fatalf("%d filled cells after shuffle, want 3", len(got))
	}
	for _, i := range []int{0, 3, 7} {
		if _, ok := got[i]; !ok {
			t.Errorf("position %d lost its value", i)
		}
	}
	counts := map[int]int{}
	for _, v := range got {
		counts[v]++
	}
	if counts[2] != 2 || counts[9] != 1 {
		t.Errorf("values after shuffle = %v, want {2:2, 9:1}", counts)
	}
	if s.Quotas().Shuffle != 4 {
		t.Errorf("shuffle quota = %d, want 4", s.Quotas().Shuffle)
	}
}

func TestEraserClearsTarget(t *testing.T) {
	s := testSession(t, ModeClassic, row(3, 7, 5), fullQuotas())

	out := s.UseTool(ToolEraser, 1)
	if !out.Applied {
		t.Fatalf("outcome = %+v, want Applied", out)
	}
	if !s.Board().Empty(1) {
		t.Error("target cell should be empty")
	}
	if s.Quotas().Eraser != 4 {
		t.Errorf("eraser quota = %d, want 4", s.Quotas().Eraser)
	}
	if s.MoveCount() != 1 {
		t.Errorf("move count = %d, want 1", s.MoveCount())
	}
}

func TestEraserOnEmptyCellIsNeutralNoop(t *testing.T) {
	s := testSession(t, ModeClassic, row(3, 0, 5), fullQuotas())

	out := s.UseTool(ToolEraser, 1)
	if out.Applied {
		t.Fatal("erasing an empty cell should not apply")
	}
	if out.Failure != FailureNone {
		t.Errorf("failure = %v, want FailureNone", out.Failure)
	}
	if s.Quotas().Eraser != 5 {
		t.Errorf("eraser quota = %d, want untouched 5", s.Quotas().Eraser)
	}
	if s.CanUndo() {
		t.Error("eraser no-op must not leave a snapshot")
	}
}

func TestUndoRestoresPreMutationState(t *testing.T) {
	cells := []int{5, 0, 0, 0, 0, 0, 0, 0, 5}
	s := testSession(t, ModeClassic, cells, fullQuotas())
	s.cursor = 7

	boardBefore := s.Board().Values()
	quotasBefore := s.Quotas()

	s.SelectCell(0)
	s.SelectCell(8)
	if s.Score() != 3 {
		t.Fatalf("score = %d after match, want 3", s.Score())
	}

	out := s.Undo()
	if !out.Applied {
		t.Fatalf("undo outcome = %+v, want Applied", out)
	}
	if !reflect.DeepEqual(s.Board().Values(), boardBefore) {
		t.Error("undo did not restore the board")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d after undo, want 0", s.Score())
	}
	if s.MoveCount() != 0 {
		t.Errorf("move count = %d after undo, want 0", s.MoveCount())
	}
	if s.Quotas() != quotasBefore {
		t.Error("undo did not restore quotas")
	}
	if s.SupplyCursor() != 7 {
		t.Errorf("cursor = %d after undo, want 7", s.SupplyCursor())
	}
}

func TestUndoIsSingleLevel(t *testing.T) {
	s := testSession(t, ModeClassic, row(3, 7), fullQuotas())

	s.SelectCell(0)
	s.SelectCell(1)

	if out := s.Undo(); !out.Applied {
		t.Fatalf("first undo outcome = %+v, want Applied", out)
	}
	out := s.Undo()
	if out.Applied || out.Failure != FailureNothingToUndo {
		t.Fatalf("second undo outcome = %+v, want FailureNothingToUndo", out)
	}
}

func TestUndoOnFreshSessionFails(t *testing.T) {
	s := testSession(t, ModeClassic, row(3, 7), fullQuotas())
	before := s.Board().Values()

	out := s.Undo()
	if out.Applied || out.Failure != FailureNothingToUndo {
		t.Fatalf("outcome = %+v, want FailureNothingToUndo", out)
	}
	if !reflect.DeepEqual(s.Board().Values(), before) {
		t.Error("failed undo changed the board")
	}
}

func TestUndoAfterToolRestoresQuota(t *testing.T) {
	s := testSession(t, ModeClassic, row(3, 7, 5), fullQuotas())

	s.UseTool(ToolEraser, 2)
	if s.Quotas().Eraser != 4 {
		t.Fatalf("eraser quota = %d, want 4", s.Quotas().Eraser)
	}

	if out := s.Undo(); !out.Applied {
		t.Fatalf("undo outcome = %+v, want Applied", out)
	}
	if s.Quotas().Eraser != 5 {
		t.Errorf("eraser quota = %d after undo, want 5", s.Quotas().Eraser)
	}
	if s.Board().At(2) != 5 {
		t.Error("undo did not restore the erased cell")
	}
}

func TestSnapshotIsOverwrittenNotStacked(t *testing.T) {
	s := testSession(t, ModeClassic, row(3, 7, 5, 5), fullQuotas())

	// First mutation: erase cell 0. Second mutation: match the fives.
	s.UseTool(ToolEraser, 0)
	s.SelectCell(2)
	s.SelectCell(3)

	// Undo reverts only the match; the erase stays.
	if out := s.Undo(); !out.Applied {
		t.Fatalf("undo outcome = %+v, want Applied", out)
	}
	if !s.Board().Empty(0) {
		t.Error("undo restored past the most recent mutation")
	}
	if s.Board().At(2) != 5 || s.Board().At(3) != 5 {
		t.Error("undo did not restore the matched cells")
	}
	if s.MoveCount() != 1 {
		t.Errorf("move count = %d, want 1 (the erase)", s.MoveCount())
	}
}

func TestUnknownToolPanics(t *testing.T) {
	s := testSession(t, ModeClassic, row(3, 7), fullQuotas())

	defer func() {
		if recover() == nil {
			t.Fatal("UseTool with an unknown tool should panic")
		}
	}()
	s.UseTool(Tool("laser"), 0)
}
