// Package engine implements the ten-pair rules: the board and its
// connectivity rules, pair matching, per-mode value supply, the
// quota-limited tools with one-level undo, and the session lifecycle
// state machine. The package is UI-agnostic and deterministic: all
// randomness comes from the *rand.Rand injected at session construction.
package engine

import "fmt"

// Board is the grid of cells stored in row-major order: index = row*cols + col.
// A cell holds a positive value or 0 when empty. The length is always a
// multiple of the column count; cells are nulled on removal, never cut out.
type Board struct {
	cols  int
	cells []int
}

// NewBoard creates an empty board with the given column count.
func NewBoard(cols int) *Board {
	if cols <= 0 {
		panic(fmt.Sprintf("engine: invalid column count %d", cols))
	}
	return &Board{cols: cols}
}

// Cols returns the fixed column count.
func (b *Board) Cols() int { return b.cols }

// Len returns the number of cells, empty ones included.
func (b *Board) Len() int { return len(b.cells) }

// Rows returns the current row count.
func (b *Board) Rows() int { return len(b.cells) / b.cols }

// Row returns the row of index i.
func (b *Board) Row(i int) int {
	b.check(i)
	return i / b.cols
}

// Col returns the column of index i.
func (b *Board) Col(i int) int {
	b.check(i)
	return i % b.cols
}

// check panics on an out-of-range index. Rule violations are outcomes,
// bad indices are caller bugs.
func (b *Board) check(i int) {
	if i < 0 || i >= len(b.cells) {
		panic(fmt.Sprintf("engine: cell index %d out of range [0,%d)", i, len(b.cells)))
	}
}

// At returns the value at index i, 0 when the cell is empty.
func (b *Board) At(i int) int {
	b.check(i)
	return b.cells[i]
}

// Empty reports whether the cell at i holds no value.
func (b *Board) Empty(i int) bool { return b.At(i) == 0 }

func (b *Board) set(i, v int) {
	b.check(i)
	b.cells[i] = v
}

func (b *Board) clear(i int) {
	b.check(i)
	b.cells[i] = 0
}

// Append adds values at the end of the board, then pads the length up to
// the next multiple of the column count with empty cells.
func (b *Board) Append(values []int) {
	b.cells = append(b.cells, values...)
	if rem := len(b.cells) % b.cols; rem != 0 {
		b.cells = append(b.cells, make([]int, b.cols-rem)...)
	}
}

// NonEmpty returns the count of filled cells.
func (b *Board) NonEmpty() int {
	count := 0
	for _, v := range b.cells {
		if v != 0 {
			count++
		}
	}
	return count
}

// NonEmptyIndices returns the indices of all filled cells in board order.
func (b *Board) NonEmptyIndices() []int {
	idx := make([]int, 0, len(b.cells))
	for i, v := range b.cells {
		if v != 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// Values returns a copy of the raw cell slice.
func (b *Board) Values() []int {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{cols: b.cols, cells: b.Values()}
}

// boardFromCells wraps an existing cell slice. The caller guarantees the
// length is a multiple of cols; Restore validates before calling.
func boardFromCells(cols int, cells []int) *Board {
	return &Board{cols: cols, cells: cells}
}
