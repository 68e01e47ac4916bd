package engine

// Connectable reports whether two filled cells may interact. Cells connect
// when they are directly adjacent in a row or column, when the first sits
// in the last column of a row and the second in the first column of the
// next row (row wrap), or when they share a row or column with only empty
// cells strictly between them. The predicate is symmetric.
func (b *Board) Connectable(i, j int) bool {
	b.check(i)
	b.check(j)

	if i == j || b.cells[i] == 0 || b.cells[j] == 0 {
		return false
	}
	if i > j {
		i, j = j, i
	}

	ri, ci := i/b.cols, i%b.cols
	rj, cj := j/b.cols, j%b.cols

	// Row wrap: end of row r meets start of row r+1.
	if rj == ri+1 && ci == b.cols-1 && cj == 0 {
		return true
	}

	switch {
	case ri == rj:
		for c := ci + 1; c < cj; c++ {
			if b.cells[ri*b.cols+c] != 0 {
				return false
			}
		}
		return true
	case ci == cj:
		for r := ri + 1; r < rj; r++ {
			if b.cells[r*b.cols+ci] != 0 {
				return false
			}
		}
		return true
	}

	return false
}
