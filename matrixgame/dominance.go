package matrixgame

// DominatedRows returns the indices of rows that are strictly dominated:
// some other row is strictly greater in every column.
//
// All rows are judged against the same matrix, so a row that is itself
// dominated can still dominate another row.
func DominatedRows[T Numeric](values [][]T) []int {
	marked := make([]bool, len(values))
	for i := range values {
		for j := range values {
			if i != j && strictlyGreater(values[j], values[i]) {
				marked[i] = true
				break
			}
		}
	}

	return indicesOf(marked)
}

// DominatedColumns returns the indices of strictly dominated columns.
func DominatedColumns[T Numeric](values [][]T) []int {
	return DominatedRows(Transpose(values))
}

// strictlyGreater reports whether a[k] > b[k] for every k.
func strictlyGreater[T Numeric](a, b []T) bool {
	for k := range b {
		if !(a[k] > b[k]) {
			return false
		}
	}

	return true
}
