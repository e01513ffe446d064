package matrixgame

// Delete returns a new matrix without the given rows and columns. Surviving
// rows and columns keep their relative order. Indices that do not exist are
// ignored, and m is left unchanged.
func (m *Matrix[T]) Delete(rows, cols []int) *Matrix[T] {
	keepRows := survivors(m.nRows, rows)
	keepCols := survivors(m.nCols, cols)

	result := newMatrix[T](len(keepRows), len(keepCols))
	for i, src := range keepRows {
		for j, srcCol := range keepCols {
			k := src*m.nCols + srcCol
			result.cells[i*result.nCols+j] = m.cells[k]
			result.filled[i*result.nCols+j] = m.filled[k]
		}
	}

	return result
}

// DeleteLabels returns a copy of labels without the entries at idx.
func DeleteLabels(labels []string, idx []int) []string {
	keep := survivors(len(labels), idx)
	result := make([]string, len(keep))
	for i, src := range keep {
		result[i] = labels[src]
	}

	return result
}

// SelectLabels returns the entries of labels at idx, in label order.
// Indices that do not exist are ignored.
func SelectLabels(labels []string, idx []int) []string {
	removed := make([]bool, len(labels))
	for _, i := range idx {
		if i >= 0 && i < len(labels) {
			removed[i] = true
		}
	}

	var result []string
	for i, ok := range removed {
		if ok {
			result = append(result, labels[i])
		}
	}

	return result
}

// survivors returns, in increasing order, the indices in [0, n) not in idx.
func survivors(n int, idx []int) []int {
	removed := make([]bool, n)
	for _, i := range idx {
		if i >= 0 && i < n {
			removed[i] = true
		}
	}

	result := make([]int, 0, n)
	for i, ok := range removed {
		if !ok {
			result = append(result, i)
		}
	}

	return result
}
