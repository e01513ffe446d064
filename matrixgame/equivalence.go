package matrixgame

import (
	"golang.org/x/exp/slices"
)

// EquivalentRows returns the indices of rows that repeat an earlier row
// exactly. The first row of each group of equal rows is never included.
func EquivalentRows[T Numeric](values [][]T) []int {
	marked := make([]bool, len(values))
	for i := range values {
		if marked[i] {
			continue
		}

		for j := i + 1; j < len(values); j++ {
			if slices.Equal(values[i], values[j]) {
				marked[j] = true
			}
		}
	}

	return indicesOf(marked)
}

// EquivalentColumns returns the indices of columns that repeat an
// earlier column exactly. The first column of each group is kept.
func EquivalentColumns[T Numeric](values [][]T) []int {
	return EquivalentRows(Transpose(values))
}

func indicesOf(marked []bool) []int {
	var result []int
	for i, ok := range marked {
		if ok {
			result = append(result, i)
		}
	}

	return result
}
