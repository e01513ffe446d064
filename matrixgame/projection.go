package matrixgame

// Project splits rows of payoffs into one scalar matrix per player,
// each with the same shape as the input.
func Project[T Numeric](rows [][]Payoff[T]) (p1, p2 [][]T, err error) {
	nCols, err := width(rows)
	if err != nil {
		return nil, nil, err
	}

	p1 = make([][]T, len(rows))
	p2 = make([][]T, len(rows))
	for i, row := range rows {
		p1[i] = make([]T, nCols)
		p2[i] = make([]T, nCols)
		for j, p := range row {
			p1[i][j] = p.P1
			p2[i][j] = p.P2
		}
	}

	return p1, p2, nil
}

// Project splits m into Player 1's and Player 2's scalar payoff matrices.
// Every cell must have been set.
func (m *Matrix[T]) Project() (p1, p2 [][]T, err error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}

	return Project(m.Payoffs())
}

// Transpose returns the transpose of a rectangular scalar matrix. The
// transpose of a matrix with no rows has no rows.
func Transpose[T Numeric](values [][]T) [][]T {
	if len(values) == 0 {
		return nil
	}

	result := make([][]T, len(values[0]))
	for j := range result {
		result[j] = make([]T, len(values))
		for i := range values {
			result[j][i] = values[i][j]
		}
	}

	return result
}
