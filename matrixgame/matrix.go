package matrixgame

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	ErrInvalidShape         = errors.New("matrixgame: invalid shape")
	ErrInvalidStrategyCount = errors.New("matrixgame: invalid strategy count")
	ErrMissingPayoff        = errors.New("matrixgame: missing payoff")
	ErrOutOfRange           = errors.New("matrixgame: index out of range")
)

// MaxCells bounds the number of payoffs a matrix built by New may hold.
const MaxCells = 1 << 24

// Numeric is the set of types a payoff may have.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Payoff is the pair of payoffs received when Player 1 plays a row
// strategy and Player 2 plays a column strategy.
type Payoff[T Numeric] struct {
	P1 T
	P2 T
}

func (p Payoff[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.P1, p.P2)
}

// Matrix is a rectangular table of payoffs, indexed by (Player 1 strategy,
// Player 2 strategy). Cells start out unfilled; a matrix may only be
// projected once every cell has been set.
//
// Either dimension may be zero after deletion, so the shape is stored
// separately from the cells.
type Matrix[T Numeric] struct {
	nRows  int
	nCols  int
	cells  []Payoff[T]
	filled []bool
}

// New returns an empty matrix for a game where Player 1 has numStrategies1
// strategies and Player 2 has numStrategies2.
func New[T Numeric](numStrategies1, numStrategies2 int) (*Matrix[T], error) {
	if numStrategies1 <= 0 {
		return nil, errors.Wrapf(ErrInvalidStrategyCount, "player 1 has %d strategies", numStrategies1)
	}
	if numStrategies2 <= 0 {
		return nil, errors.Wrapf(ErrInvalidStrategyCount, "player 2 has %d strategies", numStrategies2)
	}
	if numStrategies1 > MaxCells/numStrategies2 {
		return nil, errors.Wrapf(ErrInvalidStrategyCount, "%d x %d game exceeds %d payoffs",
			numStrategies1, numStrategies2, MaxCells)
	}

	return newMatrix[T](numStrategies1, numStrategies2), nil
}

func newMatrix[T Numeric](nRows, nCols int) *Matrix[T] {
	return &Matrix[T]{
		nRows:  nRows,
		nCols:  nCols,
		cells:  make([]Payoff[T], nRows*nCols),
		filled: make([]bool, nRows*nCols),
	}
}

// FromRows builds a fully populated matrix from rows of payoffs.
// All rows must have the same length.
func FromRows[T Numeric](rows [][]Payoff[T]) (*Matrix[T], error) {
	nCols, err := width(rows)
	if err != nil {
		return nil, err
	}

	m := newMatrix[T](len(rows), nCols)
	for i, row := range rows {
		for j, p := range row {
			m.cells[i*nCols+j] = p
			m.filled[i*nCols+j] = true
		}
	}

	return m, nil
}

func width[E any](rows [][]E) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	n := len(rows[0])
	for i, row := range rows {
		if len(row) != n {
			return 0, errors.Wrapf(ErrInvalidShape, "row %d has %d columns, expected %d", i, len(row), n)
		}
	}

	return n, nil
}

func (m *Matrix[T]) Rows() int { return m.nRows }
func (m *Matrix[T]) Cols() int { return m.nCols }

// Set fills the cell at row i, column j.
func (m *Matrix[T]) Set(i, j int, p Payoff[T]) error {
	if err := m.checkIndex(i, j); err != nil {
		return err
	}

	m.cells[i*m.nCols+j] = p
	m.filled[i*m.nCols+j] = true
	return nil
}

// At returns the payoff at row i, column j and whether it has been set.
// It panics if the index is out of range.
func (m *Matrix[T]) At(i, j int) (Payoff[T], bool) {
	if err := m.checkIndex(i, j); err != nil {
		panic(err)
	}

	k := i*m.nCols + j
	return m.cells[k], m.filled[k]
}

func (m *Matrix[T]) checkIndex(i, j int) error {
	if i < 0 || i >= m.nRows || j < 0 || j >= m.nCols {
		return errors.Wrapf(ErrOutOfRange, "cell (%d, %d) of %dx%d matrix", i, j, m.nRows, m.nCols)
	}

	return nil
}

// Validate returns ErrMissingPayoff if any cell has not been set.
func (m *Matrix[T]) Validate() error {
	for k, ok := range m.filled {
		if !ok {
			return errors.Wrapf(ErrMissingPayoff, "cell (%d, %d)", k/m.nCols, k%m.nCols)
		}
	}

	return nil
}

// Payoffs returns a copy of the matrix as rows of payoffs.
func (m *Matrix[T]) Payoffs() [][]Payoff[T] {
	rows := make([][]Payoff[T], m.nRows)
	for i := range rows {
		rows[i] = make([]Payoff[T], m.nCols)
		copy(rows[i], m.cells[i*m.nCols:(i+1)*m.nCols])
	}

	return rows
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	result := newMatrix[T](m.nRows, m.nCols)
	copy(result.cells, m.cells)
	copy(result.filled, m.filled)
	return result
}

func (m *Matrix[T]) String() string {
	return fmt.Sprintf("%v", m.Payoffs())
}
