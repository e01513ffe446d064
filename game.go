// Package normalform reduces two-player strategic-form games by
// iteratively removing equivalent and strictly dominated strategies.
package normalform

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/normalform/matrixgame"
)

// Player identifies one of the two players of a game.
type Player uint8

const (
	Player1 Player = iota
	Player2
)

var playerStr = [...]string{
	"Player1",
	"Player2",
}

func (p Player) String() string {
	return playerStr[p]
}

// Game is a strategic-form game: one label per strategy of each player,
// and the payoff for every pair of strategies.
type Game[T matrixgame.Numeric] struct {
	// Labels of Player 1's strategies, one per row of Payoffs.
	Player1 []string
	// Labels of Player 2's strategies, one per column of Payoffs.
	Player2 []string
	Payoffs *matrixgame.Matrix[T]
}

// NewGame returns a game with the given strategy labels and no payoffs
// filled in yet.
func NewGame[T matrixgame.Numeric](labels1, labels2 []string) (*Game[T], error) {
	m, err := matrixgame.New[T](len(labels1), len(labels2))
	if err != nil {
		return nil, err
	}

	return &Game[T]{
		Player1: append([]string(nil), labels1...),
		Player2: append([]string(nil), labels2...),
		Payoffs: m,
	}, nil
}

// Validate checks that the labels agree with the payoff matrix and
// that every payoff has been filled in.
func (g *Game[T]) Validate() error {
	return validate(g.Payoffs, g.Player1, g.Player2)
}

func validate[T matrixgame.Numeric](m *matrixgame.Matrix[T], labels1, labels2 []string) error {
	if m == nil {
		return errors.Wrap(matrixgame.ErrInvalidShape, "nil payoff matrix")
	}

	if len(labels1) != m.Rows() {
		return errors.Wrapf(matrixgame.ErrInvalidShape, "%v has %d labels but matrix has %d rows",
			Player1, len(labels1), m.Rows())
	}

	if len(labels2) != m.Cols() {
		return errors.Wrapf(matrixgame.ErrInvalidShape, "%v has %d labels but matrix has %d columns",
			Player2, len(labels2), m.Cols())
	}

	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "payoff matrix incomplete")
	}

	return nil
}

// Snapshot returns the game before any reduction.
func (g *Game[T]) Snapshot() Snapshot[T] {
	return newSnapshot(Initial, 0, g.Payoffs, g.Player1, g.Player2, nil, nil)
}
