package normalform

import (
	"fmt"

	"github.com/timpalpant/normalform/matrixgame"
)

// Rule is the reduction rule that produced a Snapshot.
type Rule int

const (
	Initial Rule = iota
	EquivalentStrategies
	DominatedStrategies
)

var ruleStr = [...]string{
	"Initial",
	"EquivalentStrategies",
	"DominatedStrategies",
}

var ruleTitle = [...]string{
	"The Normal Form Game",
	"Updated Normal Form after eliminating equivalent strategies",
	"Updated Normal Form after eliminating dominated strategies",
}

func (r Rule) String() string {
	return ruleStr[r]
}

// Title is the heading under which a snapshot produced by r is displayed.
func (r Rule) Title() string {
	return ruleTitle[r]
}

// Snapshot is the state of a game after one completed reduction pass.
// It is never modified once created; accessors return copies.
type Snapshot[T matrixgame.Numeric] struct {
	rule     Rule
	pass     int
	payoffs  *matrixgame.Matrix[T]
	player1  []string
	player2  []string
	removed1 []string
	removed2 []string
}

func newSnapshot[T matrixgame.Numeric](rule Rule, pass int, m *matrixgame.Matrix[T],
	labels1, labels2, removed1, removed2 []string) Snapshot[T] {
	return Snapshot[T]{
		rule:     rule,
		pass:     pass,
		payoffs:  m.Clone(),
		player1:  append([]string(nil), labels1...),
		player2:  append([]string(nil), labels2...),
		removed1: append([]string(nil), removed1...),
		removed2: append([]string(nil), removed2...),
	}
}

func (s Snapshot[T]) Rule() Rule { return s.rule }

// Pass is the 1-based number of the pass within its phase, or 0 for the
// initial snapshot.
func (s Snapshot[T]) Pass() int { return s.pass }

// Payoffs returns a copy of the remaining payoff matrix.
func (s Snapshot[T]) Payoffs() *matrixgame.Matrix[T] { return s.payoffs.Clone() }

// Labels returns the remaining strategy labels of player p.
func (s Snapshot[T]) Labels(p Player) []string {
	if p == Player1 {
		return append([]string(nil), s.player1...)
	}
	return append([]string(nil), s.player2...)
}

// Removed returns the labels of player p's strategies removed by the
// pass that produced s.
func (s Snapshot[T]) Removed(p Player) []string {
	if p == Player1 {
		return append([]string(nil), s.removed1...)
	}
	return append([]string(nil), s.removed2...)
}

// NumRemoved is the number of strategies removed by this pass.
func (s Snapshot[T]) NumRemoved() int {
	return len(s.removed1) + len(s.removed2)
}

// Game returns a fresh game holding the snapshot's state, suitable as
// input to a further reduction.
func (s Snapshot[T]) Game() *Game[T] {
	return &Game[T]{
		Player1: s.Labels(Player1),
		Player2: s.Labels(Player2),
		Payoffs: s.Payoffs(),
	}
}

func (s Snapshot[T]) String() string {
	return fmt.Sprintf("%v pass %d: %v x %v, removed %v / %v",
		s.rule, s.pass, s.player1, s.player2, s.removed1, s.removed2)
}
