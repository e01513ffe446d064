package normalform

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/normalform/matrixgame"
)

// finder computes, from one pair of projected payoff matrices, the rows
// and columns a pass should remove.
type finder[T matrixgame.Numeric] func(p1, p2 [][]T) (rows, cols []int)

func equivalent[T matrixgame.Numeric](p1, p2 [][]T) ([]int, []int) {
	return matrixgame.EquivalentRows(p1), matrixgame.EquivalentColumns(p2)
}

func dominated[T matrixgame.Numeric](p1, p2 [][]T) ([]int, []int) {
	return matrixgame.DominatedRows(p1), matrixgame.DominatedColumns(p2)
}

// ReduceEquivalent repeatedly removes strategies whose payoffs to their
// owner duplicate an earlier strategy's, until a pass removes nothing.
// It returns one snapshot per pass; the last one is the fixpoint.
func ReduceEquivalent[T matrixgame.Numeric](m *matrixgame.Matrix[T], labels1, labels2 []string) ([]Snapshot[T], error) {
	return reduce(EquivalentStrategies, equivalent[T], m, labels1, labels2)
}

// ReduceDominated repeatedly removes strictly dominated strategies until
// a pass removes nothing. It returns one snapshot per pass; the last one
// is the fixpoint.
func ReduceDominated[T matrixgame.Numeric](m *matrixgame.Matrix[T], labels1, labels2 []string) ([]Snapshot[T], error) {
	return reduce(DominatedStrategies, dominated[T], m, labels1, labels2)
}

func reduce[T matrixgame.Numeric](rule Rule, find finder[T], m *matrixgame.Matrix[T], labels1, labels2 []string) ([]Snapshot[T], error) {
	if err := validate(m, labels1, labels2); err != nil {
		return nil, errors.Wrapf(err, "cannot reduce %v", rule)
	}

	var result []Snapshot[T]
	for pass := 1; ; pass++ {
		var rows, cols []int
		// With no strategies left for a player there is nothing to compare.
		if m.Rows() > 0 && m.Cols() > 0 {
			p1, p2, err := m.Project()
			if err != nil {
				return nil, err
			}

			rows, cols = find(p1, p2)
		}

		removed1 := matrixgame.SelectLabels(labels1, rows)
		removed2 := matrixgame.SelectLabels(labels2, cols)
		m = m.Delete(rows, cols)
		labels1 = matrixgame.DeleteLabels(labels1, rows)
		labels2 = matrixgame.DeleteLabels(labels2, cols)

		glog.V(1).Infof("[%v] pass %d removed %v: %v, %v: %v",
			rule, pass, Player1, removed1, Player2, removed2)
		result = append(result, newSnapshot(rule, pass, m, labels1, labels2, removed1, removed2))
		if len(rows) == 0 && len(cols) == 0 {
			break
		}
	}

	glog.V(2).Infof("[%v] reached fixpoint after %d passes with %d x %d strategies",
		rule, len(result), len(labels1), len(labels2))
	return result, nil
}

// Reduction is the full history of reducing a game: the equivalence
// phase followed by the dominance phase.
type Reduction[T matrixgame.Numeric] struct {
	Initial    Snapshot[T]
	Equivalent []Snapshot[T]
	Dominated  []Snapshot[T]
}

// Final returns the fully reduced game.
func (r *Reduction[T]) Final() Snapshot[T] {
	return r.Dominated[len(r.Dominated)-1]
}

// Reduce eliminates equivalent strategies until none remain, then
// eliminates strictly dominated strategies from the result.
func Reduce[T matrixgame.Numeric](g *Game[T]) (*Reduction[T], error) {
	if g == nil {
		return nil, errors.Wrap(matrixgame.ErrInvalidShape, "nil game")
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	equiv, err := ReduceEquivalent(g.Payoffs, g.Player1, g.Player2)
	if err != nil {
		return nil, errors.Wrap(err, "eliminating equivalent strategies")
	}

	reduced := equiv[len(equiv)-1].Game()
	dom, err := ReduceDominated(reduced.Payoffs, reduced.Player1, reduced.Player2)
	if err != nil {
		return nil, errors.Wrap(err, "eliminating dominated strategies")
	}

	return &Reduction[T]{
		Initial:    g.Snapshot(),
		Equivalent: equiv,
		Dominated:  dom,
	}, nil
}
