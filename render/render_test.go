package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/normalform"
	"github.com/timpalpant/normalform/matrixgame"
)

func testGame(t *testing.T) *normalform.Game[int] {
	m, err := matrixgame.FromRows([][]matrixgame.Payoff[int]{
		{{P1: 3, P2: 1}, {P1: 3, P2: 1}},
		{{P1: 2, P2: 2}, {P1: 2, P2: 2}},
	})
	require.NoError(t, err)

	return &normalform.Game[int]{
		Player1: []string{"Cooperate", "Defect"},
		Player2: []string{"Left", "Right"},
		Payoffs: m,
	}
}

func TestSnapshotInitial(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Snapshot(&buf, testGame(t).Snapshot()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "The Normal Form Game\n"))
	for _, s := range []string{"Cooperate", "Defect", "Left", "Right", "(3, 1)", "(2, 2)"} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, Separator)
}

func TestSnapshotReduced(t *testing.T) {
	g := testGame(t)
	snapshots, err := normalform.ReduceEquivalent(g.Payoffs, g.Player1, g.Player2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Snapshot(&buf, snapshots[len(snapshots)-1]))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, normalform.EquivalentStrategies.Title()))
	assert.Contains(t, out, "Left")
	assert.NotContains(t, out, "Right")
	assert.True(t, strings.HasSuffix(out, Separator+"\n"))
}

func TestSnapshotEmptyPlayer(t *testing.T) {
	g := testGame(t)
	m := g.Payoffs.Delete([]int{0, 1}, nil)
	snapshots, err := normalform.ReduceDominated(m, nil, g.Player2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Snapshot(&buf, snapshots[0]))
	assert.Contains(t, buf.String(), "Right")
}

func TestRemovals(t *testing.T) {
	g := testGame(t)
	snapshots, err := normalform.ReduceEquivalent(g.Payoffs, g.Player1, g.Player2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Removals(&buf, snapshots[0]))
	assert.Equal(t, "Pass 1 removed Player1 strategies [] and Player2 strategies [Right]\n", buf.String())
}
