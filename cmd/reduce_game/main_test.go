package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/normalform"
	"github.com/timpalpant/normalform/internal/collect"
)

// A,B vs X,Y: Y repeats X for Player 2, then B is dominated for Player 1.
const testInput = "2\n2\nA\nB\nX\nY\n3\n1\n3\n1\n2\n2\n2\n2\n"

func runWithInput(t *testing.T, params RunParams) string {
	var out bytes.Buffer
	c := collect.New[int](strings.NewReader(testInput), &bytes.Buffer{}, collect.ParseInt)
	require.NoError(t, run(c, &out, params))
	return out.String()
}

func TestRunPrintsFixpoints(t *testing.T) {
	out := runWithInput(t, RunParams{PayoffType: "int"})

	assert.Equal(t, 1, strings.Count(out, normalform.Initial.Title()))
	assert.Equal(t, 1, strings.Count(out, normalform.EquivalentStrategies.Title()))
	assert.Equal(t, 1, strings.Count(out, normalform.DominatedStrategies.Title()))
	assert.NotContains(t, out, "Pass 1 removed")

	final := out[strings.Index(out, normalform.DominatedStrategies.Title()):]
	assert.Contains(t, final, "(3, 1)")
	assert.NotContains(t, final, "(2, 2)")
}

func TestRunShowPasses(t *testing.T) {
	out := runWithInput(t, RunParams{PayoffType: "int", ShowPasses: true})

	assert.Equal(t, 2, strings.Count(out, normalform.EquivalentStrategies.Title()))
	assert.Equal(t, 2, strings.Count(out, normalform.DominatedStrategies.Title()))
	assert.Contains(t, out, "Pass 1 removed Player1 strategies [] and Player2 strategies [Y]")
	assert.Contains(t, out, "Pass 1 removed Player1 strategies [B] and Player2 strategies []")
	assert.Equal(t, 2, strings.Count(out, "Pass 2 removed Player1 strategies [] and Player2 strategies []"))
}

func TestRunMissingPayoff(t *testing.T) {
	c := collect.New[int](strings.NewReader("1\n1\nA\nX\n1\n"), &bytes.Buffer{}, collect.ParseInt)
	assert.Error(t, run(c, &bytes.Buffer{}, RunParams{PayoffType: "int"}))
}
