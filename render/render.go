// Package render formats game snapshots as text tables.
package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/timpalpant/normalform"
	"github.com/timpalpant/normalform/matrixgame"
)

// Separator is written after every reduced snapshot.
const Separator = "-----------------------------------------"

// Snapshot writes s to w as a table with one row per Player 1 strategy
// and one column per Player 2 strategy, headed by the title of the rule
// that produced it.
func Snapshot[T matrixgame.Numeric](w io.Writer, s normalform.Snapshot[T]) error {
	if _, err := fmt.Fprintln(w, s.Rule().Title()); err != nil {
		return err
	}

	labels1 := s.Labels(normalform.Player1)
	labels2 := s.Labels(normalform.Player2)
	payoffs := s.Payoffs()

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(append([]string{" "}, labels2...))
	for i, label := range labels1 {
		row := make([]string, 0, len(labels2)+1)
		row = append(row, label)
		for j := range labels2 {
			p, _ := payoffs.At(i, j)
			row = append(row, p.String())
		}
		table.Append(row)
	}
	table.Render()

	if s.Rule() == normalform.Initial {
		return nil
	}

	_, err := fmt.Fprintln(w, Separator)
	return err
}

// Removals writes a one-line summary of the strategies removed by the
// pass that produced s.
func Removals[T matrixgame.Numeric](w io.Writer, s normalform.Snapshot[T]) error {
	_, err := fmt.Fprintf(w, "Pass %d removed %v strategies %v and %v strategies %v\n",
		s.Pass(), normalform.Player1, s.Removed(normalform.Player1),
		normalform.Player2, s.Removed(normalform.Player2))
	return err
}
