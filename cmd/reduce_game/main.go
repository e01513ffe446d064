// Reads a two-player game interactively and prints it before and after
// eliminating equivalent and strictly dominated strategies.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/timpalpant/normalform"
	"github.com/timpalpant/normalform/internal/collect"
	"github.com/timpalpant/normalform/matrixgame"
	"github.com/timpalpant/normalform/render"
)

type RunParams struct {
	PayoffType string
	ShowPasses bool
}

func main() {
	var params RunParams
	flag.StringVar(&params.PayoffType, "payoff_type", "int",
		"Numeric type of payoffs: int or float")
	flag.BoolVar(&params.ShowPasses, "show_passes", false,
		"Print every intermediate reduction pass, not only each fixpoint")
	flag.Parse()

	var err error
	switch params.PayoffType {
	case "int":
		err = run(collect.New[int](os.Stdin, os.Stdout, collect.ParseInt), os.Stdout, params)
	case "float":
		err = run(collect.New[float64](os.Stdin, os.Stdout, collect.ParseFloat), os.Stdout, params)
	default:
		glog.Fatalf("Unknown payoff type: %v", params.PayoffType)
	}

	if err != nil {
		glog.Fatal(err)
	}
}

func run[T matrixgame.Numeric](c *collect.Collector[T], w io.Writer, params RunParams) error {
	game, err := c.Game()
	if err != nil {
		return err
	}

	reduction, err := normalform.Reduce(game)
	if err != nil {
		return err
	}

	if err := render.Snapshot(w, reduction.Initial); err != nil {
		return err
	}

	if err := printPhase(w, reduction.Equivalent, params.ShowPasses); err != nil {
		return err
	}

	return printPhase(w, reduction.Dominated, params.ShowPasses)
}

func printPhase[T matrixgame.Numeric](w io.Writer, snapshots []normalform.Snapshot[T], all bool) error {
	if !all {
		snapshots = snapshots[len(snapshots)-1:]
	}

	for _, s := range snapshots {
		if all {
			if err := render.Removals(w, s); err != nil {
				return err
			}
		}

		if err := render.Snapshot(w, s); err != nil {
			return err
		}
	}

	return nil
}
