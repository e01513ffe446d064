// Package collect gathers a complete game from a line-oriented input,
// prompting for each value in turn.
package collect

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/normalform"
	"github.com/timpalpant/normalform/matrixgame"
)

// Parser converts one line of input into a payoff value.
type Parser[T matrixgame.Numeric] func(string) (T, error)

func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseFloat rejects NaN and infinities, which no strategy can be
// compared against.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("payoff %q is not finite", s)
	}

	return v, nil
}

// Collector prompts on out and reads answers from in, one per line.
type Collector[T matrixgame.Numeric] struct {
	in    *bufio.Reader
	out   io.Writer
	parse Parser[T]
}

func New[T matrixgame.Numeric](in io.Reader, out io.Writer, parse Parser[T]) *Collector[T] {
	return &Collector[T]{
		in:    bufio.NewReader(in),
		out:   out,
		parse: parse,
	}
}

// Game collects the strategy counts, then every strategy label, then
// every payoff. Invalid numbers are reported and asked for again; running
// out of input is an error.
func (c *Collector[T]) Game() (*normalform.Game[T], error) {
	n1, err := c.count(normalform.Player1)
	if err != nil {
		return nil, err
	}
	n2, err := c.count(normalform.Player2)
	if err != nil {
		return nil, err
	}

	labels1, err := c.labels(normalform.Player1, n1)
	if err != nil {
		return nil, err
	}
	labels2, err := c.labels(normalform.Player2, n2)
	if err != nil {
		return nil, err
	}

	g, err := normalform.NewGame[T](labels1, labels2)
	if err != nil {
		return nil, err
	}

	for i, s1 := range labels1 {
		for j, s2 := range labels2 {
			p1, err := c.payoff(s1, s2, normalform.Player1)
			if err != nil {
				return nil, err
			}
			p2, err := c.payoff(s1, s2, normalform.Player2)
			if err != nil {
				return nil, err
			}

			if err := g.Payoffs.Set(i, j, matrixgame.Payoff[T]{P1: p1, P2: p2}); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func (c *Collector[T]) count(p normalform.Player) (int, error) {
	for {
		line, err := c.prompt(fmt.Sprintf("Enter the number of strategies for %v:", playerName(p)))
		if err != nil {
			return 0, errors.Wrap(err, "reading strategy count")
		}

		n, err := strconv.Atoi(line)
		if err != nil || n <= 0 {
			glog.Errorf("Invalid strategy count: %q", line)
			continue
		}

		return n, nil
	}
}

func (c *Collector[T]) labels(p normalform.Player, n int) ([]string, error) {
	result := make([]string, n)
	for i := range result {
		line, err := c.prompt(fmt.Sprintf("Enter the name for Strategy %d for %v:", i+1, playerName(p)))
		if err != nil {
			return nil, errors.Wrapf(err, "reading strategy %d for %v", i+1, playerName(p))
		}

		result[i] = line
	}

	return result, nil
}

func (c *Collector[T]) payoff(s1, s2 string, p normalform.Player) (T, error) {
	for {
		line, err := c.prompt(fmt.Sprintf("Enter the gain for %s vs %s for %v:", s1, s2, playerName(p)))
		if err == io.EOF {
			var zero T
			return zero, errors.Wrapf(matrixgame.ErrMissingPayoff, "%s vs %s for %v", s1, s2, playerName(p))
		} else if err != nil {
			var zero T
			return zero, err
		}

		v, err := c.parse(line)
		if err != nil {
			glog.Errorf("Invalid payoff: %q", line)
			continue
		}

		return v, nil
	}
}

// prompt writes msg and returns the next line of input without its line
// ending. A final line without a newline is still returned.
func (c *Collector[T]) prompt(msg string) (string, error) {
	if _, err := fmt.Fprint(c.out, msg, " "); err != nil {
		return "", errors.Wrap(err, "writing prompt")
	}
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func playerName(p normalform.Player) string {
	if p == normalform.Player1 {
		return "Player 1"
	}
	return "Player 2"
}
