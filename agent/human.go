package agent

import (
	"bufio"
	"fmt"
	"io"

	"adversarial/game"
	"adversarial/searcher"

	"golang.org/x/exp/slices"
)

// ParseFunc reads a player's input as an action in state.
type ParseFunc[A comparable, S any] func(line string, state S) (A, error)

type humanAgent[P, A comparable, S game.State[P, A, S]] struct {
	in    *bufio.Scanner
	out   io.Writer
	parse ParseFunc[A, S]
}

// NewHumanAgent returns an agent that prompts on out and reads actions from in, one per line.
// Input that does not parse, or is not a legal action, is rejected and prompted again.
func NewHumanAgent[P, A comparable, S game.State[P, A, S]](in io.Reader, out io.Writer, parse ParseFunc[A, S]) Agent[A, S] {
	return &humanAgent[P, A, S]{
		in:    bufio.NewScanner(in),
		out:   out,
		parse: parse,
	}
}

func (h *humanAgent[P, A, S]) FindAction(state S) (A, searcher.SearchMetrics, error) {
	var none A
	actions := state.Actions()
	if state.Terminal() || len(actions) == 0 {
		return none, searcher.SearchMetrics{}, searcher.ErrNoAction
	}

	for {
		fmt.Fprintf(h.out, "%v\n\nPlayer %v, your move: ", state, state.Player())
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return none, searcher.SearchMetrics{}, fmt.Errorf("read move: %w", err)
			}
			return none, searcher.SearchMetrics{}, io.ErrUnexpectedEOF
		}

		action, err := h.parse(h.in.Text(), state)
		if err != nil {
			fmt.Fprintf(h.out, "Invalid move: %v\n", err)
			continue
		}
		if !slices.Contains(actions, action) {
			fmt.Fprintln(h.out, "Illegal move!")
			continue
		}
		return action, searcher.SearchMetrics{}, nil
	}
}
