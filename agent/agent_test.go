package agent

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"adversarial/searcher"
	"adversarial/tictactoe"

	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, board string) tictactoe.State {
	t.Helper()
	s, err := tictactoe.ParseState(board)
	require.NoError(t, err)
	return s
}

func TestMinimaxAgent(t *testing.T) {
	m := searcher.NewMinimax[tictactoe.Player, tictactoe.Action, tictactoe.State](searcher.WithMetrics())
	a := NewMinimaxAgent(m)

	t.Run("plays the winning square", func(t *testing.T) {
		got, metrics, err := a.FindAction(mustState(t, "XX.OO...."))

		require.NoError(t, err)
		require.Equal(t, tictactoe.Action{Position: 2, Player: tictactoe.X}, got)
		require.Positive(t, metrics.Nodes)
	})

	t.Run("finished game", func(t *testing.T) {
		_, _, err := a.FindAction(mustState(t, "XXXOO...."))

		require.ErrorIs(t, err, searcher.ErrNoAction)
	})
}

func TestRandomAgent(t *testing.T) {
	newAgent := func(seed uint64) Agent[tictactoe.Action, tictactoe.State] {
		return NewRandomAgent[tictactoe.Player, tictactoe.Action, tictactoe.State](seed)
	}

	t.Run("plays legal actions", func(t *testing.T) {
		a := newAgent(1)
		s := mustState(t, "X...O....")
		for i := 0; i < 50; i++ {
			got, _, err := a.FindAction(s)

			require.NoError(t, err)
			require.Contains(t, s.Actions(), got)
		}
	})

	t.Run("same seed plays the same game", func(t *testing.T) {
		playout := func(a Agent[tictactoe.Action, tictactoe.State]) []tictactoe.Action {
			var actions []tictactoe.Action
			s := tictactoe.NewGame()
			for !s.Terminal() {
				action, _, err := a.FindAction(s)
				require.NoError(t, err)
				actions = append(actions, action)
				s, err = s.Result(action)
				require.NoError(t, err)
			}
			return actions
		}

		require.Equal(t, playout(newAgent(42)), playout(newAgent(42)))
	})

	t.Run("finished game", func(t *testing.T) {
		_, _, err := newAgent(1).FindAction(mustState(t, "XXXOO...."))

		require.ErrorIs(t, err, searcher.ErrNoAction)
	})
}

func TestHumanAgent(t *testing.T) {
	newAgent := func(input string, out io.Writer) Agent[tictactoe.Action, tictactoe.State] {
		return NewHumanAgent[tictactoe.Player](strings.NewReader(input), out, tictactoe.ParseAction)
	}

	t.Run("reads a legal move", func(t *testing.T) {
		var out bytes.Buffer

		got, _, err := newAgent("4\n", &out).FindAction(tictactoe.NewGame())

		require.NoError(t, err)
		require.Equal(t, tictactoe.Action{Position: 4, Player: tictactoe.X}, got)
		require.Contains(t, out.String(), "Player X, your move: ")
	})

	t.Run("prompts again on bad input", func(t *testing.T) {
		var out bytes.Buffer
		s := mustState(t, "....X....")

		got, _, err := newAgent("middle\n4\n12\n0\n", &out).FindAction(s)

		require.NoError(t, err)
		require.Equal(t, tictactoe.Action{Position: 0, Player: tictactoe.O}, got)
		require.Contains(t, out.String(), "Invalid move")
		require.Equal(t, 2, strings.Count(out.String(), "Illegal move!"), "Occupied and out of range squares should be refused")
	})

	t.Run("end of input", func(t *testing.T) {
		_, _, err := newAgent("", io.Discard).FindAction(tictactoe.NewGame())

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}
