package searcher

import (
	"math"
	"testing"

	"adversarial/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/**
Tests exhaustive negamax search on hand-built trees
- value:
	- terminal state -> utility for the player to move
	- non-terminal -> max over actions of the negated child value
	- random trees up to depth 4 agree with a textbook max/min minimax
- best action:
	- picks the maximizing action
	- ties resolve to the first action in enumeration order
	- terminal or action-less state -> ErrNoAction
- contract violations propagate, sequentially and in parallel
*/

func TestValue(t *testing.T) {
	t.Run("terminal state is worth its utility for the player to move", func(t *testing.T) {
		m := newMinimax()

		got, err := m.Value(leaf("max", Win))

		require.NoError(t, err)
		require.Equal(t, Win, got)
	})

	t.Run("one ply negates the child value", func(t *testing.T) {
		// Children are terminal with "min" to move: a loss for min is a win for max
		root := node("max", leaf("min", Draw), leaf("min", Loss))

		got, err := newMinimax().Value(root)

		require.NoError(t, err)
		require.Equal(t, Win, got, "Max should pick the child where min has lost")
	})

	t.Run("opponent replies minimize the mover's value", func(t *testing.T) {
		root := node("max",
			node("min", leaf("max", Win), leaf("max", Loss)),
			node("min", leaf("max", Draw), leaf("max", Draw)),
		)

		got, err := newMinimax().Value(root)

		require.NoError(t, err)
		require.Equal(t, Draw, got, "Max should avoid the branch where min can force a loss")
	})

	t.Run("agrees with max/min minimax on random trees", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		m := newMinimax()
		for i := 0; i < 200; i++ {
			root := randomTree(r, "max", 1+r.Intn(4))

			got, err := m.Value(root)

			require.NoError(t, err)
			require.Equal(t, textbook(root, "max", true), got, "tree %d", i)
		}
	})

	t.Run("value recurrence holds at every root", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		m := newMinimax()
		for i := 0; i < 100; i++ {
			root := randomTree(r, "max", 2+r.Intn(3))
			if root.Terminal() {
				continue
			}

			got, err := m.Value(root)
			require.NoError(t, err)

			expected := math.Inf(-1)
			for _, a := range root.Actions() {
				child, err := root.Result(a)
				require.NoError(t, err)
				v, err := m.Value(child)
				require.NoError(t, err)
				expected = math.Max(expected, -v)
			}
			require.Equal(t, expected, got)
		}
	})

	t.Run("non-terminal state without actions is a contract violation", func(t *testing.T) {
		root := node("max", &mockState{player: "min", stuck: true})

		_, err := newMinimax().Value(root)

		require.ErrorIs(t, err, ErrContractViolation)
	})
}

func TestBestAction(t *testing.T) {
	t.Run("picks the maximizing action", func(t *testing.T) {
		root := node("max",
			node("min", leaf("max", Loss)),
			node("min", leaf("max", Win), leaf("max", Draw)),
			node("min", leaf("max", Win)),
		)

		got, err := newMinimax().BestAction(root)

		require.NoError(t, err)
		require.Equal(t, mockAction(2), got)
	})

	t.Run("ties resolve to the first action in enumeration order", func(t *testing.T) {
		root := node("max",
			leaf("min", Draw),
			leaf("min", Loss),
			leaf("min", Loss),
		)

		m := newMinimax()
		got, err := m.BestAction(root)
		require.NoError(t, err)
		require.Equal(t, mockAction(1), got, "First of two equally winning actions should be picked")

		again, err := m.BestAction(root)
		require.NoError(t, err)
		require.Equal(t, got, again, "Repeated searches should agree")
	})

	t.Run("parallel search resolves ties like sequential search", func(t *testing.T) {
		children := make([]*mockState, 16)
		for i := range children {
			children[i] = node("min", leaf("max", Draw))
		}
		root := node("max", children...)

		for _, goroutines := range []int{1, 2, 4, 16, 32} {
			got, err := newMinimax(WithGoroutines(goroutines)).BestAction(root)

			require.NoError(t, err)
			require.Equal(t, mockAction(0), got, "goroutines=%d", goroutines)
		}
	})

	t.Run("parallel search agrees with sequential search on random trees", func(t *testing.T) {
		r := rand.New(rand.NewSource(3))
		sequential := newMinimax()
		parallel := newMinimax(WithGoroutines(4))
		for i := 0; i < 100; i++ {
			root := randomTree(r, "max", 1+r.Intn(4))
			if root.Terminal() {
				continue
			}

			want, err := sequential.Search(root)
			require.NoError(t, err)
			got, err := parallel.Search(root)
			require.NoError(t, err)

			require.Equal(t, want.Action, got.Action, "tree %d", i)
			require.Equal(t, want.Scores, got.Scores, "tree %d", i)
		}
	})

	t.Run("terminal state has no best action", func(t *testing.T) {
		_, err := newMinimax().BestAction(leaf("max", Win))

		require.ErrorIs(t, err, ErrNoAction)
	})

	t.Run("action-less state has no best action", func(t *testing.T) {
		_, err := newMinimax().BestAction(&mockState{player: "max", stuck: true})

		require.ErrorIs(t, err, ErrNoAction)
	})

	t.Run("rejected enumerated action propagates", func(t *testing.T) {
		broken := node("min", leaf("max", Win))
		broken.reject = true
		root := node("max", leaf("min", Loss), broken)

		for _, goroutines := range []int{1, 2} {
			_, err := newMinimax(WithGoroutines(goroutines)).BestAction(root)

			require.ErrorIs(t, err, ErrContractViolation, "goroutines=%d", goroutines)
			require.ErrorIs(t, err, game.IllegalMove, "goroutines=%d", goroutines)
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("reports per-action scores in enumeration order", func(t *testing.T) {
		root := node("max",
			leaf("min", Win),
			leaf("min", Draw),
			leaf("min", Loss),
		)

		d, err := newMinimax().Search(root)

		require.NoError(t, err)
		require.Equal(t, []Score[mockAction]{
			{Action: 0, Value: Loss},
			{Action: 1, Value: Draw},
			{Action: 2, Value: Win},
		}, d.Scores)
		require.Equal(t, mockAction(2), d.Action)
		require.Equal(t, Win, d.Value)
	})

	t.Run("collects metrics when enabled", func(t *testing.T) {
		root := node("max",
			node("min", leaf("max", Win), leaf("max", Loss)),
			leaf("min", Draw),
		)

		d, err := newMinimax(WithMetrics(), WithGoroutines(2)).Search(root)

		require.NoError(t, err)
		require.Equal(t, int64(5), d.Metrics.Nodes, "Every state in the tree should be visited once")
		require.Equal(t, int64(3), d.Metrics.Terminals)
		require.Equal(t, 2, d.Metrics.Goroutines)
	})

	t.Run("skips metrics by default", func(t *testing.T) {
		root := node("max", leaf("min", Draw))

		d, err := newMinimax().Search(root)

		require.NoError(t, err)
		require.Equal(t, SearchMetrics{}, d.Metrics)
	})
}

func TestScores(t *testing.T) {
	t.Run("terminal state has no scores", func(t *testing.T) {
		_, err := newMinimax().Scores(leaf("max", Draw))

		require.ErrorIs(t, err, ErrNoAction)
	})
}

func TestNewMinimax(t *testing.T) {
	t.Run("ignores non-positive goroutines", func(t *testing.T) {
		m := newMinimax(WithGoroutines(0))

		require.Equal(t, 1, m.goroutines)
	})
}

// randomTree builds a tree with terminal leaves at depth or earlier.
func randomTree(r *rand.Rand, player string, depth int) *mockState {
	if depth == 0 || (r.Intn(4) == 0) {
		return leaf(player, float64(r.Intn(3)-1))
	}
	children := make([]*mockState, 1+r.Intn(3))
	for i := range children {
		children[i] = randomTree(r, opponent(player), depth-1)
	}
	return node(player, children...)
}

// textbook is max/min minimax from root's perspective, where root is the "max" player.
func textbook(s *mockState, root string, maximizing bool) float64 {
	if s.Terminal() {
		return s.Utility(root)
	}
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, child := range s.children {
		v := textbook(child, root, !maximizing)
		if maximizing {
			best = math.Max(best, v)
		} else {
			best = math.Min(best, v)
		}
	}
	return best
}
