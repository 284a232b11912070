package agent

import (
	"adversarial/game"
	"adversarial/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent[P, A comparable, S game.State[P, A, S]] struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal actions. It is not safe
// for concurrent use.
func NewRandomAgent[P, A comparable, S game.State[P, A, S]](seed uint64) Agent[A, S] {
	return &randomAgent[P, A, S]{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent[P, A, S]) FindAction(state S) (A, searcher.SearchMetrics, error) {
	actions := state.Actions()
	if state.Terminal() || len(actions) == 0 {
		var none A
		return none, searcher.SearchMetrics{}, searcher.ErrNoAction
	}
	return actions[a.rng.Intn(len(actions))], searcher.SearchMetrics{}, nil
}
