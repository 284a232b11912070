package agent

import (
	"adversarial/game"
	"adversarial/searcher"
)

type minimaxAgent[P, A comparable, S game.State[P, A, S]] struct {
	minimax *searcher.Minimax[P, A, S]
}

// NewMinimaxAgent returns an agent playing the first optimal action.
func NewMinimaxAgent[P, A comparable, S game.State[P, A, S]](minimax *searcher.Minimax[P, A, S]) Agent[A, S] {
	return minimaxAgent[P, A, S]{minimax: minimax}
}

func (a minimaxAgent[P, A, S]) FindAction(state S) (A, searcher.SearchMetrics, error) {
	d, err := a.minimax.Search(state)
	if err != nil {
		var none A
		return none, searcher.SearchMetrics{}, err
	}
	return d.Action, d.Metrics, nil
}
