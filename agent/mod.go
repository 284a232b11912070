package agent

import (
	"adversarial/searcher"
)

type Agent[A comparable, S any] interface {
	// FindAction returns the action to play in state and search metrics (if collected).
	FindAction(state S) (A, searcher.SearchMetrics, error)
}
