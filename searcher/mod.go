package searcher

import (
	"errors"
)

// Outcome values for games that score a win as 1 and a loss as -1
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

var (
	// ErrNoAction is returned when asked for an action in a terminal state or a state with no
	// legal actions.
	ErrNoAction = errors.New("no action to search")

	// ErrContractViolation is returned when a game rejects an action it enumerated itself, or
	// reports a non-terminal state without legal actions.
	ErrContractViolation = errors.New("game state contract violation")
)

// Score is the negamax value of playing Action, from the perspective of the player to move.
type Score[A comparable] struct {
	Action A
	Value  float64
}

// Decision is the outcome of a search from one root state.
type Decision[A comparable] struct {
	Action  A
	Value   float64
	Scores  []Score[A] // In action enumeration order
	Metrics SearchMetrics
}

// first returns the index of the first maximal score. Ties resolve to the earliest action.
func first[A comparable](scores []Score[A]) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Value > scores[best].Value {
			best = i
		}
	}
	return best
}
