package engine

import "errors"

var (
	ErrMaxPlies = errors.New("game exceeded the maximum number of plies")
	ErrNoAgent  = errors.New("no agent for player")
)

type Engine[P, A comparable, S any] interface {
	// Run plays the opening actions from initial, then lets the agents play until the game
	// is over.
	Run(initial S, opening ...A) (Outcome[P, A, S], error)
}

type Option func(o *options)

type options struct {
	maxPlies int
	metrics  bool
}

// WithMaxPlies fails a game that has not ended after n plies, openings included.
func WithMaxPlies(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPlies = n
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}
