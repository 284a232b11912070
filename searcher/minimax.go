package searcher

import (
	"fmt"
	"math"
	"sync"

	"adversarial/game"

	"github.com/rs/zerolog/log"
)

type Option func(o *options)

type options struct {
	goroutines int
	metrics    bool
}

// WithGoroutines evaluates the root's children on n goroutines. Results do not depend on n.
func WithGoroutines(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.goroutines = n
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

// Minimax searches the full game tree below a state. Every branch is explored down to
// terminal states, so it is only suited to small games.
//
// A Minimax holds no state between searches and can be shared between goroutines.
type Minimax[P, A comparable, S game.State[P, A, S]] struct {
	goroutines int
	metrics    bool
}

func NewMinimax[P, A comparable, S game.State[P, A, S]](opts ...Option) *Minimax[P, A, S] {
	o := options{goroutines: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return &Minimax[P, A, S]{
		goroutines: o.goroutines,
		metrics:    o.metrics,
	}
}

// BestAction returns the first action, in enumeration order, that maximizes the value of
// state for the player to move.
func (m *Minimax[P, A, S]) BestAction(state S) (A, error) {
	d, err := m.Search(state)
	if err != nil {
		var none A
		return none, err
	}
	return d.Action, nil
}

// Value returns the negamax value of state from the perspective of state.Player().
func (m *Minimax[P, A, S]) Value(state S) (float64, error) {
	return value[P, A](state, NewNoMetricsCollector())
}

// Scores returns the value of every legal action in state, in enumeration order.
func (m *Minimax[P, A, S]) Scores(state S) ([]Score[A], error) {
	actions := state.Actions()
	if state.Terminal() || len(actions) == 0 {
		return nil, ErrNoAction
	}
	return m.scores(state, actions, NewNoMetricsCollector())
}

// Search scores every legal action in state and picks the best one.
func (m *Minimax[P, A, S]) Search(state S) (Decision[A], error) {
	if state.Terminal() {
		return Decision[A]{}, ErrNoAction
	}
	actions := state.Actions()
	if len(actions) == 0 {
		return Decision[A]{}, ErrNoAction
	}

	metrics := NewNoMetricsCollector()
	if m.metrics {
		metrics = NewMetricsCollector()
	}
	metrics.Start(m.goroutines)
	metrics.AddNode()

	scores, err := m.scores(state, actions, metrics)
	if err != nil {
		return Decision[A]{}, err
	}
	best := first(scores)
	d := Decision[A]{
		Action:  scores[best].Action,
		Value:   scores[best].Value,
		Scores:  scores,
		Metrics: metrics.Complete(),
	}

	log.Debug().
		Str("player", fmt.Sprint(state.Player())).
		Str("action", fmt.Sprint(d.Action)).
		Float64("value", d.Value).
		Int("actions", len(actions)).
		Int64("nodes", d.Metrics.Nodes).
		Msg("minimax search complete")
	return d, nil
}

func (m *Minimax[P, A, S]) scores(state S, actions []A, metrics MetricsCollector) ([]Score[A], error) {
	if m.goroutines <= 1 || len(actions) == 1 {
		scores := make([]Score[A], len(actions))
		for i, a := range actions {
			v, err := score[P](state, a, metrics)
			if err != nil {
				return nil, err
			}
			scores[i] = Score[A]{Action: a, Value: v}
		}
		return scores, nil
	}
	return m.parallelScores(state, actions, metrics)
}

// parallelScores evaluates root children on a worker pool. Scores and errors are stored by
// action index so that selection afterwards is independent of completion order.
func (m *Minimax[P, A, S]) parallelScores(state S, actions []A, metrics MetricsCollector) ([]Score[A], error) {
	task := make(chan int, len(actions))
	for i := range actions {
		task <- i
	}
	close(task)

	scores := make([]Score[A], len(actions))
	errs := make([]error, len(actions))

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(actions)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for ith := range task {
				v, err := score[P](state, actions[ith], metrics)
				scores[ith] = Score[A]{Action: actions[ith], Value: v}
				errs[ith] = err
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return scores, nil
}

// score is the value of playing action in state for the player to move in state.
func score[P, A comparable, S game.State[P, A, S]](state S, action A, metrics MetricsCollector) (float64, error) {
	child, err := state.Result(action)
	if err != nil {
		return 0, fmt.Errorf("%w: enumerated action %v rejected: %w", ErrContractViolation, action, err)
	}
	v, err := value[P, A](child, metrics)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func value[P, A comparable, S game.State[P, A, S]](state S, metrics MetricsCollector) (float64, error) {
	metrics.AddNode()
	if state.Terminal() {
		metrics.AddTerminal()
		return state.Utility(state.Player()), nil
	}

	actions := state.Actions()
	if len(actions) == 0 {
		return 0, fmt.Errorf("%w: non-terminal state has no actions", ErrContractViolation)
	}

	best := math.Inf(-1)
	for _, a := range actions {
		v, err := score[P](state, a, metrics)
		if err != nil {
			return 0, err
		}
		if v > best {
			best = v
		}
	}
	return best, nil
}
