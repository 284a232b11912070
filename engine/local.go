package engine

import (
	"fmt"

	"adversarial/agent"
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"

	"github.com/rs/zerolog/log"
)

// Ply is one played action and the state it led to.
type Ply[P, A comparable, S any] struct {
	Step   int
	Player P
	Action A
	State  S
}

type Outcome[P, A comparable, S any] struct {
	Final     S
	History   []Ply[P, A, S] // In play order
	Utilities map[P]float64  // Final utility of every seated player
	Game      metrics.GameMetric
	Moves     []metrics.MoveMetric
}

// Winner returns the player with a positive final utility.
func (o Outcome[P, A, S]) Winner() (P, bool) {
	for p, u := range o.Utilities {
		if u > 0 {
			return p, true
		}
	}
	var none P
	return none, false
}

// Local plays agents against each other in process. The move history is owned by the
// engine and returned with the outcome, states never refer back to their predecessors.
type Local[P, A comparable, S game.State[P, A, S]] struct {
	agents   map[P]agent.Agent[A, S]
	maxPlies int
	metrics  bool
}

func LocalEngine[P, A comparable, S game.State[P, A, S]](agents map[P]agent.Agent[A, S], opts ...Option) *Local[P, A, S] {
	if len(agents) < 2 {
		panic("need at least two agents")
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Local[P, A, S]{
		agents:   agents,
		maxPlies: o.maxPlies,
		metrics:  o.metrics,
	}
}

// Run executes the game loop until a terminal state. A rejected action stops the game and
// is returned as is, wrapped with the step it was played at.
func (e *Local[P, A, S]) Run(initial S, opening ...A) (Outcome[P, A, S], error) {
	collector := metrics.NewDummyCollector()
	if e.metrics {
		collector = metrics.NewCollector()
	}
	collector.Start(fmt.Sprint(initial.Player()))
	log.Info().Msgf("player %v is starting", initial.Player())

	state := initial
	var history []Ply[P, A, S]
	play := func(action A, search searcher.SearchMetrics) error {
		step := len(history) + 1
		player := state.Player()
		next, err := state.Result(action)
		if err != nil {
			return fmt.Errorf("step %d: player %v plays %v: %w", step, player, action, err)
		}
		history = append(history, Ply[P, A, S]{Step: step, Player: player, Action: action, State: next})
		collector.AddMove(metrics.MoveMetric{
			Step:          step,
			Player:        fmt.Sprint(player),
			Action:        fmt.Sprint(action),
			SearchMetrics: search,
		})
		log.Debug().Int("step", step).Msgf("player %v played %v", player, action)
		state = next
		return nil
	}

	for _, action := range opening {
		if err := e.checkPlies(len(history)); err != nil {
			return Outcome[P, A, S]{}, err
		}
		if err := play(action, searcher.SearchMetrics{}); err != nil {
			return Outcome[P, A, S]{}, err
		}
	}

	for !state.Terminal() {
		if err := e.checkPlies(len(history)); err != nil {
			return Outcome[P, A, S]{}, err
		}
		player := state.Player()
		a, ok := e.agents[player]
		if !ok {
			return Outcome[P, A, S]{}, fmt.Errorf("%w %v", ErrNoAgent, player)
		}
		action, search, err := a.FindAction(state)
		if err != nil {
			return Outcome[P, A, S]{}, fmt.Errorf("step %d: player %v: %w", len(history)+1, player, err)
		}
		if err := play(action, search); err != nil {
			return Outcome[P, A, S]{}, err
		}
	}

	utilities := make(map[P]float64, len(e.agents))
	for p := range e.agents {
		utilities[p] = state.Utility(p)
	}
	outcome := Outcome[P, A, S]{
		Final:     state,
		History:   history,
		Utilities: utilities,
	}

	winner := ""
	if p, ok := outcome.Winner(); ok {
		winner = fmt.Sprint(p)
		log.Info().Int("plies", len(history)).Msgf("game over, player %v wins", p)
	} else {
		log.Info().Int("plies", len(history)).Msg("game over, draw")
	}
	outcome.Game, outcome.Moves = collector.Complete(winner)
	return outcome, nil
}

func (e *Local[P, A, S]) checkPlies(plies int) error {
	if e.maxPlies > 0 && plies >= e.maxPlies {
		return fmt.Errorf("%w (%d)", ErrMaxPlies, e.maxPlies)
	}
	return nil
}
