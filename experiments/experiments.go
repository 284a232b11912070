package experiments

import (
	"fmt"

	"adversarial/agent"
	"adversarial/engine"
	"adversarial/experiments/metrics"
	"adversarial/game"

	"github.com/rs/zerolog/log"
)

// Match is a series of games from the same initial state.
type Match[P, A comparable, S game.State[P, A, S]] struct {
	Games    int
	Initial  S
	MaxPlies int
	// Agents seats the players of a game, numbered from 1.
	Agents func(game int) (map[P]agent.Agent[A, S], error)
	// Opening returns actions played before the agents take over. Optional.
	Opening func(game int) []A
	// Report is called after every game. Optional.
	Report func(game int, outcome engine.Outcome[P, A, S])
}

type Result struct {
	Wins  map[string]int
	Draws int
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Run plays the match and stops at the first failed game.
func Run[P, A comparable, S game.State[P, A, S]](m Match[P, A, S]) (Result, error) {
	result := Result{Wins: map[string]int{}}
	for i := 1; i <= m.Games; i++ {
		agents, err := m.Agents(i)
		if err != nil {
			return result, err
		}
		e := engine.LocalEngine(agents, engine.WithMaxPlies(m.MaxPlies), engine.WithMetrics())

		var opening []A
		if m.Opening != nil {
			opening = m.Opening(i)
		}
		outcome, err := e.Run(m.Initial, opening...)
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i, err)
		}
		if m.Report != nil {
			m.Report(i, outcome)
		}

		if winner, ok := outcome.Winner(); ok {
			result.Wins[fmt.Sprint(winner)]++
		} else {
			result.Draws++
		}
		result.Games = append(result.Games, metrics.GameRecord{ID: i, GameMetric: outcome.Game})
		for _, move := range outcome.Moves {
			result.Moves = append(result.Moves, metrics.MoveRecord{Game: i, MoveMetric: move})
		}
		log.Debug().Msgf("game %d of %d finished", i, m.Games)
	}
	return result, nil
}

// Write stores the match records as CSV in a new timestamped folder under dir.
func (r Result) Write(dir string) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(r.Games); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(r.Moves); err != nil {
		return "", err
	}
	return writer.Dir(), nil
}
