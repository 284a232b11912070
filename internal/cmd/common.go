package cmd

import (
	"fmt"
	"io"

	"adversarial/agent"
	"adversarial/communication/client"
	"adversarial/config"
	"adversarial/engine"
	"adversarial/searcher"
	"adversarial/tictactoe"
)

type (
	Agent   = agent.Agent[tictactoe.Action, tictactoe.State]
	Outcome = engine.Outcome[tictactoe.Player, tictactoe.Action, tictactoe.State]
)

func newMinimax(cfg *config.Config, opts ...searcher.Option) *searcher.Minimax[tictactoe.Player, tictactoe.Action, tictactoe.State] {
	opts = append(opts, searcher.WithGoroutines(cfg.Goroutines))
	return searcher.NewMinimax[tictactoe.Player, tictactoe.Action, tictactoe.State](opts...)
}

// newAgent builds a "minimax", "random" or "remote" agent.
func newAgent(kind string, seed uint64, cfg *config.Config) (Agent, error) {
	switch kind {
	case "minimax":
		return agent.NewMinimaxAgent(newMinimax(cfg, searcher.WithMetrics())), nil
	case "random":
		return agent.NewRandomAgent[tictactoe.Player, tictactoe.Action, tictactoe.State](seed), nil
	case "remote":
		return client.NewAgent(cfg.ServerURL, cfg.Timeout), nil
	}
	return nil, fmt.Errorf("unknown agent %q, want minimax, random or remote", kind)
}

func printOutcome(w io.Writer, outcome Outcome) {
	fmt.Fprintf(w, "%s\n\n", outcome.Final)
	if winner, ok := outcome.Winner(); ok {
		fmt.Fprintf(w, "%s Wins!\n", winner)
	} else {
		fmt.Fprintln(w, "DRAW")
	}
}
