package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"adversarial/agent"
	"adversarial/config"
	"adversarial/engine"
	"adversarial/searcher"
	"adversarial/tictactoe"
)

func Play(cfg *config.Config) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Plays a game against the engine",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			human, err := tictactoe.ParsePlayer(as)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			e := engine.LocalEngine(map[tictactoe.Player]Agent{
				human:            agent.NewHumanAgent[tictactoe.Player](cmd.InOrStdin(), w, tictactoe.ParseAction),
				human.Opponent(): agent.NewMinimaxAgent(newMinimax(cfg, searcher.WithMetrics())),
			}, engine.WithMaxPlies(cfg.MaxPlies))

			fmt.Fprintf(w, "Playing Tic Tac Toe as %s, squares are numbered 0-8\n\n", human)
			outcome, err := e.Run(tictactoe.NewGame())
			if err != nil {
				return err
			}
			printOutcome(w, outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "X", "Symbol to play: X or O")

	return cmd
}
