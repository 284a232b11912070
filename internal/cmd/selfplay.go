package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"adversarial/config"
	"adversarial/experiments"
	"adversarial/tictactoe"
)

func SelfPlay(cfg *config.Config) *cobra.Command {
	var (
		games      int
		open       int
		randomOpen bool
		seed       uint64
		xAgent     string
		oAgent     string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Plays agents against each other",
		Long: heredoc.Doc(`
			Plays games between two agents, by default the minimax engine against itself.
			Optimal play by both sides always ends in a draw.
		`),
		Example: heredoc.Doc(`
			$ adversarial selfplay --open 0
			$ adversarial selfplay --games 20 --random-open --out experiments
			$ adversarial selfplay --o random --games 100
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if open >= tictactoe.Size {
				return fmt.Errorf("--open must be a square 0-8, got %d", open)
			}
			w := cmd.OutOrStdout()
			rng := rand.New(rand.NewSource(seed))

			result, err := experiments.Run(experiments.Match[tictactoe.Player, tictactoe.Action, tictactoe.State]{
				Games:    games,
				Initial:  tictactoe.NewGame(),
				MaxPlies: cfg.MaxPlies,
				Agents: func(game int) (map[tictactoe.Player]Agent, error) {
					x, err := newAgent(xAgent, seed+uint64(2*game), cfg)
					if err != nil {
						return nil, err
					}
					o, err := newAgent(oAgent, seed+uint64(2*game+1), cfg)
					if err != nil {
						return nil, err
					}
					return map[tictactoe.Player]Agent{tictactoe.X: x, tictactoe.O: o}, nil
				},
				Opening: func(int) []tictactoe.Action {
					switch {
					case randomOpen:
						return []tictactoe.Action{{Position: rng.Intn(tictactoe.Size), Player: tictactoe.X}}
					case open >= 0:
						return []tictactoe.Action{{Position: open, Player: tictactoe.X}}
					}
					return nil
				},
				Report: func(game int, outcome Outcome) {
					fmt.Fprintf(w, "Game %d:\n", game)
					printOutcome(w, outcome)
					fmt.Fprintln(w)
				},
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "X wins: %d, O wins: %d, draws: %d\n", result.Wins["X"], result.Wins["O"], result.Draws)

			if out == "" {
				return nil
			}
			dir, err := result.Write(out)
			if err != nil {
				return err
			}
			log.Info().Str("dir", dir).Msg("wrote game records")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&games, "games", "n", 1, "Number of games to play")
	flags.IntVar(&open, "open", -1, "Square X opens on, -1 lets the X agent choose")
	flags.BoolVar(&randomOpen, "random-open", false, "Open every game on a random square")
	flags.Uint64Var(&seed, "seed", 1, "Seed for random openings and random agents")
	flags.StringVar(&xAgent, "x", "minimax", "Agent playing X: minimax, random or remote")
	flags.StringVar(&oAgent, "o", "minimax", "Agent playing O: minimax, random or remote")
	flags.StringVar(&out, "out", "", "Write game and move records as CSV under this directory")

	return cmd
}
