package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"adversarial/config"
)

func Root(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "adversarial",
		Short: "Exhaustive minimax search for tic-tac-toe",
		Long: heredoc.Doc(`
			Adversarial searches the full game tree of tic-tac-toe with minimax and plays
			the first optimal move it finds.

			Configuration is read from ADVERSARIAL_* environment variables, flags take
			precedence.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if cmd.Flag("debug").Changed {
				level = zerolog.DebugLevel
			}
			if cmd.Flag("trace").Changed {
				level = zerolog.TraceLevel
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().IntVarP(&cfg.Goroutines, "goroutines", "g", cfg.Goroutines, "Goroutines scoring the root's moves")
	root.PersistentFlags().IntVar(&cfg.MaxPlies, "max-plies", cfg.MaxPlies, "Fail games longer than this many plies")

	root.AddCommand(SelfPlay(cfg))
	root.AddCommand(Play(cfg))
	root.AddCommand(Serve(cfg))

	return root
}
