// Package gtreecli contains the commands of the gtree demonstration binary.
package gtreecli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// Options configures [NewRootCommand].
type Options struct {
	// If set, the --log-level flag is ignored and every command logs here.
	Log *slog.Logger
}

// env is shared by all subcommands.
// Its fields are populated in the root command's PersistentPreRunE.
type env struct {
	log *slog.Logger
}

// NewRootCommand returns the gtree command with all subcommands attached.
func NewRootCommand(opts Options) *cobra.Command {
	e := new(env)
	var logLevel string

	cmd := &cobra.Command{
		Use:   "gtree",
		Short: "Build and print lazy rose trees",
		Long: `gtree builds lazily evaluated trees from flat parent relations
or from unfold rules, and prints a bounded prefix of them.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Log != nil {
				e.log = opts.Log
				return nil
			}

			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			e.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: lvl,
			}))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, or error)")

	cmd.AddCommand(
		newRelationCommand(e),
		newUnfoldCommand(e),
		newRandomCommand(e),
	)

	return cmd
}
