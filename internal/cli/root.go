// Package cli provides the headless command-line interface for the lifecycle
// automaton.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	logger  *slog.Logger
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree, so tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	root := &cobra.Command{
		Use:   "lifecycle",
		Short: "Run the four-state lifecycle automaton without a GUI.",
		Long: `Run the four-state lifecycle automaton without a GUI. Cells move ` +
			`through off, young, adult and elder stages depending on their ` +
			`neighbours; the grid is seeded from four percentage weights that ` +
			`always sum to 100.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every tick")

	root.AddCommand(
		newRunCommand(opts),
		newAdjustCommand(),
		newRuleCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure. An interrupt
// cancels a running simulation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
