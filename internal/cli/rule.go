package cli

import (
	"fmt"

	"lifecycle-ca/internal/sims/lifecycle"

	"github.com/spf13/cobra"
)

func newRuleCommand() *cobra.Command {
	var (
		state  string
		counts lifecycle.NeighborCounts
	)
	cmd := &cobra.Command{
		Use:     "rule",
		Short:   "Show the next state of a cell for given neighbour counts.",
		Example: `  lifecycle rule --state off --young 1 --adult 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := lifecycle.ParseState(state)
			if err != nil {
				return err
			}
			if counts.Young < 0 || counts.Adult < 0 || counts.Elder < 0 ||
				counts.Young+counts.Adult+counts.Elder > 8 {
				return fmt.Errorf("%w: neighbour counts must be non-negative and total at most 8",
					lifecycle.ErrInvalidArgument)
			}
			next := lifecycle.NextState(current, counts)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (young=%d adult=%d elder=%d) -> %s\n",
				current, counts.Young, counts.Adult, counts.Elder, next)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&state, "state", "off", "current cell state")
	f.IntVar(&counts.Young, "young", 0, "young neighbours")
	f.IntVar(&counts.Adult, "adult", 0, "adult neighbours")
	f.IntVar(&counts.Elder, "elder", 0, "elder neighbours")
	return cmd
}
