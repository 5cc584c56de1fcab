package cli

import (
	"fmt"

	"lifecycle-ca/internal/sims/lifecycle"

	"github.com/spf13/cobra"
)

func newAdjustCommand() *cobra.Command {
	var (
		from string
		sets []string
	)
	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Move seeding sliders and show how the others rebalance.",
		Example: `  lifecycle adjust --set young=40
  lifecycle adjust --from 0,33,33,34 --set off=1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := lifecycle.DefaultWeights()
			if from != "" {
				parsed, err := parseWeights(from)
				if err != nil {
					return err
				}
				w = parsed
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start: %s\n", w)
			for _, set := range sets {
				state, value, err := parseAssignment(set)
				if err != nil {
					return err
				}
				w, err = lifecycle.Adjust(w, state, value)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s=%d: %s\n", state, value, w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "starting weights off,young,adult,elder (default 25,25,25,25)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "slider change as state=value (repeatable, applied in order)")
	return cmd
}
