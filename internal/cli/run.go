package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"lifecycle-ca/internal/render"
	"lifecycle-ca/internal/sims/lifecycle"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
)

type runOptions struct {
	size  int
	seed  int64
	speed int
	ticks int
	sets  []string
	every bool
	delay bool
	quiet bool
}

func newRunCommand(root *rootOptions) *cobra.Command {
	defaults := lifecycle.DefaultConfig()
	opts := runOptions{
		size:  defaults.Size,
		seed:  defaults.Seed,
		speed: defaults.Speed,
		ticks: 10,
	}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Seed a grid from the weights and advance it tick by tick.",
		Example: `  lifecycle run --ticks 20 --every
  lifecycle run --set young=60 --set elder=0 --seed 7 --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSim(cmd.Context(), cmd.OutOrStdout(), root.logger, opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.size, "size", opts.size, "grid dimension N (N x N cells)")
	f.Int64Var(&opts.seed, "seed", opts.seed, "random seed for the initial grid")
	f.IntVar(&opts.speed, "speed", opts.speed, "speed slider 100..1900; tick delay is 2000ms minus speed")
	f.IntVar(&opts.ticks, "ticks", opts.ticks, "number of ticks to run")
	f.StringArrayVar(&opts.sets, "set", nil, "seeding weight change as state=value (repeatable, applied in order)")
	f.BoolVar(&opts.every, "every", false, "print the grid after every tick")
	f.BoolVar(&opts.delay, "delay", false, "wait the tick delay between ticks")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "print only the final census")
	return cmd
}

func runSim(ctx context.Context, out io.Writer, logger *slog.Logger, opts runOptions) error {
	if opts.ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", opts.ticks)
	}
	if opts.size <= 0 {
		return fmt.Errorf("size must be positive, got %d", opts.size)
	}

	cfg := lifecycle.DefaultConfig()
	cfg.Size = opts.size
	cfg.Seed = opts.seed
	cfg.Speed = opts.speed
	sim := lifecycle.New(cfg)
	for _, set := range opts.sets {
		state, value, err := parseAssignment(set)
		if err != nil {
			return err
		}
		if err := sim.SetWeight(state, value); err != nil {
			return fmt.Errorf("--set %s: %w", set, err)
		}
	}

	log := logger.With("run", xid.New().String())
	sim.Reset(cfg.Seed)
	log.Info("grid seeded",
		"size", cfg.Size,
		"seed", cfg.Seed,
		"weights", sim.Weights().String(),
		"census", sim.Grid().Census().String())

	if !opts.quiet {
		if err := printFrame(out, sim); err != nil {
			return err
		}
	}

	sim.Start()
	defer sim.Stop()
	for sim.Tick() < opts.ticks {
		if opts.delay {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(sim.TickDelay()):
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		sim.Step()
		log.Debug("tick", "tick", sim.Tick(), "census", sim.Grid().Census().String())
		if opts.every && !opts.quiet {
			if err := printFrame(out, sim); err != nil {
				return err
			}
		}
	}

	if !opts.quiet && !opts.every && opts.ticks > 0 {
		if err := printFrame(out, sim); err != nil {
			return err
		}
	}
	census := sim.Grid().Census()
	fmt.Fprintf(out, "tick %d: %s\n", sim.Tick(), census)
	log.Info("run finished", "ticks", sim.Tick(), "census", census.String())
	return nil
}

func printFrame(out io.Writer, sim *lifecycle.Sim) error {
	fmt.Fprintf(out, "tick %d\n", sim.Tick())
	return render.WriteText(out, sim.Cells(), sim.Size().W, lifecycle.Glyphs())
}
