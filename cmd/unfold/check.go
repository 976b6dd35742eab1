package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/mnightingale/unfold"
	"github.com/mnightingale/unfold/internal/reference"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/transform"
)

var errMismatch = errors.New("unfold disagrees with the reference")

type checkOptions struct {
	trials     int
	seed       uint64
	workers    int
	maxReports int
}

type checkResult struct {
	trials     int64
	mismatches int64
}

type checkStrategy struct {
	name   string
	decode func(string) string
}

var checkStrategies = []checkStrategy{
	{"forward", func(s string) string { return string(unfold.Decode([]byte(s))) }},
	{"backward", func(s string) string { return string(unfold.DecodeBackward([]byte(s))) }},
	{"string", unfold.DecodeString},
	{"stream", func(s string) string {
		out, _, err := transform.String(unfold.NewTransformer(), s)
		if err != nil {
			return "error: " + err.Error()
		}
		return out
	}},
}

func newCheckCmd(a *app) *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every unfold strategy against the reference matcher",
		Long: `Run randomized trials comparing every unfold strategy with an independent
alternation-based matcher. Each trial checks one input built from alphanumeric
runs joined by fold markers and one random mix of letters, CR, LF and SPACE.

Mismatches are logged with CR, LF and SPACE shown as R, N and _.

Examples:
  # Run the default 10000 trials
  unfold check

  # Reproduce a run
  unfold check --trials 100000 --seed 42 --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runCheck(cmd.Context(), a.logger, opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d trials, %d mismatches\n", res.trials, res.mismatches)
			if res.mismatches > 0 {
				return errMismatch
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.trials, "trials", 10000, "number of randomized trials")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "concurrent workers")
	cmd.Flags().IntVar(&opts.maxReports, "max-reports", 20, "maximum number of mismatches logged")

	return cmd
}

func runCheck(ctx context.Context, logger *zap.Logger, opts checkOptions) (checkResult, error) {
	if opts.trials < 0 {
		return checkResult{}, fmt.Errorf("trials must not be negative, got %d", opts.trials)
	}
	workers := max(opts.workers, 1)

	var trials, mismatches atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := opts.trials / workers
		if w < opts.trials%workers {
			n++
		}

		g.Go(func() error {
			rng := rand.New(rand.NewPCG(opts.seed, uint64(w)))

			for range n {
				if err := ctx.Err(); err != nil {
					return err
				}

				inputs := [...]string{
					reference.RandomFolded(rng, 4),
					reference.RandomText(rng, rng.IntN(64)),
				}
				for _, in := range inputs {
					for _, s := range checkStrategies {
						m := reference.Check(in, s.decode)
						if m == nil {
							continue
						}
						if mismatches.Add(1) <= int64(opts.maxReports) {
							logger.Error("mismatch",
								zap.String("strategy", s.name),
								zap.String("input", reference.Visible(m.Input)),
								zap.String("expected", reference.Visible(m.Expected)),
								zap.String("actual", reference.Visible(m.Actual)))
						}
					}
				}
				trials.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()

	res := checkResult{trials: trials.Load(), mismatches: mismatches.Load()}
	logger.Info("check finished",
		zap.Int64("trials", res.trials),
		zap.Int64("mismatches", res.mismatches),
		zap.Int("workers", workers),
		zap.Uint64("seed", opts.seed))

	return res, err
}
