package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazybeaver/internal/report"
	"github.com/katalvlaran/lazybeaver/search"
)

func newRunCmd(a *app) *cobra.Command {
	var from, to int
	var initial, maxBudget uint64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute LB(n) for a range of n, escalating the step budget tenfold until it suffices",
		Long: `Compute LB(n) for each n in [--from, --to].

For every n the step budget starts where the previous n finished and is
multiplied by ten until some step count is left unwitnessed. Each
insufficient budget is reported as "LB(n) > budget".`,
		Args: cobra.NoArgs,
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			s := &a.cfg.Search
			if cmd.Flags().Changed("from") {
				s.FromStates = from
			}
			if cmd.Flags().Changed("to") {
				s.ToStates = to
			}
			if cmd.Flags().Changed("initial-budget") {
				s.InitialBudget = initial
			}
			if cmd.Flags().Changed("max-budget") {
				s.MaxBudget = maxBudget
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			w := report.NewWriter(cmd.OutOrStdout(), a.cfg.Output.Format)
			start := time.Now()
			budget := s.InitialBudget
			var writeErr error

			for n := s.FromStates; n <= s.ToStates; n++ {
				opts := append(a.searchOptions(ctx),
					search.WithInitialBudget(budget),
					search.WithMaxBudget(s.MaxBudget),
					search.WithOnBudget(func(r search.Result) {
						if err := w.Add(report.FromResult(r, time.Since(start))); err != nil && writeErr == nil {
							writeErr = err
						}
					}))

				res, err := search.LazyBeaver(n, opts...)
				if err != nil {
					_ = w.Flush()

					return fmt.Errorf("LB(%d): %w", n, err)
				}
				if writeErr != nil {
					return writeErr
				}
				if err = w.Add(report.FromResult(res, time.Since(start))); err != nil {
					return err
				}
				a.logger.Info("lazy beaver found", "states", n, "value", res.Least, "budget", res.Budget)
				budget = res.Budget
			}

			return w.Flush()
		}),
	}

	f := cmd.Flags()
	f.IntVar(&from, "from", 1, "Smallest machine size")
	f.IntVar(&to, "to", 5, "Largest machine size")
	f.Uint64Var(&initial, "initial-budget", 100, "Step budget for the first n")
	f.Uint64Var(&maxBudget, "max-budget", 0, "Give up above this budget (0 = never)")

	return cmd
}
