package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazybeaver/internal/report"
	"github.com/katalvlaran/lazybeaver/search"
)

func newDistributionCmd(a *app) *cobra.Command {
	var states int
	var budget uint64

	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Print how many enumerated machines halt at each step",
		Args:  cobra.NoArgs,
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			buckets, res, err := search.Distribution(states, budget, a.searchOptions(ctx)...)
			if err != nil {
				return err
			}

			return report.WriteDistribution(cmd.OutOrStdout(), a.cfg.Output.Format, report.Distribution{
				States:  states,
				Budget:  budget,
				Stats:   res.Stats,
				Buckets: buckets,
				Running: res.Stats.StillRunning + res.Stats.NeverHalts,
			})
		}),
	}

	f := cmd.Flags()
	f.IntVarP(&states, "states", "n", 3, "Number of machine states")
	f.Uint64VarP(&budget, "max-steps", "s", 200, "Step budget")

	return cmd
}
