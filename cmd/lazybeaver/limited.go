package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazybeaver/atm"
	"github.com/katalvlaran/lazybeaver/internal/report"
	"github.com/katalvlaran/lazybeaver/internal/ui"
	"github.com/katalvlaran/lazybeaver/search"
)

func newLimitedCmd(a *app) *cobra.Command {
	var states int
	var budget uint64
	var witnesses bool

	cmd := &cobra.Command{
		Use:   "limited",
		Short: "Run one bounded enumeration and report the least unwitnessed halting time",
		Args:  cobra.NoArgs,
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			opts := a.searchOptions(ctx)
			first := make(map[uint64]atm.Machine)
			if witnesses {
				opts = append(opts, search.WithOnHalt(func(m atm.Machine, step uint64) {
					if _, ok := first[step]; !ok {
						first[step] = m
					}
				}))
			}

			start := time.Now()
			res, err := search.Limited(states, budget, opts...)
			if err != nil {
				return err
			}

			w := report.NewWriter(cmd.OutOrStdout(), a.cfg.Output.Format)
			if err = w.Add(report.FromResult(res, time.Since(start))); err != nil {
				return err
			}
			if err = w.Flush(); err != nil {
				return err
			}

			if witnesses {
				steps := make([]uint64, 0, len(first))
				for k := range first {
					steps = append(steps, k)
				}
				sort.Slice(steps, func(i, j int) bool { return steps[i] < steps[j] })

				pairs := make([]ui.Pair, 0, len(steps))
				for _, k := range steps {
					pairs = append(pairs, ui.KV(fmt.Sprintf("%d steps", k), first[k].String()))
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(),
					ui.InfoMsg("first halting machine per step")+"\n"+ui.KeyValues("  ", pairs...))
			}

			return err
		}),
	}

	f := cmd.Flags()
	f.IntVarP(&states, "states", "n", 2, "Number of machine states")
	f.Uint64VarP(&budget, "max-steps", "s", 10, "Step budget")
	f.BoolVar(&witnesses, "witnesses", false, "Print one halting machine per witnessed step count")

	return cmd
}
