package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazybeaver/atm"
	"github.com/katalvlaran/lazybeaver/internal/ui"
	"github.com/katalvlaran/lazybeaver/stepper"
)

func newSimulateCmd(a *app) *cobra.Command {
	var budget uint64

	cmd := &cobra.Command{
		Use:   "simulate MACHINE",
		Short: "Run one machine, given in standard text format, from a blank tape",
		Example: `  lazybeaver simulate 1RB1LB_1LA---
  lazybeaver simulate 1RB---_1LB0RC_1LC1LA --max-steps 50`,
		Args: cobra.ExactArgs(1),
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			m, err := atm.Parse(args[0])
			if err != nil {
				return err
			}

			r := stepper.NewRunner()
			r.SkipNeverHalts = !a.cfg.Search.NeverHalts
			out := r.Execute(m, budget)

			pairs := []ui.Pair{
				ui.KV("machine", ui.Accent(m.String())),
				ui.KV("budget", strconv.FormatUint(budget, 10)),
				ui.KV("outcome", ui.Bold(out.Kind.String())),
			}
			switch out.Kind {
			case stepper.Halted:
				pairs = append(pairs, ui.KV("steps", strconv.FormatUint(out.Step, 10)))
			case stepper.Split:
				pairs = append(pairs, ui.KV("children", strconv.Itoa(len(out.Children))))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), ui.KeyValues("", pairs...))

			return err
		}),
	}
	cmd.Flags().Uint64VarP(&budget, "max-steps", "s", 1000, "Step budget")

	return cmd
}
