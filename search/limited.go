package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lazybeaver/atm"
	"github.com/katalvlaran/lazybeaver/stepper"
)

// Limited enumerates every distinguishable n-state machine up to a step
// budget and returns the least step count in [1, budget] that no machine
// halts at.
//
// Algorithm:
//  1. Push the root machine (all cells undefined) on a stack.
//  2. Pop a machine and execute it for at most budget steps.
//     Halted(k) marks step k as witnessed; StillRunning and NeverHalts are
//     leaves; Split pushes every refinement of the undefined cell reached.
//  3. Repeat until the stack is empty. Each refinement defines one more
//     cell, so every chain ends and the search terminates.
//  4. Scan the witnessed steps for the first gap.
//
// Complexity:
//
//	Time   = O(M·budget) for M examined machines
//	Memory = O(h + t) for the latest halting step h and the tape cells t
//	         written by one machine, plus the frontier
//
// Errors:
//   - ErrInvalidStates  states is 0 or above atm.MaxStates
//   - ErrInvalidBudget  budget is 0 or above BudgetLimit
//   - the context error, wrapped, if Options.Ctx is cancelled
//
// Limited is deterministic: equal arguments give equal results.
func Limited(states int, budget uint64, opts ...Option) (Result, error) {
	if budget == 0 || budget > BudgetLimit {
		return Result{}, fmt.Errorf("search: Limited(%d, %d): %w", states, budget, ErrInvalidBudget)
	}
	root, err := atm.NewRoot(states)
	if err != nil {
		return Result{}, fmt.Errorf("search: Limited(%d, %d): %w", states, budget, err)
	}

	o := buildOptions(opts)
	start := time.Now()

	runner := stepper.NewRunner()
	runner.SkipNeverHalts = !o.NeverHaltsCheck

	res := Result{
		States: states,
		Budget: budget,
	}
	stats := &res.Stats

	stack := []atm.Machine{root}
	for len(stack) > 0 {
		// Pop; clear the slot so the table can be collected.
		m := stack[len(stack)-1]
		stack[len(stack)-1] = atm.Machine{}
		stack = stack[:len(stack)-1]
		stats.Examined++

		if stats.Examined%ctxCheckEvery == 0 {
			if err = o.Ctx.Err(); err != nil {
				return res, fmt.Errorf("search: Limited(%d, %d) after %d machines: %w",
					states, budget, stats.Examined, err)
			}
		}
		if o.ProgressEvery > 0 && stats.Examined%o.ProgressEvery == 0 {
			o.Logger.Debug("search progress",
				"states", states,
				"budget", budget,
				"examined", stats.Examined,
				"frontier", len(stack))
		}

		out := runner.Execute(m, budget)
		switch out.Kind {
		case stepper.Halted:
			stats.Halted++
			if grow := int(out.Step) - len(res.Halts); grow > 0 {
				res.Halts = append(res.Halts, make([]uint64, grow)...)
			}
			res.Halts[out.Step-1]++
			if o.OnHalt != nil {
				o.OnHalt(m, out.Step)
			}
		case stepper.StillRunning:
			stats.StillRunning++
		case stepper.NeverHalts:
			stats.NeverHalts++
		case stepper.Split:
			stats.Refined++
			stack = append(stack, out.Children...)
		}
	}

	for i, n := range res.Halts {
		if n == 0 {
			res.Least = uint64(i) + 1
			res.Found = true

			break
		}
	}
	if !res.Found && uint64(len(res.Halts)) < budget {
		res.Least = uint64(len(res.Halts)) + 1
		res.Found = true
	}

	elapsed := time.Since(start)
	o.Logger.Debug("search finished",
		"states", states,
		"budget", budget,
		"examined", stats.Examined,
		"found", res.Found,
		"least", res.Least,
		"elapsed", elapsed)
	if o.Recorder != nil {
		o.Recorder.RecordRun(res, elapsed)
	}

	return res, nil
}

// Bucket is one non-empty entry of a halting-time histogram.
type Bucket struct {
	Step     uint64 `json:"step" yaml:"step"`
	Machines uint64 `json:"machines" yaml:"machines"`
}

// Distribution runs Limited and returns how many enumerated machines halt at
// each step, skipping steps no machine halts at.
func Distribution(states int, budget uint64, opts ...Option) ([]Bucket, Result, error) {
	res, err := Limited(states, budget, opts...)
	if err != nil {
		return nil, res, err
	}

	var buckets []Bucket
	for i, n := range res.Halts {
		if n > 0 {
			buckets = append(buckets, Bucket{Step: uint64(i) + 1, Machines: n})
		}
	}

	return buckets, res, nil
}
