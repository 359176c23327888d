package search

import (
	"errors"
	"fmt"
	"math"
)

// LazyBeaver computes LB(states) by running Limited with budgets
// InitialBudget, ×10, ×100, … until one leaves a step count unwitnessed.
// Each budget restarts the enumeration from the root.
//
// By default there is no upper bound and the call may run for as long as the
// true value requires. WithMaxBudget bounds it; the last insufficient result
// is returned together with ErrBudgetExhausted. Budgets above BudgetLimit
// also end with ErrBudgetExhausted.
func LazyBeaver(states int, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	budget := o.InitialBudget
	for {
		res, err := Limited(states, budget, opts...)
		if errors.Is(err, ErrInvalidBudget) {
			return res, fmt.Errorf("search: LazyBeaver(%d) at budget %d: %w", states, budget, ErrBudgetExhausted)
		}
		if err != nil {
			return res, err
		}
		if res.Found {
			return res, nil
		}

		o.Logger.Info("budget too small",
			"states", states,
			"budget", budget,
			"examined", res.Stats.Examined)
		if o.OnBudget != nil {
			o.OnBudget(res)
		}

		if budget > math.MaxUint64/10 {
			return res, fmt.Errorf("search: LazyBeaver(%d) at budget %d: %w", states, budget, ErrBudgetExhausted)
		}
		budget *= 10
		if o.MaxBudget > 0 && budget > o.MaxBudget {
			return res, fmt.Errorf("search: LazyBeaver(%d) above budget %d: %w", states, o.MaxBudget, ErrBudgetExhausted)
		}
	}
}
