// Package search computes and bounds the Lazy Beaver function LB(n): the
// smallest number of steps that no n-state, 2-symbol Turing machine halts in
// when started on a blank tape.
//
// What:
//
//   - Limited: depth-first enumeration of every distinguishable machine up
//     to a step budget, with lazy refinement of undefined cells, symmetry
//     pruning (states numbered in order of first use, first move fixed to
//     the right) and the stepper's never-halts proof. Returns the statistics
//     and the least unwitnessed step count, if the budget leaves one.
//   - LazyBeaver: escalates the budget by powers of ten until Limited finds
//     a gap.
//   - Distribution: the halting-time histogram of the enumeration.
//
// Known values produced by this enumeration: LB(1)=2, LB(2)=7, LB(3)=22,
// LB(4)=72.
//
// A machine that is still running at the end of the budget is only counted,
// never proved non-halting, so Limited(n, b) bounds LB(n) only when the gap
// it reports is below b; that is exactly when Found is true.
//
// Options:
//
//   - WithContext:         cancellation, checked every 4096 machines
//   - WithNeverHaltsCheck: toggle the CannotHalt pre-check (default on)
//   - WithOnHalt:          observe every halting machine
//   - WithLogger, WithProgressEvery: debug progress logs
//   - WithRecorder:        metrics sink
//   - WithInitialBudget, WithMaxBudget, WithOnBudget: LazyBeaver escalation
//
// Errors:
//
//   - ErrInvalidStates    state count out of range
//   - ErrInvalidBudget    step budget 0 or above BudgetLimit
//   - ErrBudgetExhausted  LazyBeaver passed MaxBudget or BudgetLimit
package search
