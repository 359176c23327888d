// Package stepper runs a single atm.Machine from a blank tape for a bounded
// number of steps and classifies what happened.
//
// What:
//
//   - Execute / Runner.Execute: simulate up to a step budget and return one
//     of four outcomes: Halted (with the 1-indexed halting step),
//     StillRunning (budget spent), NeverHalts (proved by CannotHalt before
//     simulating), or Split (an undefined cell was reached; Children holds
//     its refinements).
//   - CannotHalt: a cheap forward-reachability proof that no configuration
//     the machine can reach ever takes a halting transition.
//
// Runner keeps one tape and reuses it for every machine it executes, so a
// search allocates tape storage once per budget instead of once per machine.
// A Runner is not safe for concurrent use.
//
// Complexity:
//
//   - Execute:    O(budget) time, O(budget) bits of tape
//   - CannotHalt: O(n²) time, O(1) memory
package stepper
