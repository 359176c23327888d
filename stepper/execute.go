package stepper

import "github.com/katalvlaran/lazybeaver/atm"

// Runner executes machines one after another on a shared tape.
type Runner struct {
	tape *atm.Tape

	// SkipNeverHalts disables the CannotHalt check, so every machine is
	// simulated. Results only differ in which leaves are NeverHalts rather
	// than StillRunning.
	SkipNeverHalts bool
}

// NewRunner returns a Runner with an empty tape.
func NewRunner() *Runner {
	return &Runner{tape: atm.NewTape()}
}

// Execute runs m with a fresh Runner.
func Execute(m atm.Machine, budget uint64) Outcome {
	return NewRunner().Execute(m, budget)
}

// Execute runs m from a blank tape in state 0 for at most budget steps.
//
// Steps are 1-indexed: reading a halting cell on step k yields Halted with
// Step k. No cell is looked up past step budget.
func (r *Runner) Execute(m atm.Machine, budget uint64) Outcome {
	if !r.SkipNeverHalts && CannotHalt(m) {
		return Outcome{Kind: NeverHalts}
	}

	r.tape.Reset()
	state := atm.State(0)
	for step := uint64(1); step <= budget; step++ {
		sym := r.tape.Read()
		c := m.Cell(state, sym)
		switch c.Kind() {
		case atm.Undefined:
			return Outcome{Kind: Split, Children: m.Refine(state, sym)}
		case atm.Halt:
			return Outcome{Kind: Halted, Step: step}
		}
		r.tape.Write(c.Write())
		r.tape.Move(c.Move())
		state = c.Next()
	}

	return Outcome{Kind: StillRunning}
}
