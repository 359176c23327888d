package stepper

import (
	"fmt"

	"github.com/katalvlaran/lazybeaver/atm"
)

// Kind tags an Outcome.
type Kind uint8

const (
	// Halted: the machine took a halting transition at Outcome.Step.
	Halted Kind = iota + 1
	// StillRunning: the whole budget ran without halting or reaching an undefined cell.
	StillRunning
	// NeverHalts: CannotHalt proved no reachable configuration halts.
	NeverHalts
	// Split: an undefined cell was reached; Outcome.Children refine it.
	Split
)

// String returns the outcome name.
func (k Kind) String() string {
	switch k {
	case Halted:
		return "halted"
	case StillRunning:
		return "still-running"
	case NeverHalts:
		return "never-halts"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Outcome is the result of executing one machine.
// Step is set only for Halted, Children only for Split.
type Outcome struct {
	Kind     Kind
	Step     uint64
	Children []atm.Machine
}
