package atm

import (
	"errors"
	"fmt"
)

// MaxStates is the largest machine size the model supports.
// It is bound by the one-letter state names of the text format.
const MaxStates = 26

// Symbols is the size of the tape alphabet.
const Symbols = 2

var (
	// ErrInvalidStates is returned when a machine size is 0 or exceeds MaxStates.
	ErrInvalidStates = errors.New("atm: state count out of range")

	// ErrBadFormat is returned when Parse cannot read a machine description.
	ErrBadFormat = errors.New("atm: malformed machine description")
)

// State identifies a machine state; state 0 is the start state.
type State uint8

// String renders a state as its letter (A for state 0).
func (s State) String() string {
	return string(rune('A' + s))
}

// Symbol is a tape symbol, 0 (blank) or 1.
type Symbol uint8

// Direction is a head move.
type Direction uint8

const (
	// Left moves the head one cell to the left.
	Left Direction = iota
	// Right moves the head one cell to the right.
	Right
)

// String returns "L" or "R".
func (d Direction) String() string {
	if d == Left {
		return "L"
	}

	return "R"
}

// CellKind classifies a transition cell.
type CellKind uint8

const (
	// Undefined: no rule assigned yet.
	Undefined CellKind = iota
	// Halt: taking this transition halts the machine.
	Halt
	// Rule: write, move, and switch state.
	Rule
)

// String returns a short name for the kind.
func (k CellKind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Halt:
		return "halt"
	case Rule:
		return "rule"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Cell is one transition-table entry packed into 16 bits:
//
//	bits 0-1  kind (Undefined, Halt, Rule)
//	bit  2    symbol to write
//	bit  3    direction (set = Right)
//	bits 8-15 next state
//
// The zero Cell is Undefined.
type Cell uint16

const (
	cellKindMask Cell = 0x3
	cellWriteBit Cell = 1 << 2
	cellRightBit Cell = 1 << 3
)

const cellNextShift = 8

const (
	// UndefinedCell is the zero cell.
	UndefinedCell Cell = Cell(Undefined)
	// HaltCell halts the machine.
	HaltCell Cell = Cell(Halt)
)

// RuleCell builds a cell that writes write, moves the head by move
// and continues in state next.
func RuleCell(next State, write Symbol, move Direction) Cell {
	c := Cell(Rule) | Cell(next)<<cellNextShift
	if write != 0 {
		c |= cellWriteBit
	}
	if move == Right {
		c |= cellRightBit
	}

	return c
}

// Kind reports whether c is undefined, a halt, or a rule.
func (c Cell) Kind() CellKind { return CellKind(c & cellKindMask) }

// Next is the state entered by a rule cell.
func (c Cell) Next() State { return State(c >> cellNextShift) }

// Write is the symbol written by a rule cell.
func (c Cell) Write() Symbol {
	if c&cellWriteBit != 0 {
		return 1
	}

	return 0
}

// Move is the head direction of a rule cell.
func (c Cell) Move() Direction {
	if c&cellRightBit != 0 {
		return Right
	}

	return Left
}

// String renders the cell in the standard three-character form:
// "1RB" for a rule, "---" for halt, "???" for undefined.
func (c Cell) String() string {
	switch c.Kind() {
	case Halt:
		return "---"
	case Rule:
		return fmt.Sprintf("%d%s%s", c.Write(), c.Move(), c.Next())
	default:
		return "???"
	}
}
