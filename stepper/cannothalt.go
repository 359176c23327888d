package stepper

import "github.com/katalvlaran/lazybeaver/atm"

// CannotHalt reports whether m provably never halts from a blank tape.
//
// It computes a forward closure over abstract configurations: the set of
// reachable states, the head directions any reachable rule uses, and the
// symbols any reachable rule writes. While only one direction is in use the
// head always steps onto a fresh blank cell, so only 0 can be read; once both
// directions appear, any written symbol may be read back.
//
// Reaching an undefined cell answers false immediately, since a refinement
// of that cell could halt. Reaching a halt cell answers false as well. The
// closure runs until none of the three sets grows; a new direction or a new
// written symbol can make more cells readable even when no new state appears.
//
// The answer is sound (true implies the machine never halts) but incomplete.
func CannotHalt(m atm.Machine) bool {
	const (
		bothMoves = 1<<atm.Left | 1<<atm.Right
		blank     = 1 << 0
	)

	n := m.States()
	reached := uint32(1) // state 0
	var moves, written uint8

	for {
		readable := uint8(blank)
		if moves == bothMoves {
			readable |= written
		}

		grew := false
		for s := 0; s < n; s++ {
			if reached&(1<<s) == 0 {
				continue
			}
			for sym := atm.Symbol(0); sym < atm.Symbols; sym++ {
				if readable&(1<<sym) == 0 {
					continue
				}
				c := m.Cell(atm.State(s), sym)
				switch c.Kind() {
				case atm.Undefined, atm.Halt:
					return false
				}
				if bit := uint32(1) << c.Next(); reached&bit == 0 {
					reached |= bit
					grew = true
				}
				if bit := uint8(1) << c.Move(); moves&bit == 0 {
					moves |= bit
					grew = true
				}
				if bit := uint8(1) << c.Write(); written&bit == 0 {
					written |= bit
					grew = true
				}
			}
		}
		if !grew {
			return true
		}
	}
}
