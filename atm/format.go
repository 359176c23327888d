package atm

import (
	"fmt"
	"strings"
)

// String renders m in the standard text format: one underscore-separated
// group per state, two cells per group (symbol 0 then symbol 1).
// The BB(2) champion reads "1RB1LB_1LA---".
func (m Machine) String() string {
	var sb strings.Builder
	for s := 0; s < m.states; s++ {
		if s > 0 {
			sb.WriteByte('_')
		}
		for sym := 0; sym < Symbols; sym++ {
			sb.WriteString(m.table[s*Symbols+sym].String())
		}
	}

	return sb.String()
}

// Parse reads a machine in the format produced by String. "---" is a halt,
// "???" an undefined cell. The watermark is derived from the highest state
// the table refers to, so a parsed machine refines like one found by search.
func Parse(text string) (Machine, error) {
	groups := strings.Split(strings.TrimSpace(text), "_")
	n := len(groups)
	if n == 0 || n > MaxStates || groups[0] == "" {
		return Machine{}, fmt.Errorf("%w: %q has %d states", ErrBadFormat, text, n)
	}

	table := make([]Cell, n*Symbols)
	var highest State
	for s, g := range groups {
		if len(g) != 3*Symbols {
			return Machine{}, fmt.Errorf("%w: state %s is %q", ErrBadFormat, State(s), g)
		}
		for sym := 0; sym < Symbols; sym++ {
			c, err := parseCell(g[3*sym:3*sym+3], n)
			if err != nil {
				return Machine{}, fmt.Errorf("%w: state %s symbol %d: %v", ErrBadFormat, State(s), sym, err)
			}
			if c.Kind() == Rule && c.Next() > highest {
				highest = c.Next()
			}
			table[s*Symbols+sym] = c
		}
	}

	return Machine{
		states: n,
		next:   min(max(highest+1, State(min(n-1, 1))), State(n-1)),
		table:  table,
	}, nil
}

func parseCell(f string, n int) (Cell, error) {
	switch f {
	case "---":
		return HaltCell, nil
	case "???":
		return UndefinedCell, nil
	}

	var write Symbol
	switch f[0] {
	case '0':
		write = 0
	case '1':
		write = 1
	default:
		return 0, fmt.Errorf("bad symbol %q", f[0])
	}

	var move Direction
	switch f[1] {
	case 'L':
		move = Left
	case 'R':
		move = Right
	default:
		return 0, fmt.Errorf("bad direction %q", f[1])
	}

	next := int(f[2]) - 'A'
	if next < 0 || next >= n {
		return 0, fmt.Errorf("bad state %q", f[2])
	}

	return RuleCell(State(next), write, move), nil
}
