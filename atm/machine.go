package atm

import "fmt"

// Machine is a partially or fully specified n-state machine.
//
// Machines are values: copying one is cheap and the table is never mutated
// after construction. With and Refine always return machines backed by
// fresh table storage.
type Machine struct {
	states int    // n, fixed for the whole search
	next   State  // highest state a new rule may target
	root   bool   // canonical search root, first move fixed to Right
	table  []Cell // index state*Symbols + symbol
}

// NewRoot returns the single machine a search over n-state machines starts
// from: every cell undefined, watermark min(n-1, 1), Root set.
func NewRoot(n int) (Machine, error) {
	if n <= 0 || n > MaxStates {
		return Machine{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidStates, n, MaxStates)
	}

	return Machine{
		states: n,
		next:   State(min(n-1, 1)),
		root:   true,
		table:  make([]Cell, n*Symbols),
	}, nil
}

// States is the machine size n.
func (m Machine) States() int { return m.states }

// NextState is the highest state number a refinement may introduce.
func (m Machine) NextState() State { return m.next }

// Root reports whether m is the canonical root of a search.
func (m Machine) Root() bool { return m.root }

// Cell returns the entry for (s, sym).
func (m Machine) Cell(s State, sym Symbol) Cell {
	return m.table[int(s)*Symbols+int(sym)]
}

// With returns a copy of m whose (s, sym) entry is c.
// The copy is never a root.
func (m Machine) With(s State, sym Symbol, c Cell) Machine {
	t := make([]Cell, len(m.table))
	copy(t, m.table)
	t[int(s)*Symbols+int(sym)] = c

	return Machine{states: m.states, next: m.next, table: t}
}

// Clone returns a deep copy of m, Root flag included.
func (m Machine) Clone() Machine {
	c := m
	c.table = make([]Cell, len(m.table))
	copy(c.table, m.table)

	return c
}

// Undefined counts the cells that have no rule yet.
func (m Machine) Undefined() int {
	var n int
	for _, c := range m.table {
		if c.Kind() == Undefined {
			n++
		}
	}

	return n
}

// Refine expands the undefined cell (s, sym) into every more specific
// machine: one halting child followed by one child per
// (write, move, next) rule, in that loop order. The root only gets
// right-moving rules. Children are never roots.
//
// All child tables share one allocation, each child owning a disjoint,
// capacity-limited window of it.
func (m Machine) Refine(s State, sym Symbol) []Machine {
	moves := []Direction{Left, Right}
	if m.root {
		moves = moves[1:]
	}

	width := len(m.table)
	count := 1 + Symbols*len(moves)*(int(m.next)+1)
	backing := make([]Cell, count*width)
	children := make([]Machine, 0, count)
	idx := int(s)*Symbols + int(sym)
	top := State(m.states - 1)

	add := func(c Cell, next State) {
		k := len(children)
		t := backing[k*width : (k+1)*width : (k+1)*width]
		copy(t, m.table)
		t[idx] = c
		children = append(children, Machine{states: m.states, next: next, table: t})
	}

	add(HaltCell, m.next)
	for write := Symbol(0); write < Symbols; write++ {
		for _, move := range moves {
			for next := State(0); next <= m.next; next++ {
				// States are introduced in the order they are first reached.
				add(RuleCell(next, write, move), min(max(next+1, m.next), top))
			}
		}
	}

	return children
}
