// Package atm models the abstract Turing machines enumerated by the
// lazy beaver search: 2-symbol machines with up to MaxStates states,
// running on a blank bi-infinite tape.
//
// What:
//
//   - Cell: one transition-table entry, either Undefined, Halt, or a
//     Rule (next state, symbol to write, head move).
//   - Machine: an immutable-by-convention descriptor holding the table,
//     the number of states n, the next-available-state watermark used for
//     symmetry pruning, and the Root flag of the canonical search root.
//   - Refine: expands an undefined cell into the exhaustive set of more
//     specific machines, in state-introduction order.
//   - Tape: a bit tape around the start cell that grows as the head
//     writes, so a run costs what it executes rather than its budget.
//   - String/Parse: the standard text format, e.g. "1RB1LB_1LA---".
//
// Refinement policy:
//
//	For the cell (s, b) of machine m with watermark w:
//	  1. one child where (s, b) halts;
//	  2. for write ∈ {0,1}, move ∈ {L,R} (R only for the root),
//	     next ∈ [0, w]: one child with the rule, and watermark
//	     min(max(next+1, w), n-1).
//	That is 1 + 2·2·(w+1) children, or 1 + 2·(w+1) for the root.
//
// Complexity:
//
//   - Cell, With:  O(1) / O(n)
//   - Refine:      O(k·n) for k children, one allocation for all tables
//   - Tape:        O(1) per read/write/move; Reset is O(cells written)
//
// Errors:
//
//   - ErrInvalidStates  n is 0 or larger than MaxStates
//   - ErrBadFormat      text form cannot be parsed
package atm
