package atm

import "github.com/bits-and-blooms/bitset"

// Tape is a bi-infinite tape realised as two growable bit sets: cells at
// or right of the start cell live in right, cell -i in left at index i-1.
// A set bit is symbol 1.
//
// Storage grows only as far as the head actually writes, so a run costs
// time and memory proportional to the steps taken, whatever its budget.
// Reset reuses the storage for the next machine and only clears the cells
// the previous run wrote.
type Tape struct {
	right  *bitset.BitSet
	left   *bitset.BitSet
	head   int
	lo, hi int // written window, valid when dirty
	dirty  bool
}

// NewTape returns a blank tape with the head on the start cell.
func NewTape() *Tape {
	return &Tape{
		right: bitset.New(64),
		left:  bitset.New(64),
	}
}

// Reset blanks the tape and puts the head back on the start cell.
func (t *Tape) Reset() {
	if t.dirty {
		for i := t.lo; i <= t.hi; i++ {
			t.clear(i)
		}
	}
	t.head = 0
	t.dirty = false
}

// Read returns the symbol under the head.
func (t *Tape) Read() Symbol {
	set, i := t.cell(t.head)
	if set.Test(i) {
		return 1
	}

	return 0
}

// Write stores s under the head.
func (t *Tape) Write(s Symbol) {
	if s != 0 {
		set, i := t.cell(t.head)
		set.Set(i)
	} else {
		t.clear(t.head)
	}
	switch {
	case !t.dirty:
		t.lo, t.hi, t.dirty = t.head, t.head, true
	case t.head < t.lo:
		t.lo = t.head
	case t.head > t.hi:
		t.hi = t.head
	}
}

// Move shifts the head one cell.
func (t *Tape) Move(d Direction) {
	if d == Left {
		t.head--
	} else {
		t.head++
	}
}

// Head is the head offset from the start cell.
func (t *Tape) Head() int {
	return t.head
}

// Ones counts the 1 symbols on the tape.
func (t *Tape) Ones() int {
	return int(t.right.Count() + t.left.Count())
}

func (t *Tape) cell(pos int) (*bitset.BitSet, uint) {
	if pos >= 0 {
		return t.right, uint(pos)
	}

	return t.left, uint(-pos - 1)
}

// clear never grows the set: a bit past its length is already 0.
func (t *Tape) clear(pos int) {
	set, i := t.cell(pos)
	if i < set.Len() {
		set.Clear(i)
	}
}
