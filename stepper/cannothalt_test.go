package stepper_test

import (
	"testing"

	"github.com/katalvlaran/lazybeaver/atm"
	"github.com/katalvlaran/lazybeaver/stepper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCannotHalt_Cases covers proofs, undefined cells and reachable halts.
func TestCannotHalt_Cases(t *testing.T) {
	cases := []struct {
		machine string
		want    bool
		why     string
	}{
		{"1RA???", true, "one direction: only blanks are read, A1 unreachable"},
		{"0RA???", true, "writes blanks only"},
		{"1RB1LA_1LA1RB", true, "no halt cell at all"},
		{"1RB1LB_1LA---", false, "halt reachable once both directions are used"},
		{"1RB1LB_0LA---", false, "halt reachable in the abstraction though not in 1000 steps"},
		{"1RB???_1LA???", false, "undefined cell reachable"},
		{"??????", false, "root"},
		{"1RB---_1RB???", true, "B1 undefined but only blanks are read; A1 halt is unreachable"},
	}
	for _, tc := range cases {
		m, err := atm.Parse(tc.machine)
		require.NoError(t, err)
		assert.Equal(t, tc.want, stepper.CannotHalt(m), "%s: %s", tc.machine, tc.why)
	}
}

// TestCannotHalt_FixpointOnNewMoves needs a round in which no new state
// appears but a new direction makes written symbols readable.
func TestCannotHalt_FixpointOnNewMoves(t *testing.T) {
	// Round one: A0→1RC reaches C, C0→1RB reaches B (B is scanned before C,
	// so it waits). Round two: B0→1LA adds only the Left move. Round three
	// can read 1 and finds the A1 halt. Stopping when the state set is stable
	// would wrongly prove this machine never halts.
	m, err := atm.Parse("1RC---_1LA???_1RB???")
	require.NoError(t, err)
	assert.False(t, stepper.CannotHalt(m))

	out := stepper.Execute(m, 10)
	assert.Equal(t, stepper.Halted, out.Kind)
	assert.Equal(t, uint64(4), out.Step)
}

// TestCannotHalt_Sound never claims NeverHalts for a machine that halts.
func TestCannotHalt_Sound(t *testing.T) {
	root, err := atm.NewRoot(2)
	require.NoError(t, err)

	r := stepper.NewRunner()
	r.SkipNeverHalts = true
	stack := []atm.Machine{root}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out := r.Execute(m, 50)
		switch out.Kind {
		case stepper.Split:
			stack = append(stack, out.Children...)
		case stepper.Halted:
			assert.False(t, stepper.CannotHalt(m), "%s halts at %d", m, out.Step)
		}
	}
}
