package stepper_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lazybeaver/atm"
	"github.com/katalvlaran/lazybeaver/stepper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) atm.Machine {
	t.Helper()
	m, err := atm.Parse(text)
	require.NoError(t, err)

	return m
}

// TestExecute_Champions checks the halting times of the 2- and 3-state busy beavers.
func TestExecute_Champions(t *testing.T) {
	cases := []struct {
		machine string
		steps   uint64
	}{
		{"1RB1LB_1LA---", 6},
		{"1RB---_1LB0RC_1LC1LA", 21},
	}
	for _, tc := range cases {
		out := stepper.Execute(mustParse(t, tc.machine), 1000)
		assert.Equal(t, stepper.Halted, out.Kind, tc.machine)
		assert.Equal(t, tc.steps, out.Step, tc.machine)
	}
}

// TestExecute_BudgetBoundary verifies that a halt on the last allowed step is
// reported and one step later is not.
func TestExecute_BudgetBoundary(t *testing.T) {
	m := mustParse(t, "1RB1LB_1LA---")

	assert.Equal(t, stepper.Halted, stepper.Execute(m, 6).Kind)
	assert.Equal(t, stepper.StillRunning, stepper.Execute(m, 5).Kind)
	assert.Equal(t, stepper.StillRunning, stepper.Execute(m, 0).Kind, "zero budget runs nothing")
}

// TestExecute_SplitOnUndefined checks that an undefined cell yields its refinements.
func TestExecute_SplitOnUndefined(t *testing.T) {
	root, err := atm.NewRoot(2)
	require.NoError(t, err)

	out := stepper.Execute(root, 10)
	require.Equal(t, stepper.Split, out.Kind)
	assert.Len(t, out.Children, 5, "root with w=1: halt + 2 symbols × 1 move × 2 states")

	// The halting child halts on the step where the cell was reached.
	first := stepper.Execute(out.Children[0], 10)
	assert.Equal(t, stepper.Halted, first.Kind)
	assert.Equal(t, uint64(1), first.Step)
}

// TestExecute_SplitAfterSteps reaches an undefined cell mid-run, reading a written 1.
func TestExecute_SplitAfterSteps(t *testing.T) {
	out := stepper.Execute(mustParse(t, "1RB???_1LA???"), 10)
	require.Equal(t, stepper.Split, out.Kind)
	for _, c := range out.Children {
		assert.NotEqual(t, atm.Undefined, c.Cell(0, 1).Kind(), "the A1 cell is the one refined")
	}
}

// TestExecute_NeverHalts checks the heuristic short-circuit and its opt-out.
func TestExecute_NeverHalts(t *testing.T) {
	m := mustParse(t, "1RA???")
	assert.Equal(t, stepper.NeverHalts, stepper.Execute(m, 10).Kind)

	r := stepper.NewRunner()
	r.SkipNeverHalts = true
	assert.Equal(t, stepper.StillRunning, r.Execute(m, 10).Kind)
}

// TestRunner_Reuse runs different machines and budgets on one Runner.
func TestRunner_Reuse(t *testing.T) {
	r := stepper.NewRunner()
	r.SkipNeverHalts = true
	bb2 := mustParse(t, "1RB1LB_1LA---")

	for _, budget := range []uint64{100, 3, 1000, 6} {
		out := r.Execute(bb2, budget)
		if budget >= 6 {
			assert.Equal(t, stepper.Halted, out.Kind, "budget %d", budget)
			assert.Equal(t, uint64(6), out.Step)
		} else {
			assert.Equal(t, stepper.StillRunning, out.Kind, "budget %d", budget)
		}
		// A machine that writes ones forever leaves a dirty tape behind.
		r.Execute(mustParse(t, "1RA1RA"), budget)
	}
}

// TestExecute_HugeBudget costs only the steps actually run.
func TestExecute_HugeBudget(t *testing.T) {
	bb2 := mustParse(t, "1RB1LB_1LA---")
	for _, budget := range []uint64{math.MaxUint64 / 2, math.MaxUint64} {
		out := stepper.Execute(bb2, budget)
		assert.Equal(t, stepper.Halted, out.Kind, "budget %d", budget)
		assert.Equal(t, uint64(6), out.Step)
	}

	out := stepper.Execute(mustParse(t, "1RB???_1LA???"), math.MaxUint64)
	assert.Equal(t, stepper.Split, out.Kind)
}
