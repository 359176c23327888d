package atm_test

import (
	"testing"

	"github.com/katalvlaran/lazybeaver/atm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Champion reads the 2-state busy beaver and renders it back.
func TestParse_Champion(t *testing.T) {
	m, err := atm.Parse("1RB1LB_1LA---")
	require.NoError(t, err)

	assert.Equal(t, 2, m.States())
	assert.Equal(t, atm.RuleCell(1, 1, atm.Right), m.Cell(0, 0))
	assert.Equal(t, atm.Halt, m.Cell(1, 1).Kind())
	assert.Equal(t, 0, m.Undefined())
	assert.Equal(t, "1RB1LB_1LA---", m.String())
	assert.False(t, m.Root())
}

// TestParse_Undefined keeps "???" cells undefined and derives the watermark.
func TestParse_Undefined(t *testing.T) {
	m, err := atm.Parse("1RB???_??????_??????")
	require.NoError(t, err)

	assert.Equal(t, 5, m.Undefined())
	assert.Equal(t, atm.State(2), m.NextState(), "B is reached, so C may be introduced next")
}

// TestParse_Errors covers the malformed inputs Parse must reject.
func TestParse_Errors(t *testing.T) {
	for _, text := range []string{
		"",
		"1RB",
		"1RB1LB_1LA--",
		"2RB1LB_1LA---",
		"1XB1LB_1LA---",
		"1RC1LB_1LA---",
	} {
		_, err := atm.Parse(text)
		assert.ErrorIs(t, err, atm.ErrBadFormat, "input %q", text)
	}
}

// TestString_Root renders an empty root as all-undefined.
func TestString_Root(t *testing.T) {
	m, err := atm.NewRoot(2)
	require.NoError(t, err)
	assert.Equal(t, "??????_??????", m.String())
}
