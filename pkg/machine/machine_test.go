package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/pkg/machine"
)

func TestDefinition_Rule(t *testing.T) {
	def, err := machine.New(validConfig())
	require.NoError(t, err)

	action, ok := def.Rule("q0", "1")
	require.True(t, ok)
	assert.Equal(t, machine.Action{Next: "q_accept", Write: "0", Move: machine.MoveRight}, action)

	// Absence must be distinguishable from a defined transition.
	_, ok = def.Rule("q0", "0")
	assert.False(t, ok)
	_, ok = def.Rule("q_accept", "1")
	assert.False(t, ok)
}

func TestDefinition_Halting(t *testing.T) {
	def, err := machine.New(validConfig())
	require.NoError(t, err)

	assert.True(t, def.Halting("q_accept"))
	assert.True(t, def.Halting("q_reject"))
	assert.False(t, def.Halting("q0"))
	assert.False(t, def.Halting("nope"))
}

func TestDefinition_Membership(t *testing.T) {
	def, err := machine.New(validConfig())
	require.NoError(t, err)

	assert.True(t, def.HasState("q0"))
	assert.False(t, def.HasState("q9"))
}

func TestDefinition_SortedViews(t *testing.T) {
	def, err := machine.New(validConfig())
	require.NoError(t, err)

	assert.Equal(t, []machine.State{"q0", "q_accept", "q_reject"}, def.States())
	assert.Equal(t, []machine.Symbol{"0", "1", "B"}, def.Alphabet())
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "accepted", machine.Accepted("q_accept").String())
	assert.Equal(t, "rejected", machine.Rejected("q_reject").String())
	assert.Equal(t, "halted (max_steps) in state q0", machine.HaltedMaxSteps("q0").String())
	assert.Equal(t, "unknown in state q7", machine.Unknown("q7").String())
}
