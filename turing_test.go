package turing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/machine"
)

func TestEngine_ReferenceScenarios(t *testing.T) {
	tests := []struct {
		name      string
		def       func() *machine.Definition
		input     string
		outcome   machine.Outcome
		finalTape string // empty means "don't check"
	}{
		{
			name:      "replace first one rewrites and accepts",
			def:       machine.ReplaceFirstOne,
			input:     "00100",
			outcome:   machine.OutcomeAccepted,
			finalTape: "00000",
		},
		{
			name:    "replace first one rejects all zeroes",
			def:     machine.ReplaceFirstOne,
			input:   "000",
			outcome: machine.OutcomeRejected,
		},
		{
			name:    "anbn accepts balanced word",
			def:     machine.AnBn,
			input:   "aabb",
			outcome: machine.OutcomeAccepted,
		},
		{
			name:    "anbn rejects unbalanced word",
			def:     machine.AnBn,
			input:   "aab",
			outcome: machine.OutcomeRejected,
		},
		{
			name:      "incrementer adds one",
			def:       machine.BinaryIncrementer,
			input:     "101",
			outcome:   machine.OutcomeAccepted,
			finalTape: "110",
		},
		{
			name:      "incrementer carries across every bit",
			def:       machine.BinaryIncrementer,
			input:     "111",
			outcome:   machine.OutcomeAccepted,
			finalTape: "1000",
		},
		{
			name:      "incrementer accepts the empty tape",
			def:       machine.BinaryIncrementer,
			input:     "",
			outcome:   machine.OutcomeAccepted,
			finalTape: "1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := memory.NewRecorder()
			eng := turing.New()

			verdict, err := eng.Run(tc.def(), tc.input, rec)
			require.NoError(t, err)
			assert.Equal(t, tc.outcome, verdict.Outcome)

			if tc.finalTape != "" {
				lines := rec.Lines()
				require.NotEmpty(t, lines)
				assert.Equal(t, "Final Tape: "+tc.finalTape, lines[len(lines)-1])
			}
		})
	}
}

func TestEngine_Determinism(t *testing.T) {
	run := func() ([]string, machine.Verdict) {
		rec := memory.NewRecorder()
		verdict, err := turing.New().Run(machine.AnBn(), "aaabbb", rec)
		require.NoError(t, err)
		return rec.Lines(), verdict
	}

	linesA, verdictA := run()
	linesB, verdictB := run()

	assert.Equal(t, verdictA, verdictB)
	assert.Equal(t, linesA, linesB)
}

func TestEngine_MaxStepsOption(t *testing.T) {
	def, err := machine.New(machine.Config{
		States:   []machine.State{"spin", "acc", "rej"},
		Alphabet: []machine.Symbol{"B"},
		Start:    "spin",
		Accept:   "acc",
		Reject:   "rej",
		Rules: map[machine.RuleKey]machine.Action{
			{State: "spin", Symbol: "B"}: {Next: "spin", Write: "B", Move: machine.MoveRight},
		},
	})
	require.NoError(t, err)

	verdict, err := turing.New(turing.WithMaxSteps(10)).Run(def, "", nil)
	require.NoError(t, err)

	assert.Equal(t, machine.OutcomeHalted, verdict.Outcome)
	assert.Equal(t, machine.ReasonMaxSteps, verdict.Reason)
	assert.Equal(t, machine.State("spin"), verdict.State)
}

func TestEngine_SharedDefinitionAcrossEngines(t *testing.T) {
	def := machine.BinaryIncrementer()

	for _, input := range []string{"0", "1", "10", "1111"} {
		verdict, err := turing.New().Run(def, input, nil)
		require.NoError(t, err)
		assert.Equal(t, machine.OutcomeAccepted, verdict.Outcome, "input %q", input)
	}
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var steps, halts int
	eng := turing.New(turing.WithLifecycleHooks(machine.LifecycleHooks{
		OnStep: func(*machine.StepEvent) { steps++ },
		OnHalt: func(*machine.HaltEvent) { halts++ },
	}))

	_, err := eng.Run(machine.BinaryIncrementer(), "101", nil)
	require.NoError(t, err)

	assert.Equal(t, 6, steps)
	assert.Equal(t, 1, halts)
}

func TestDefinitionError_BeforeAnyRun(t *testing.T) {
	_, err := machine.New(machine.Config{
		States:   []machine.State{"q0", "q_done"},
		Alphabet: []machine.Symbol{"B"},
		Start:    "q0",
		Accept:   "q_done",
		Reject:   "q_done",
	})

	require.Error(t, err)
	var defErr *machine.DefinitionError
	assert.ErrorAs(t, err, &defErr)
}
