package machine

// Outcome classifies how a run terminated.
type Outcome string

const (
	// OutcomeAccepted means the machine reached its accept state.
	OutcomeAccepted Outcome = "accepted"
	// OutcomeRejected means the machine reached its reject state, either via
	// an explicit rule or the implicit reject on a missing transition.
	OutcomeRejected Outcome = "rejected"
	// OutcomeHalted means the engine stopped the run without the machine
	// halting on its own (currently only the step ceiling).
	OutcomeHalted Outcome = "halted"
	// OutcomeUnknown covers the defensive fallthrough of a non-halting state
	// escaping the run loop. It should not occur in practice.
	OutcomeUnknown Outcome = "unknown"
)

// HaltReason explains an OutcomeHalted verdict.
type HaltReason string

// ReasonMaxSteps marks a run stopped by the step ceiling.
const ReasonMaxSteps HaltReason = "max_steps"

// Verdict is the terminal result of a run. Callers must be prepared for all
// four outcomes, not just accept/reject.
type Verdict struct {
	Outcome Outcome    `json:"outcome"`
	Reason  HaltReason `json:"reason,omitempty"`
	// State carries the machine state the run ended in. It is the halting
	// state for accept/reject, and the last live state for halted/unknown.
	State State `json:"state,omitempty"`
}

// Accepted builds the verdict for a run that reached state s, the accept state.
func Accepted(s State) Verdict {
	return Verdict{Outcome: OutcomeAccepted, State: s}
}

// Rejected builds the verdict for a run that reached state s, the reject state.
func Rejected(s State) Verdict {
	return Verdict{Outcome: OutcomeRejected, State: s}
}

// HaltedMaxSteps builds the verdict for a run stopped by the step ceiling
// while still in state s.
func HaltedMaxSteps(s State) Verdict {
	return Verdict{Outcome: OutcomeHalted, Reason: ReasonMaxSteps, State: s}
}

// Unknown builds the defensive fallthrough verdict.
func Unknown(s State) Verdict {
	return Verdict{Outcome: OutcomeUnknown, State: s}
}

func (v Verdict) String() string {
	switch v.Outcome {
	case OutcomeHalted:
		return string(v.Outcome) + " (" + string(v.Reason) + ") in state " + string(v.State)
	case OutcomeUnknown:
		return string(v.Outcome) + " in state " + string(v.State)
	default:
		return string(v.Outcome)
	}
}
