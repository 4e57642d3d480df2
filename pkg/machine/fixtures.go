package machine

// Reference machines used throughout the tests and examples. Each factory
// builds a fresh Definition so callers can never observe shared state, and
// each is known-valid, so construction errors are treated as programmer
// errors (panic via mustNew).

// ReplaceFirstOne scans right over '0's and rewrites the first '1' it finds
// to '0'. Accepts as soon as the rewrite happens; rejects on a blank (no '1'
// anywhere in the input).
func ReplaceFirstOne() *Definition {
	return mustNew(Config{
		States:   []State{"q0", "q_accept", "q_reject"},
		Alphabet: []Symbol{"0", "1", "B"},
		Start:    "q0",
		Accept:   "q_accept",
		Reject:   "q_reject",
		Rules: map[RuleKey]Action{
			{"q0", "1"}: {"q_accept", "0", MoveRight},
			{"q0", "0"}: {"q0", "0", MoveRight},
			{"q0", "B"}: {"q_reject", "B", MoveStay},
		},
		Description: "Replace First '1' with '0'",
	})
}

// AnBn accepts the language {aⁿbⁿ | n >= 1} by repeatedly marking the
// leftmost 'a' as 'X', the matching 'b' as 'Y', and finally checking that
// nothing but 'Y's remains.
func AnBn() *Definition {
	return mustNew(Config{
		States:   []State{"q0", "q1", "q2", "q3", "q_accept", "q_reject"},
		Alphabet: []Symbol{"a", "b", "X", "Y", "B"},
		Start:    "q0",
		Accept:   "q_accept",
		Reject:   "q_reject",
		Rules: map[RuleKey]Action{
			// Mark an 'a' and go hunt for its 'b'.
			{"q0", "a"}: {"q1", "X", MoveRight},
			{"q0", "Y"}: {"q3", "Y", MoveRight},
			{"q0", "B"}: {"q_reject", "B", MoveStay},
			{"q0", "X"}: {"q0", "X", MoveRight},

			{"q1", "a"}: {"q1", "a", MoveRight},
			{"q1", "Y"}: {"q1", "Y", MoveRight},
			{"q1", "b"}: {"q2", "Y", MoveLeft},
			{"q1", "X"}: {"q1", "X", MoveRight},
			{"q1", "B"}: {"q_reject", "B", MoveStay},

			// Rewind to the last 'X' and start the next round.
			{"q2", "a"}: {"q2", "a", MoveLeft},
			{"q2", "Y"}: {"q2", "Y", MoveLeft},
			{"q2", "X"}: {"q0", "X", MoveRight},
			{"q2", "B"}: {"q_reject", "B", MoveStay},

			// All 'a's matched; only 'Y's may remain.
			{"q3", "Y"}: {"q3", "Y", MoveRight},
			{"q3", "B"}: {"q_accept", "B", MoveStay},
			{"q3", "a"}: {"q_reject", "a", MoveStay},
			{"q3", "b"}: {"q_reject", "b", MoveStay},
		},
		Description: "Accepts L={a^n b^n}",
	})
}

// BinaryIncrementer adds one to a binary number written most-significant-bit
// first. It scans to the right end, then propagates the carry leftwards.
// The empty input is legal and yields "1".
func BinaryIncrementer() *Definition {
	return mustNew(Config{
		States:   []State{"q0", "q_carry", "q_accept", "q_reject"},
		Alphabet: []Symbol{"0", "1", "B"},
		Start:    "q0",
		Accept:   "q_accept",
		Reject:   "q_reject",
		Rules: map[RuleKey]Action{
			// Scan right to the end of the input.
			{"q0", "0"}: {"q0", "0", MoveRight},
			{"q0", "1"}: {"q0", "1", MoveRight},
			{"q0", "B"}: {"q_carry", "B", MoveLeft},

			// Propagate the carry from the least significant bit.
			{"q_carry", "1"}: {"q_carry", "0", MoveLeft},
			{"q_carry", "0"}: {"q_accept", "1", MoveStay},
			{"q_carry", "B"}: {"q_accept", "1", MoveStay},
		},
		Description: "Binary Incrementer (+1)",
	})
}

func mustNew(cfg Config) *Definition {
	def, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return def
}
