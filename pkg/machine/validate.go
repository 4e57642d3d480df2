package machine

// New validates cfg and builds an immutable Definition from it.
//
// Validation covers the state invariants (accept != reject, start/accept/
// reject members of the state set), rule well-formedness (known states on
// both sides, a legal move directive) and the blank symbol's membership in
// the alphabet. The alphabet is otherwise advisory: rules may read or write
// symbols outside it and the engine never enforces it at runtime.
func New(cfg Config) (*Definition, error) {
	if len(cfg.States) == 0 {
		return nil, definitionErrorf("state set is empty")
	}

	blank := cfg.Blank
	if blank == "" {
		blank = DefaultBlank
	}

	states := make(map[State]struct{}, len(cfg.States))
	for _, s := range cfg.States {
		states[s] = struct{}{}
	}

	if cfg.Accept == cfg.Reject {
		return nil, definitionErrorf("accept and reject states must be distinct (both %q)", cfg.Accept)
	}
	for _, check := range []struct {
		role  string
		state State
	}{
		{"start", cfg.Start},
		{"accept", cfg.Accept},
		{"reject", cfg.Reject},
	} {
		if _, ok := states[check.state]; !ok {
			return nil, definitionErrorf("%s state %q is not in the state set", check.role, check.state)
		}
	}

	alphabet := make(map[Symbol]struct{}, len(cfg.Alphabet))
	for _, s := range cfg.Alphabet {
		alphabet[s] = struct{}{}
	}
	if len(alphabet) > 0 {
		if _, ok := alphabet[blank]; !ok {
			return nil, definitionErrorf("blank symbol %q is not in the alphabet", blank)
		}
	}

	rules := make(map[RuleKey]Action, len(cfg.Rules))
	for key, action := range cfg.Rules {
		if _, ok := states[key.State]; !ok {
			return nil, definitionErrorf("rule (%s, %s) reads from unknown state %q", key.State, key.Symbol, key.State)
		}
		if _, ok := states[action.Next]; !ok {
			return nil, definitionErrorf("rule (%s, %s) targets unknown state %q", key.State, key.Symbol, action.Next)
		}
		switch action.Move {
		case MoveLeft, MoveRight, MoveStay:
		default:
			return nil, &DefinitionError{
				Reason: "rule (" + string(key.State) + ", " + string(key.Symbol) + ") has move " + string(action.Move),
				Err:    ErrInvalidMove,
			}
		}
		rules[key] = action
	}

	return &Definition{
		states:      states,
		alphabet:    alphabet,
		blank:       blank,
		start:       cfg.Start,
		accept:      cfg.Accept,
		reject:      cfg.Reject,
		rules:       rules,
		description: cfg.Description,
	}, nil
}
