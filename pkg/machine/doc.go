/*
Package machine contains the core domain model for the Turing engine.

It defines the immutable machine description (states, alphabet, transition
rules) and the value types shared with consumers (Verdict, lifecycle events).
This package is kept pure and free of external dependencies like I/O or
metrics, following Hexagonal Architecture principles.

# Key Entities

  - Definition: an immutable, validated description of a single-tape machine.
  - Action: the outcome of a transition rule (next state, write symbol, move).
  - Verdict: the terminal result of a run (Accepted, Rejected, Halted, Unknown).
  - LifecycleHooks: optional callbacks for engine observability.
*/
package machine
