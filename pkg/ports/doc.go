/*
Package ports defines the driven ports (interfaces) for the Turing engine.

These interfaces decouple the core loop from any particular output mechanism,
allowing the engine to stream its trace to a terminal, a buffer, a GUI widget
or nothing at all.

# Key Interfaces

  - TraceSink: Accepts one human-readable line of run progress at a time.
*/
package ports
