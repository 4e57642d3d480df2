/*
Package turing is a deterministic single-tape Turing Machine interpreter,
designed to be embedded behind any presentation layer (GUI, CLI, tests).

It separates the machine description (an immutable Definition) from the
execution engine (the mutable tape, head and step counter of one run). The
engine runs a machine to completion in a single synchronous call, streaming
human-readable trace lines to a caller-supplied sink and returning a verdict.

# Key Features

  - Deterministic Execution: the same definition and input always produce the
    same verdict and the same trace line sequence.
  - Hexagonal Architecture: the core loop is decoupled from adapters (trace
    destinations, metrics) through small ports.
  - Total by Construction: a missing transition is not an error; it is an
    implicit transition to the reject state.
  - Bounded Runtime: a step ceiling (default 1000) turns would-be infinite
    runs into a distinct "halted" verdict.

# Usage

	package main

	import (
		"fmt"
		"log"
		"os"

		"github.com/aretw0/turing"
		"github.com/aretw0/turing/pkg/adapters/text"
		"github.com/aretw0/turing/pkg/machine"
	)

	func main() {
		eng := turing.New()

		verdict, err := eng.Run(machine.BinaryIncrementer(), "101", text.NewWriter(os.Stdout))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("verdict:", verdict)
	}

Definitions are validated once, at construction, and are safe to share across
any number of engines and goroutines. A single Engine value must not execute
two runs concurrently; engines are cheap, use one per goroutine.
*/
package turing
