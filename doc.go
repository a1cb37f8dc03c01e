// Package phigo is a dataization engine for φ-calculus expressions.
//
// φ-calculus models a program as a directed graph of immutable objects;
// each object either carries a literal 16-bit datum, delegates through its
// 𝜑 attribute, or names a primitive (atomic) operation. Evaluation —
// dataization — instantiates objects into mutable frames called baskets,
// wires requests and waits between them, invokes atoms when their operands
// are ready, and propagates computed data back to requesters until the root
// frame holds a value.
//
// Everything is organized under three subpackages:
//
//	loc/   — attribute names (Loc) and locator paths (Locator)
//	perf/  — transition counters and atom-invocation statistics
//	emu/   — object arena, basket pool, path resolver, transitions, driver
//
// Quick example:
//
//	e, _ := emu.Parse(`
//	    ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν1 ⟧
//	    ν1(𝜋) ↦ ⟦ Δ ↦ 0x002A ⟧
//	`)
//	e.Opt(emu.StopWhenStuck)
//	d, _, _ := e.Dataize() // d == 42
//
// The cmd/phigo binary evaluates .phi program files from the command line.
// Encodings of a direct sum and a recursive Fibonacci live in the emu
// package's tests and benchmarks.
package phigo
