// Package emu implements the dataization engine: a fixed-point scheduler
// that reduces a graph of immutable φ-calculus objects to a single 16-bit
// integer.
//
// The engine owns two fixed-size arenas. The object arena stores the
// immutable program: each object is a data object (a literal Δ), an atomic
// object (a named primitive λ plus attributes), or a compound object
// (attributes only). The basket pool holds mutable evaluation frames; each
// basket instantiates one object under a ξ context and tracks one kid state
// per attribute (Empt, Rqtd, Need, Wait, Dtzd).
//
// Dataize sweeps all live baskets each cycle, applying the transitions in
// phase order — copy, delegate, delete, then propagate/find/new per
// attribute — until the root basket's 𝜑 kid holds a datum. Progress must be
// observable every cycle; a zero-hit cycle is reported as stuck under
// StopWhenStuck, and a cycle budget is enforced under
// StopWhenTooManyCycles.
//
// Programs are built either through Put with the Dataic/Atomic/Open object
// builders, or parsed from the textual surface form, one object per line:
//
//	ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2 ⟧
//	ν1(𝜋) ↦ ⟦ Δ ↦ 0x002A ⟧
//	ν2(𝜋) ↦ ⟦ λ ↦ int-neg, ρ ↦ ν1 ⟧
//
// The printed form of every object and basket parses back to an equal
// value. An engine's printed dump parses back to the same program: its
// basket lines are skipped, so the parsed engine holds only the object
// arena and a fresh root basket. A diagnostic dump of a failed run can
// therefore be re-run from the start.
package emu
