// Package loc defines attribute names (Loc) and locator paths (Locator)
// for the phigo dataization engine.
//
// A Loc names one attribute slot inside an object or basket: the
// distinguished attributes Φ (root), 𝜋 (the calling context), 𝜑 (result),
// ρ (primary operand), σ, Δ (literal datum), a positional argument 𝛼i,
// or an absolute object reference νn.
//
// A Locator is a chain of Locs joined with dots, for example 𝜋.𝜋.𝛼0.
// It names an object relative to some basket; the resolver in package emu
// walks it step by step. Locators are well-formed only when νn and Φ stand
// at the first position, 𝛼i never does, and νn stands alone.
//
// Both types round-trip through their textual form: Parse(l.String()) == l.
// ASCII aliases are accepted on input (Q=Φ, ^=ρ, @=𝜑, &=σ, P=𝜋, D=Δ);
// printing always uses the Unicode glyphs.
package loc
