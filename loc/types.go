// SPDX-License-Identifier: MIT

// Package loc: Loc and Locator types, sentinel errors.
package loc

import "errors"

// Sentinel errors for parsing and validating locs and locators.
var (
	// ErrUnknownLoc indicates a step that is none of the known glyphs,
	// aliases, 𝛼i, or νn.
	ErrUnknownLoc = errors.New("loc: unknown loc")

	// ErrEmptyLocator indicates a locator with no steps.
	ErrEmptyLocator = errors.New("loc: locator is empty")

	// ErrMisplacedObj indicates νn at a position other than the first.
	ErrMisplacedObj = errors.New("loc: νn can only stay at the first position")

	// ErrMisplacedRoot indicates Φ at a position other than the first.
	ErrMisplacedRoot = errors.New("loc: Φ can only start a locator")

	// ErrMisplacedAttr indicates 𝛼i at the first position.
	ErrMisplacedAttr = errors.New("loc: 𝛼i can't start a locator")

	// ErrObjNotAlone indicates νn followed by further steps.
	ErrObjNotAlone = errors.New("loc: νn can only be the first and only step")
)

// Loc identifies one attribute slot or one locator step.
//
// The distinguished attributes are negative constants; 𝛼i is the
// non-negative value i, and νn is encoded above objOffset. The encoding is
// an implementation detail — use Attr, Obj, IsAttr, IsObj, AttrIndex and
// ObIndex.
type Loc int32

// Distinguished attribute names.
const (
	// Root is Φ, the root object.
	Root Loc = -6
	// Xi is 𝜋, the calling context of the current basket.
	Xi Loc = -5
	// Phi is 𝜑, the distinguished result attribute.
	Phi Loc = -4
	// Rho is ρ, the primary operand attribute.
	Rho Loc = -3
	// Sigma is σ.
	Sigma Loc = -2
	// Delta is Δ, the literal datum attribute.
	Delta Loc = -1
)

// objOffset separates 𝛼i values from νn values inside Loc.
const objOffset Loc = 1 << 20

// Attr returns the Loc of the i-th positional argument 𝛼i. i must be
// non-negative and below the νn range; out-of-range values panic.
func Attr(i int) Loc {
	if i < 0 || Loc(i) >= objOffset {
		panic("loc: attr index out of range")
	}

	return Loc(i)
}

// Obj returns the Loc of the absolute object reference νn.
func Obj(n int) Loc {
	if n < 0 {
		panic("loc: object index out of range")
	}

	return objOffset + Loc(n)
}

// IsAttr reports whether l is a positional argument 𝛼i.
func (l Loc) IsAttr() bool { return l >= 0 && l < objOffset }

// IsObj reports whether l is an absolute object reference νn.
func (l Loc) IsObj() bool { return l >= objOffset }

// AttrIndex returns i for an 𝛼i loc; it panics on any other loc.
func (l Loc) AttrIndex() int {
	if !l.IsAttr() {
		panic("loc: not an attribute loc")
	}

	return int(l)
}

// ObIndex returns n for a νn loc; it panics on any other loc.
func (l Loc) ObIndex() int {
	if !l.IsObj() {
		panic("loc: not an object loc")
	}

	return int(l - objOffset)
}
