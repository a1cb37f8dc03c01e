// SPDX-License-Identifier: MIT

// Package emu: core identifiers, options, capacities, sentinel errors.
package emu

import (
	"errors"
	"fmt"
	"strconv"
)

// Data is the carried datum: a signed 16-bit integer with exact
// two's-complement arithmetic.
type Data int16

// Ob indexes an object in the object arena.
type Ob int

// Bk indexes a basket in the basket pool.
type Bk int

// The root object and the root basket.
const (
	RootOb Ob = 0
	RootBk Bk = 0
)

// Arena capacities and the driver's cycle budget.
const (
	// MaxObjects bounds the object arena.
	MaxObjects = 256
	// MaxBaskets bounds the basket pool.
	MaxBaskets = 2048
	// MaxCycles bounds a run under StopWhenTooManyCycles.
	MaxCycles = 65536
)

// emptyPsi marks an unused basket slot.
const emptyPsi Bk = -1

// Opt is a per-run engine option, set with Emu.Opt.
type Opt int

const (
	// DontDelete keeps finished baskets in the pool, making the final
	// state fully inspectable.
	DontDelete Opt = iota
	// LogSnapshots emits the engine dump after every cycle at Debug level.
	LogSnapshots
	// StopWhenTooManyCycles aborts the run after MaxCycles cycles.
	StopWhenTooManyCycles
	// StopWhenStuck aborts the run after a cycle with no hits.
	StopWhenStuck
)

// Sentinel errors of the engine.
var (
	// ErrObjectOccupied indicates Put on a non-empty object slot.
	ErrObjectOccupied = errors.New("emu: object slot already occupied")

	// ErrBasketOccupied indicates Inject on a non-empty basket slot.
	ErrBasketOccupied = errors.New("emu: basket slot already occupied")

	// ErrOutOfRange indicates an index outside the arena bounds.
	ErrOutOfRange = errors.New("emu: index out of arena range")

	// ErrPoolExhausted indicates no empty basket slot is left.
	ErrPoolExhausted = errors.New("emu: no more empty baskets left in the pool")

	// ErrNoXi indicates a ξ step attempted in the root context.
	ErrNoXi = errors.New("emu: Φ has no ξ")

	// ErrEmptyTarget indicates a locator resolving to an empty arena slot.
	ErrEmptyTarget = errors.New("emu: locator resolves to an empty object")

	// ErrNotFound indicates an attribute missing with no 𝜑 to delegate to.
	ErrNotFound = errors.New("emu: attribute not found and there is no 𝜑")

	// ErrStuck indicates a cycle that produced no hits.
	ErrStuck = errors.New("emu: stuck, no transition hits in the last cycle")

	// ErrTooManyCycles indicates the cycle budget ran out.
	ErrTooManyCycles = errors.New("emu: too many cycles, most probably endless recursion")

	// ErrUnknownAtom indicates a λ name absent from the registry.
	ErrUnknownAtom = errors.New("emu: unknown lambda")

	// ErrSyntax indicates malformed object, basket, or program text.
	ErrSyntax = errors.New("emu: syntax error")
)

// Hex renders the datum as its 16-bit two's-complement pattern, 0x%04X.
func (d Data) Hex() string {
	return fmt.Sprintf("0x%04X", uint16(d))
}

// parseHex reads a 4-hex-digit two's-complement pattern (without the 0x
// prefix) into a Data.
func parseHex(s string) (Data, error) {
	bits, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: can't parse hex %q", ErrSyntax, s)
	}

	return Data(uint16(bits)), nil
}
