// SPDX-License-Identifier: MIT

package emu

import "github.com/katalvlaran/phigo/loc"

// The atom registry. Names map 1:1 to functions; the textual surface
// syntax rejects names outside this table.
var atoms = map[string]AtomFn{
	"int-add":   intAdd,
	"int-sub":   intSub,
	"int-neg":   intNeg,
	"int-times": intTimes,
	"int-div":   intDiv,
	"int-less":  intLess,
	"bool-if":   boolIf,
}

// LookupAtom returns the primitive registered under name.
func LookupAtom(name string) (AtomFn, bool) {
	fn, ok := atoms[name]

	return fn, ok
}

// AtomNames lists the registered primitive names in no particular order.
func AtomNames() []string {
	names := make([]string, 0, len(atoms))
	for name := range atoms {
		names = append(names, name)
	}

	return names
}

func intAdd(e *Emu, bk Bk) (Data, bool) {
	r, ok := e.Read(bk, loc.Rho)
	if !ok {
		return 0, false
	}
	a, ok := e.Read(bk, loc.Attr(0))
	if !ok {
		return 0, false
	}

	return r + a, true
}

func intSub(e *Emu, bk Bk) (Data, bool) {
	r, ok := e.Read(bk, loc.Rho)
	if !ok {
		return 0, false
	}
	a, ok := e.Read(bk, loc.Attr(0))
	if !ok {
		return 0, false
	}

	return r - a, true
}

func intNeg(e *Emu, bk Bk) (Data, bool) {
	r, ok := e.Read(bk, loc.Rho)
	if !ok {
		return 0, false
	}

	return -r, true
}

func intTimes(e *Emu, bk Bk) (Data, bool) {
	r, ok := e.Read(bk, loc.Rho)
	if !ok {
		return 0, false
	}
	a, ok := e.Read(bk, loc.Attr(0))
	if !ok {
		return 0, false
	}

	return r * a, true
}

// intDiv truncates toward zero; a zero divisor is the program's fault and
// panics like any Go integer division by zero.
func intDiv(e *Emu, bk Bk) (Data, bool) {
	r, ok := e.Read(bk, loc.Rho)
	if !ok {
		return 0, false
	}
	a, ok := e.Read(bk, loc.Attr(0))
	if !ok {
		return 0, false
	}

	return r / a, true
}

func intLess(e *Emu, bk Bk) (Data, bool) {
	r, ok := e.Read(bk, loc.Rho)
	if !ok {
		return 0, false
	}
	a, ok := e.Read(bk, loc.Attr(0))
	if !ok {
		return 0, false
	}
	if r < a {
		return 1, true
	}

	return 0, true
}

// boolIf selects 𝛼0 when ρ is 1 and 𝛼1 otherwise, reading only the
// selected branch.
func boolIf(e *Emu, bk Bk) (Data, bool) {
	term, ok := e.Read(bk, loc.Rho)
	if !ok {
		return 0, false
	}
	branch := loc.Attr(1)
	if term == 1 {
		branch = loc.Attr(0)
	}

	return e.Read(bk, branch)
}
