// SPDX-License-Identifier: MIT

package emu

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/phigo/loc"
)

// origin is the (basket, attribute) at which a resolution physically
// lives. find uses it to decide whether demand belongs on an existing
// attribute slot.
type origin struct {
	bk Bk
	l  loc.Loc
}

// search resolves locator p relative to basket bk and returns the object
// it names, the ξ-context to bind when that object is instantiated, and
// the origin slot, if any.
//
// Steps are consumed left to right. Φ jumps to the root object, νn jumps
// absolutely, 𝜋 follows the basket's ψ back-pointer (failing in the root
// context), and every other step is looked up in the current object's
// attributes — falling back to splicing the 𝜑 locator in front when the
// attribute is absent. The origin tracks the ψ basket of the latest 𝜋 step
// together with the most recent attribute hop.
func (e *Emu) search(bk Bk, p loc.Locator) (Ob, Bk, *origin, error) {
	bsk := e.Basket(bk)
	ob := bsk.Ob
	psi := bsk.Psi
	var org *origin
	locs := append(loc.Locator(nil), p...)
	var trail []string
	for len(locs) > 0 {
		l := locs[0]
		locs = locs[1:]
		trail = append(trail, l.String())
		var next Ob
		switch {
		case l == loc.Root:
			next = RootOb
		case l == loc.Xi:
			if bsk.Psi == RootBk {
				return 0, 0, nil, fmt.Errorf("%w: %s", ErrNoXi, strings.Join(trail, "; "))
			}
			psi = bsk.Psi
			org = &origin{bk: psi, l: loc.Root}
			bsk = e.Basket(psi)
			next = bsk.Ob
			trail = append(trail, fmt.Sprintf("ξ=β%d/ν%d", psi, bsk.Ob))
		case l.IsObj():
			if l.ObIndex() >= MaxObjects {
				return 0, 0, nil, fmt.Errorf("%w: ν%d", ErrOutOfRange, l.ObIndex())
			}
			next = Ob(l.ObIndex())
		default:
			obj := e.Object(ob)
			if a, ok := obj.Attrs[l]; ok {
				if org != nil {
					org = &origin{bk: org.bk, l: l}
				}
				locs = append(append(loc.Locator(nil), a.Locator...), locs...)
				trail = append(trail, "+"+a.Locator.String())
				next = ob
			} else if ph, ok := obj.Attrs[loc.Phi]; ok {
				// Attribute inheritance: retry the same step behind 𝜑.
				if org != nil {
					org = &origin{bk: org.bk, l: l}
				}
				locs = append(loc.Locator{l}, locs...)
				locs = append(append(loc.Locator(nil), ph.Locator...), locs...)
				trail = append(trail, "++"+ph.Locator.String())
				next = ob
			} else {
				return 0, 0, nil, fmt.Errorf("%w: can't find %s in ν%d: %s",
					ErrNotFound, l, ob, strings.Join(trail, "; "))
			}
		}
		ob = next
	}
	if e.Object(ob).IsEmpty() {
		return 0, 0, nil, fmt.Errorf("%w: ν%d is found by β%d.%s",
			ErrEmptyTarget, ob, bk, p)
	}
	e.log.Debug("search",
		zap.Int("bk", int(bk)),
		zap.String("locator", p.String()),
		zap.Int("ob", int(ob)),
		zap.Int("psi", int(psi)),
		zap.String("trail", strings.Join(trail, "; ")))

	return ob, psi, org, nil
}
