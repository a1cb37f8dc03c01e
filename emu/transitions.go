// SPDX-License-Identifier: MIT

package emu

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/phigo/loc"
	"github.com/katalvlaran/phigo/perf"
)

// The transition engine: six partial functions on one basket each, applied
// by the driver in phase order. Every transition is idempotent — when its
// guard is false it is a no-op and only records a tick.

// copyDelta writes the object's literal to a requested 𝜑 kid.
func (e *Emu) copyDelta(p *perf.Perf, bk Bk) {
	bsk := e.Basket(bk)
	if k, ok := bsk.Kid(loc.Phi); ok && k.State == Rqtd {
		obj := e.Object(bsk.Ob)
		if obj.HasDelta {
			bsk.Put(loc.Phi, KidDtzd(obj.Delta))
			e.log.Debug("copy", zap.Int("bk", int(bk)), zap.String("data", obj.Delta.Hex()))
			p.Hit(perf.CPY)
		}
	}
	p.Tick(perf.CPY)
}

// delegate gives control to the basket's atom once no kid is waiting.
func (e *Emu) delegate(p *perf.Perf, bk Bk) {
	bsk := e.Basket(bk)
	if k, ok := bsk.Kid(loc.Phi); ok && k.State == Rqtd && !anyWaiting(bsk) {
		obj := e.Object(bsk.Ob)
		if obj.Atom != nil {
			name := obj.Lambda
			p.Hit(perf.DLG)
			if d, done := obj.Atom(e, bk); done {
				p.Atom(name)
				e.Basket(bk).Put(loc.Phi, KidDtzd(d))
				e.log.Debug("delegate", zap.Int("bk", int(bk)), zap.String("data", d.Hex()))
			}
		}
	}
	p.Tick(perf.DLG)
}

func anyWaiting(bsk *Basket) bool {
	for _, k := range bsk.Kids {
		if k.State == Wait {
			return true
		}
	}

	return false
}

// deleteBasket releases a finished basket: not root, not constant, every
// kid Empt or Dtzd, and no live Wait pointing at it.
func (e *Emu) deleteBasket(p *perf.Perf, bk Bk) {
	if bk == RootBk {
		p.Tick(perf.DEL)

		return
	}
	bsk := e.Basket(bk)
	if e.Object(bsk.Ob).Constant {
		p.Tick(perf.DEL)

		return
	}
	ready := true
	for _, k := range bsk.Kids {
		if k.State != Empt && k.State != Dtzd {
			ready = false
			break
		}
	}
	if ready && e.hasIncomingWait(p, bk) {
		ready = false
	}
	if ready {
		e.baskets[bk] = emptyBasket()
		e.log.Debug("delete", zap.Int("bk", int(bk)))
		p.Hit(perf.DEL)
	}
	p.Tick(perf.DEL)
}

// hasIncomingWait reports whether any live basket's kid waits on bk.
func (e *Emu) hasIncomingWait(p *perf.Perf, bk Bk) bool {
	for i := range e.baskets {
		wbsk := &e.baskets[i]
		if wbsk.IsEmpty() {
			continue
		}
		p.Tick(perf.DEL)
		for _, k := range wbsk.Kids {
			if k.State == Wait && k.Bk == bk {
				return true
			}
		}
	}

	return false
}

// propagate broadcasts a materialized datum to every kid waiting on
// (bk, l).
func (e *Emu) propagate(p *perf.Perf, bk Bk, l loc.Loc) {
	k, ok := e.Basket(bk).Kid(l)
	if ok && k.State == Dtzd {
		for i := range e.baskets {
			bsk := &e.baskets[i]
			if bsk.IsEmpty() {
				continue
			}
			for wl, wk := range bsk.Kids {
				if wk.State == Wait && wk.Bk == bk && wk.Loc == l {
					bsk.Put(wl, KidDtzd(k.Data))
					p.Hit(perf.PPG)
				}
				p.Tick(perf.PPG)
			}
		}
	}
	p.Tick(perf.PPG)
}

// find resolves a requested kid's locator. When the resolved origin slot
// is Empt, demand is parked there (Wait back-reference) and this kid
// becomes Need; otherwise this kid waits on the origin directly.
func (e *Emu) find(p *perf.Perf, bk Bk, l loc.Loc) error {
	defer p.Tick(perf.FND)
	k, ok := e.Basket(bk).Kid(l)
	if !ok || k.State != Rqtd {
		return nil
	}
	ob := e.Basket(bk).Ob
	attr, ok := e.Object(ob).Attrs[l]
	if !ok {
		return nil
	}
	tob, psi, org, err := e.search(bk, attr.Locator)
	if err != nil {
		return fmt.Errorf("can't find %s from β%d/ν%d: %w\n%s", attr.Locator, bk, ob, err, e)
	}
	tpsi := psi
	if attr.Xi {
		tpsi = bk
	}
	switch {
	case org == nil:
		e.Basket(bk).Put(l, KidNeed(tob, tpsi))
	case e.parkDemand(bk, l, org):
		e.Basket(bk).Put(l, KidNeed(tob, tpsi))
	default:
		e.Basket(bk).Put(l, KidWait(org.bk, org.l))
	}
	p.Hit(perf.FND)

	return nil
}

// parkDemand writes a Wait back-reference at the origin slot when that
// slot is still Empt.
func (e *Emu) parkDemand(bk Bk, l loc.Loc, org *origin) bool {
	obsk := e.Basket(org.bk)
	k, ok := obsk.Kid(org.l)
	if !ok || k.State != Empt {
		return false
	}
	obsk.Put(org.l, KidWait(bk, l))

	return true
}

// makeNew finds or allocates a basket for a Need kid and waits on its 𝜑.
func (e *Emu) makeNew(p *perf.Perf, bk Bk, l loc.Loc) error {
	defer p.Tick(perf.NEW)
	k, ok := e.Basket(bk).Kid(l)
	if !ok || k.State != Need {
		return nil
	}
	nbk, ok := e.stashed(k.Ob, k.Psi)
	if ok {
		e.log.Debug("new: link to stashed",
			zap.Int("bk", int(bk)), zap.String("loc", l.String()), zap.Int("stashed", int(nbk)))
	} else {
		var err error
		if nbk, err = e.allocate(k.Ob, k.Psi); err != nil {
			return err
		}
		e.log.Debug("new: created",
			zap.Int("bk", int(bk)), zap.String("loc", l.String()), zap.Int("created", int(nbk)))
	}
	p.Hit(perf.NEW)
	e.Basket(bk).Put(l, KidWait(nbk, loc.Phi))

	return nil
}

// stashed looks for a reusable basket: any basket of the same data object,
// or a constant object's basket under the same ψ.
func (e *Emu) stashed(ob Ob, psi Bk) (Bk, bool) {
	obj := e.Object(ob)
	for i := range e.baskets {
		bsk := &e.baskets[i]
		if bsk.IsEmpty() || bsk.Ob != ob {
			continue
		}
		if obj.HasDelta {
			return Bk(i), true
		}
		if obj.Constant && bsk.Psi == psi {
			return Bk(i), true
		}
	}

	return 0, false
}

// allocate takes the lowest-indexed empty slot and initializes the kid
// states: one Empt per object attribute, 𝜑 additionally Rqtd.
func (e *Emu) allocate(ob Ob, psi Bk) (Bk, error) {
	for i := range e.baskets {
		if !e.baskets[i].IsEmpty() {
			continue
		}
		bsk := startBasket(ob, psi)
		for l := range e.Object(ob).Attrs {
			bsk.Put(l, KidEmpt())
		}
		bsk.Put(loc.Phi, KidRqtd())
		e.baskets[i] = bsk

		return Bk(i), nil
	}

	return 0, fmt.Errorf("%w of %d:\n%s", ErrPoolExhausted, MaxBaskets, e)
}
