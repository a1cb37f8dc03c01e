// SPDX-License-Identifier: MIT

package emu

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/phigo/loc"
	"github.com/katalvlaran/phigo/perf"
)

// Dataize runs the fixed-point loop until the root basket's 𝜑 kid holds a
// datum, and returns it together with the run's counters.
//
// Each cycle sweeps all live baskets with copy, then delegate, then delete
// (unless DontDelete), then propagate/find/new per attribute. Under
// StopWhenStuck a cycle with no hits aborts the run; under
// StopWhenTooManyCycles the run aborts after MaxCycles cycles. Fatal
// errors carry the engine dump.
func (e *Emu) Dataize() (Data, *perf.Perf, error) {
	p := perf.New()
	cycles := 0
	for {
		before := p.TotalHits()
		if err := e.cycle(p); err != nil {
			return 0, p, err
		}
		p.Grow(e.liveBaskets())
		if e.opts[LogSnapshots] {
			e.log.Debug("dataize cycle",
				zap.Int("cycle", cycles),
				zap.Int("hits", p.TotalHits()-before),
				zap.String("emu", e.String()))
		}
		p.Cycles++
		if k, ok := e.Basket(RootBk).Kid(loc.Phi); ok && k.State == Dtzd {
			e.log.Debug("dataize done",
				zap.String("data", k.Data.Hex()), zap.Int("cycles", p.Cycles))

			return k.Data, p, nil
		}
		if e.opts[StopWhenStuck] && before == p.TotalHits() {
			return 0, p, fmt.Errorf("%w: %d hits after cycle #%d:\n%s",
				ErrStuck, p.TotalHits(), cycles, e)
		}
		cycles++
		if e.opts[StopWhenTooManyCycles] && cycles > MaxCycles {
			return 0, p, fmt.Errorf("%w: %d cycles:\n%s", ErrTooManyCycles, cycles, e)
		}
	}
}

// cycle applies one full sweep in phase order.
func (e *Emu) cycle(p *perf.Perf) error {
	e.sweep(func(bk Bk) { e.copyDelta(p, bk) })
	e.sweep(func(bk Bk) { e.delegate(p, bk) })
	if !e.opts[DontDelete] {
		e.sweep(func(bk Bk) { e.deleteBasket(p, bk) })
	}
	var err error
	e.sweep(func(bk Bk) {
		if err != nil {
			return
		}
		for _, l := range e.locs(bk) {
			e.propagate(p, bk, l)
			if err = e.find(p, bk, l); err != nil {
				return
			}
			if err = e.makeNew(p, bk, l); err != nil {
				return
			}
		}
	})

	return err
}

// sweep applies f to every live basket, indices ascending over the full
// pool.
func (e *Emu) sweep(f func(bk Bk)) {
	for i := range e.baskets {
		if e.baskets[i].IsEmpty() {
			continue
		}
		f(Bk(i))
	}
}

// locs snapshots the basket's kid locations in ascending order.
func (e *Emu) locs(bk Bk) []loc.Loc {
	kids := e.Basket(bk).Kids
	keys := make([]loc.Loc, 0, len(kids))
	for l := range kids {
		keys = append(keys, l)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// liveBaskets counts the non-empty pool slots.
func (e *Emu) liveBaskets() int {
	n := 0
	for i := range e.baskets {
		if !e.baskets[i].IsEmpty() {
			n++
		}
	}

	return n
}
