// SPDX-License-Identifier: MIT

package emu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/phigo/loc"
)

// Emu is a dataization engine instance. It owns the two arenas, the option
// set, and a logger; nothing in it is shared between instances, and one
// instance must not be used from more than one goroutine.
type Emu struct {
	objects [MaxObjects]Object
	baskets [MaxBaskets]Basket
	opts    map[Opt]bool
	log     *zap.Logger
}

// New returns an engine with an empty object arena and a basket pool
// holding only the root basket: ob=0, ψ pointing at itself, 𝜑 requested.
func New() *Emu {
	e := &Emu{
		opts: make(map[Opt]bool),
		log:  zap.NewNop(),
	}
	for i := range e.baskets {
		e.baskets[i] = emptyBasket()
	}
	root := startBasket(RootOb, RootBk)
	root.Put(loc.Phi, KidRqtd())
	e.baskets[RootBk] = root

	return e
}

// SetLogger replaces the engine logger; a nil logger restores the no-op
// default.
func (e *Emu) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.log = l
}

// Opt enables one per-run option.
func (e *Emu) Opt(o Opt) { e.opts[o] = true }

// Put installs an object into arena slot ob. The slot must be empty.
func (e *Emu) Put(ob Ob, obj *Object) error {
	if ob < 0 || ob >= MaxObjects {
		return fmt.Errorf("%w: ν%d", ErrOutOfRange, ob)
	}
	if !e.objects[ob].IsEmpty() {
		return fmt.Errorf("%w: ν%d", ErrObjectOccupied, ob)
	}
	e.objects[ob] = *obj

	return nil
}

// Inject installs a prebuilt basket into pool slot bk. The slot must be
// empty. Intended for tests.
func (e *Emu) Inject(bk Bk, bsk Basket) error {
	if bk < 0 || bk >= MaxBaskets {
		return fmt.Errorf("%w: β%d", ErrOutOfRange, bk)
	}
	if !e.baskets[bk].IsEmpty() {
		return fmt.Errorf("%w: β%d", ErrBasketOccupied, bk)
	}
	e.baskets[bk] = bsk

	return nil
}

// Object gives read-only access to arena slot ob.
func (e *Emu) Object(ob Ob) *Object { return &e.objects[ob] }

// Basket gives access to pool slot bk.
func (e *Emu) Basket(bk Bk) *Basket { return &e.baskets[bk] }

// Read returns the datum at (bk, l) if it is already materialized. An Empt
// kid is upgraded to Rqtd — this is how atoms place demand for missing
// operands. Asking for a location the basket has no slot for is a
// malformed program and panics with the engine dump.
func (e *Emu) Read(bk Bk, l loc.Loc) (Data, bool) {
	k, ok := e.baskets[bk].Kid(l)
	if !ok {
		panic(fmt.Sprintf("emu: can't find %s in β%d:\n%s", l, bk, e))
	}
	switch k.State {
	case Empt:
		e.baskets[bk].Put(l, KidRqtd())
		e.log.Debug("read: was empty, requested",
			zap.Int("bk", int(bk)), zap.String("loc", l.String()))

		return 0, false
	case Dtzd:
		return k.Data, true
	default:
		return 0, false
	}
}

// String renders the whole engine: one line per non-empty object in the
// parseable program form, with that object's live baskets dumped on
// indented follow-up lines.
func (e *Emu) String() string {
	var lines []string
	for ob := range e.objects {
		obj := &e.objects[ob]
		if obj.IsEmpty() {
			continue
		}
		line := fmt.Sprintf("ν%d(𝜋) ↦ %s", ob, obj)
		for bk := range e.baskets {
			bsk := &e.baskets[bk]
			if bsk.IsEmpty() || int(bsk.Ob) != ob {
				continue
			}
			line += fmt.Sprintf("\n\t➞ β%d %s", bk, bsk)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

var reProgramLine = regexp.MustCompile(`^ν(\d+)\(𝜋\)\s*↦\s*(⟦.*⟧)$`)

// Parse reads a whole program, one object per line. Blank lines are
// skipped, as are basket dump lines (➞ …), so a diagnostic dump parses
// back to the same program.
func Parse(text string) (*Emu, error) {
	e := New()
	for n, raw := range strings.Split(strings.TrimSpace(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "➞") {
			continue
		}
		caps := reProgramLine.FindStringSubmatch(line)
		if caps == nil {
			return nil, fmt.Errorf("%w: line %d: can't parse %q", ErrSyntax, n+1, line)
		}
		ob, err := strconv.Atoi(caps[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad object index %q", ErrSyntax, n+1, caps[1])
		}
		obj, err := ParseObject(caps[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		if err := e.Put(Ob(ob), obj); err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
	}

	return e, nil
}
