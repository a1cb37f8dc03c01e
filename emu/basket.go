// SPDX-License-Identifier: MIT

package emu

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/phigo/loc"
)

// State tags a kid's lifecycle stage.
type State uint8

// The five kid states. The zero value is Empt, so a freshly allocated slot
// is already in its initial state.
const (
	// Empt — slot allocated, no demand yet.
	Empt State = iota
	// Rqtd — demand placed, no target resolved yet.
	Rqtd
	// Need — a fresh basket must be created or reused for (Ob, Psi).
	Need
	// Wait — the kid will receive the value being computed at (Bk, Loc).
	Wait
	// Dtzd — materialized datum.
	Dtzd
)

// Kid is the per-attribute lifecycle state: a tag plus the payload of the
// tagged variant. Only the fields of the active variant are meaningful.
type Kid struct {
	State State
	Ob    Ob      // Need: target object
	Psi   Bk      // Need: target context
	Bk    Bk      // Wait: source basket
	Loc   loc.Loc // Wait: source attribute
	Data  Data    // Dtzd: the datum
}

// KidEmpt returns an Empt kid.
func KidEmpt() Kid { return Kid{State: Empt} }

// KidRqtd returns a Rqtd kid.
func KidRqtd() Kid { return Kid{State: Rqtd} }

// KidNeed returns a Need kid for object ob under context psi.
func KidNeed(ob Ob, psi Bk) Kid { return Kid{State: Need, Ob: ob, Psi: psi} }

// KidWait returns a Wait kid pointing at (bk, l).
func KidWait(bk Bk, l loc.Loc) Kid { return Kid{State: Wait, Bk: bk, Loc: l} }

// KidDtzd returns a Dtzd kid carrying d.
func KidDtzd(d Data) Kid { return Kid{State: Dtzd, Data: d} }

// String renders the kid: →∅, →?, →(ν7;β12), ⇉β42.𝜑, or ⇶0x002A.
func (k Kid) String() string {
	switch k.State {
	case Empt:
		return "→∅"
	case Rqtd:
		return "→?"
	case Need:
		return fmt.Sprintf("→(ν%d;β%d)", k.Ob, k.Psi)
	case Wait:
		return fmt.Sprintf("⇉β%d.%s", k.Bk, k.Loc)
	case Dtzd:
		return "⇶" + k.Data.Hex()
	default:
		panic(fmt.Sprintf("emu: kid with unknown state %d", k.State))
	}
}

// Basket is one mutable evaluation frame: the object it instantiates, the
// basket of its ξ environment, and one kid per attribute.
type Basket struct {
	Ob   Ob
	Psi  Bk
	Kids map[loc.Loc]Kid
}

// emptyBasket returns the sentinel for an unused pool slot.
func emptyBasket() Basket {
	return Basket{Psi: emptyPsi, Kids: make(map[loc.Loc]Kid)}
}

// startBasket returns a live basket for ob under psi, with no kids yet.
func startBasket(ob Ob, psi Bk) Basket {
	return Basket{Ob: ob, Psi: psi, Kids: make(map[loc.Loc]Kid)}
}

// IsEmpty reports whether the slot is unused.
func (b *Basket) IsEmpty() bool { return b.Psi < 0 }

// Put writes the kid state at l.
func (b *Basket) Put(l loc.Loc, k Kid) { b.Kids[l] = k }

// Kid reads the kid state at l.
func (b *Basket) Kid(l loc.Loc) (Kid, bool) {
	k, ok := b.Kids[l]

	return k, ok
}

// String renders the basket: [ν5, ξ:β7, Δ⇶0x002A, ρ⇉β42.𝜑, …] with kid
// parts sorted.
func (b *Basket) String() string {
	parts := []string{
		fmt.Sprintf("ν%d", b.Ob),
		fmt.Sprintf("ξ:β%d", b.Psi),
	}
	kids := make([]string, 0, len(b.Kids))
	for l, k := range b.Kids {
		kids = append(kids, l.String()+k.String())
	}
	sort.Strings(kids)

	return "[" + strings.Join(append(parts, kids...), ", ") + "]"
}

var (
	reBasket = regexp.MustCompile(`\[(.*)]`)
	reKid    = regexp.MustCompile(`^(.*?)(⇶0x|⇉β|→\(ν|→∅|→\?)(.*?)\)?$`)
)

// ParseBasket reads a basket from its [...] text form.
func ParseBasket(s string) (Basket, error) {
	bsk := emptyBasket()
	caps := reBasket.FindStringSubmatch(s)
	if caps == nil {
		return bsk, fmt.Errorf("%w: can't parse the basket %q", ErrSyntax, s)
	}
	parts := strings.Split(strings.TrimSpace(caps[1]), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return bsk, fmt.Errorf("%w: missing ξ part in basket %q", ErrSyntax, s)
	}
	ob, err := parseTaggedInt(parts[0], "ν")
	if err != nil {
		return bsk, fmt.Errorf("%w: can't parse the ν part %q", ErrSyntax, parts[0])
	}
	psi, err := parseTaggedInt(parts[1], "ξ:β")
	if err != nil {
		return bsk, fmt.Errorf("%w: can't parse the ξ part %q", ErrSyntax, parts[1])
	}
	bsk.Ob = Ob(ob)
	bsk.Psi = Bk(psi)
	for _, part := range parts[2:] {
		l, kid, err := parseKid(part)
		if err != nil {
			return bsk, err
		}
		bsk.Put(l, kid)
	}

	return bsk, nil
}

// parseKid reads one "loc+kid" part of the basket form.
func parseKid(part string) (loc.Loc, Kid, error) {
	caps := reKid.FindStringSubmatch(part)
	if caps == nil {
		return 0, Kid{}, fmt.Errorf("%w: can't parse kid pattern in %q", ErrSyntax, part)
	}
	l, err := loc.Parse(caps[1])
	if err != nil {
		return 0, Kid{}, fmt.Errorf("%w: can't parse location %q: %v", ErrSyntax, caps[1], err)
	}
	var kid Kid
	switch caps[2] {
	case "→∅":
		kid = KidEmpt()
	case "→?":
		kid = KidRqtd()
	case "⇶0x":
		d, err := parseHex(caps[3])
		if err != nil {
			return 0, Kid{}, fmt.Errorf("can't parse data in %q: %w", part, err)
		}
		kid = KidDtzd(d)
	case "⇉β":
		bkStr, locStr, ok := strings.Cut(caps[3], ".")
		if !ok {
			return 0, Kid{}, fmt.Errorf("%w: invalid wait format in %q", ErrSyntax, caps[3])
		}
		bk, err := strconv.Atoi(bkStr)
		if err != nil {
			return 0, Kid{}, fmt.Errorf("%w: can't parse wait basket %q", ErrSyntax, bkStr)
		}
		wl, err := loc.Parse(locStr)
		if err != nil {
			return 0, Kid{}, fmt.Errorf("%w: can't parse wait loc %q: %v", ErrSyntax, locStr, err)
		}
		kid = KidWait(Bk(bk), wl)
	case "→(ν":
		obStr, psiStr, ok := strings.Cut(caps[3], ";")
		if !ok {
			return 0, Kid{}, fmt.Errorf("%w: can't parse the needed pair %q", ErrSyntax, caps[3])
		}
		ob, err := strconv.Atoi(obStr)
		if err != nil {
			return 0, Kid{}, fmt.Errorf("%w: can't parse need object %q", ErrSyntax, obStr)
		}
		psi, err := parseTaggedInt(psiStr, "β")
		if err != nil {
			return 0, Kid{}, fmt.Errorf("%w: can't parse need ξ %q", ErrSyntax, psiStr)
		}
		kid = KidNeed(Ob(ob), Bk(psi))
	}

	return l, kid, nil
}

// parseTaggedInt strips the tag prefix and reads the remaining integer.
func parseTaggedInt(s, tag string) (int, error) {
	rest := strings.TrimPrefix(s, tag)
	if rest == s {
		return 0, fmt.Errorf("missing %q prefix", tag)
	}

	return strconv.Atoi(rest)
}
