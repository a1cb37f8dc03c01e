// SPDX-License-Identifier: MIT

package emu

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/katalvlaran/phigo/loc"
)

// AtomFn is a primitive operation. It reads operands through Emu.Read and
// returns (datum, true) when all of them are ready, or (0, false) after
// implicitly requesting the missing ones.
type AtomFn func(e *Emu, bk Bk) (Data, bool)

// Attr binds one attribute to a locator. Xi distinguishes "bind ξ at this
// call-site" from "inherit ξ from the enclosing context".
type Attr struct {
	Locator loc.Locator
	Xi      bool
}

// Object is one immutable program node: a data object carrying Δ, an
// atomic object carrying λ, or a compound object carrying attributes only.
type Object struct {
	Delta    Data
	HasDelta bool
	Lambda   string
	Atom     AtomFn
	Constant bool
	Attrs    map[loc.Loc]Attr
}

// Open returns a new compound object with no attributes.
func Open() *Object {
	return &Object{Attrs: make(map[loc.Loc]Attr)}
}

// Dataic returns a data object carrying d. Data objects are constant.
func Dataic(d Data) *Object {
	o := Open()
	o.Delta = d
	o.HasDelta = true
	o.Constant = true

	return o
}

// Atomic returns an atomic object with the named primitive.
func Atomic(name string, fn AtomFn) *Object {
	o := Open()
	o.Lambda = name
	o.Atom = fn

	return o
}

// With binds one attribute and returns the object for chaining.
func (o *Object) With(l loc.Loc, p loc.Locator, xi bool) *Object {
	o.Attrs[l] = Attr{Locator: p, Xi: xi}

	return o
}

// AsConstant marks the object shareable across identical contexts.
func (o *Object) AsConstant() *Object {
	o.Constant = true

	return o
}

// IsEmpty reports whether the object carries nothing at all; empty slots
// mark unused arena indices.
func (o *Object) IsEmpty() bool {
	return o.Lambda == "" && !o.HasDelta && len(o.Attrs) == 0
}

// String renders the canonical text form: ⟦…⟧ with sorted parts, a leading
// "! " for constants, "(ξ)" after ξ-bound attributes, and "(𝜋)" after
// absolute νn targets.
func (o *Object) String() string {
	parts := make([]string, 0, len(o.Attrs)+2)
	if o.Lambda != "" {
		parts = append(parts, "λ↦"+o.Lambda)
	}
	if o.HasDelta {
		parts = append(parts, "Δ↦"+o.Delta.Hex())
	}
	for l, a := range o.Attrs {
		suffix := ""
		if a.Xi {
			suffix = "(ξ)"
		} else if first, ok := a.Locator.At(0); ok && first.IsObj() {
			suffix = "(𝜋)"
		}
		parts = append(parts, l.String()+"↦"+a.Locator.String()+suffix)
	}
	sort.Strings(parts)
	bang := ""
	if o.Constant {
		bang = "! "
	}

	return "⟦" + bang + strings.Join(parts, ", ") + "⟧"
}

var reObject = regexp.MustCompile(`⟦(!?)(.*)⟧`)

// ParseObject reads one object from its ⟦…⟧ text form. Unknown λ names are
// rejected.
func ParseObject(s string) (*Object, error) {
	caps := reObject.FindStringSubmatch(s)
	if caps == nil {
		return nil, fmt.Errorf("%w: can't parse object format in %q", ErrSyntax, s)
	}
	obj := Open()
	inner := strings.TrimSpace(caps[2])
	if inner != "" {
		for _, pair := range strings.Split(inner, ",") {
			if err := parseBinding(obj, strings.TrimSpace(pair)); err != nil {
				return nil, err
			}
		}
	}
	if caps[1] != "" {
		obj.Constant = true
	}

	return obj, nil
}

// parseBinding reads one "name ↦ target" pair into obj.
func parseBinding(obj *Object, pair string) error {
	halves := strings.Split(pair, "↦")
	if len(halves) != 2 {
		return fmt.Errorf("%w: can't split %q in two parts", ErrSyntax, pair)
	}
	name := strings.TrimSpace(halves[0])
	target := strings.TrimSpace(halves[1])
	if name == "" {
		return fmt.Errorf("%w: empty attribute name in %q", ErrSyntax, pair)
	}
	switch {
	case strings.HasPrefix(name, "λ"):
		fn, ok := LookupAtom(target)
		if !ok {
			return fmt.Errorf("%w %q in %q", ErrUnknownAtom, target, pair)
		}
		obj.Lambda = target
		obj.Atom = fn
	case strings.HasPrefix(name, "Δ"):
		hex := strings.TrimPrefix(target, "0x")
		d, err := parseHex(hex)
		if err != nil {
			return fmt.Errorf("can't read Δ in %q: %w", pair, err)
		}
		obj.Delta = d
		obj.HasDelta = true
		obj.Constant = true
	default:
		tail := strings.TrimSuffix(target, "(𝜋)")
		xi := strings.HasSuffix(tail, "(ξ)")
		tail = strings.TrimSuffix(tail, "(ξ)")
		l, err := loc.Parse(name)
		if err != nil {
			return fmt.Errorf("%w: can't parse location %q: %v", ErrSyntax, name, err)
		}
		p, err := loc.ParseLocator(tail)
		if err != nil {
			return fmt.Errorf("%w: can't parse locator %q: %v", ErrSyntax, tail, err)
		}
		obj.With(l, p, xi)
	}

	return nil
}
