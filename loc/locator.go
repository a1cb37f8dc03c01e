// SPDX-License-Identifier: MIT

package loc

import (
	"fmt"
	"strings"
)

// Locator is a chain of locs connected with dots, for example 𝜋.𝜋.𝛼0.
// A well-formed locator is non-empty, keeps Φ and νn at the first position
// only, never starts with 𝛼i, and a leading νn stands alone.
type Locator []Loc

// ParseLocator reads a locator from its dotted textual form and validates
// its well-formedness.
func ParseLocator(s string) (Locator, error) {
	if s == "" {
		return nil, ErrEmptyLocator
	}
	parts := strings.Split(s, ".")
	p := make(Locator, 0, len(parts))
	for _, part := range parts {
		l, err := Parse(part)
		if err != nil {
			return nil, fmt.Errorf("can't parse step in %q: %w", s, err)
		}
		p = append(p, l)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w in %q", err, s)
	}

	return p, nil
}

// Validate checks the well-formedness rules.
func (p Locator) Validate() error {
	if len(p) == 0 {
		return ErrEmptyLocator
	}
	for _, l := range p[1:] {
		if l.IsObj() {
			return ErrMisplacedObj
		}
		if l == Root {
			return ErrMisplacedRoot
		}
	}
	if p[0].IsAttr() {
		return ErrMisplacedAttr
	}
	if p[0].IsObj() && len(p) > 1 {
		return ErrObjNotAlone
	}

	return nil
}

// At returns the step at position i, or false when i is out of bounds.
func (p Locator) At(i int) (Loc, bool) {
	if i < 0 || i >= len(p) {
		return 0, false
	}

	return p[i], true
}

// String joins the steps with dots using the canonical glyphs.
func (p Locator) String() string {
	parts := make([]string, len(p))
	for i, l := range p {
		parts[i] = l.String()
	}

	return strings.Join(parts, ".")
}
