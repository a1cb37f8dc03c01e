// SPDX-License-Identifier: MIT

package loc

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	reArg = regexp.MustCompile(`^𝛼?(\d+)$`)
	reObj = regexp.MustCompile(`^ν(\d+)$`)
)

// Parse reads one loc from its textual form. It accepts the Unicode glyphs
// Φ, Δ, 𝜋, ρ, 𝜑, σ, 𝛼i, νn and the ASCII aliases Q, D, P, ^, @, &; a bare
// number is read as 𝛼i.
func Parse(s string) (Loc, error) {
	if m := reArg.FindStringSubmatch(s); m != nil {
		i, err := strconv.Atoi(m[1])
		if err != nil || Loc(i) >= objOffset {
			return 0, fmt.Errorf("%w: bad attr index in %q", ErrUnknownLoc, s)
		}

		return Attr(i), nil
	}
	if m := reObj.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: bad object index in %q", ErrUnknownLoc, s)
		}

		return Obj(n), nil
	}
	switch s {
	case "Φ", "Q":
		return Root, nil
	case "Δ", "D":
		return Delta, nil
	case "𝜋", "P":
		return Xi, nil
	case "ρ", "^":
		return Rho, nil
	case "𝜑", "@":
		return Phi, nil
	case "σ", "&":
		return Sigma, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLoc, s)
}

// String renders the loc with its canonical Unicode glyph.
func (l Loc) String() string {
	switch {
	case l == Root:
		return "Φ"
	case l == Xi:
		return "𝜋"
	case l == Phi:
		return "𝜑"
	case l == Rho:
		return "ρ"
	case l == Sigma:
		return "σ"
	case l == Delta:
		return "Δ"
	case l.IsObj():
		return fmt.Sprintf("ν%d", l.ObIndex())
	default:
		return fmt.Sprintf("𝛼%d", int(l))
	}
}
