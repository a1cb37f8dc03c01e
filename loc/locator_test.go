package loc_test

import (
	"testing"

	"github.com/katalvlaran/phigo/loc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLocator_RoundTrip verifies parse → print → parse stability for
// a mix of glyph and alias spellings.
func TestParseLocator_RoundTrip(t *testing.T) {
	for _, txt := range []string{
		"Q",
		"&",
		"P",
		"^",
		"@",
		"ν78",
		"ρ.&.0.^.@.P.81",
		"Q.0.&.3.^",
		"𝜑.𝛼0.σ.𝛼3.ρ",
		"Φ.𝛼1",
		"𝜋.𝜋.𝛼9",
		"P.0",
	} {
		p1, err := loc.ParseLocator(txt)
		require.NoError(t, err, "parse %q", txt)
		p2, err := loc.ParseLocator(p1.String())
		require.NoError(t, err, "re-parse %q", p1)
		assert.Equal(t, p1, p2, "round-trip %q", txt)
	}
}

// TestParseLocator_Invalid rejects malformed locators.
func TestParseLocator_Invalid(t *testing.T) {
	cases := map[string]error{
		"":               loc.ErrEmptyLocator,
		"ν5.0.ν3":        loc.ErrMisplacedObj,
		"𝜋.":             loc.ErrUnknownLoc,
		".ν5":            loc.ErrUnknownLoc,
		"𝜋.ν5":           loc.ErrMisplacedObj,
		"Q.Q":            loc.ErrMisplacedRoot,
		"5":              loc.ErrMisplacedAttr,
		"invalid syntax": loc.ErrUnknownLoc,
		"$  .  5":        loc.ErrUnknownLoc,
		"ν5.0":           loc.ErrObjNotAlone,
	}
	for txt, want := range cases {
		_, err := loc.ParseLocator(txt)
		assert.ErrorIs(t, err, want, "input %q", txt)
	}
}

// TestLocator_At fetches steps by position.
func TestLocator_At(t *testing.T) {
	p, err := loc.ParseLocator("P.0.@")
	require.NoError(t, err)
	first, ok := p.At(0)
	require.True(t, ok)
	assert.Equal(t, loc.Xi, first)
	_, ok = p.At(10)
	assert.False(t, ok)
	_, ok = p.At(-1)
	assert.False(t, ok)
}

// TestLocator_Build constructs a locator from locs directly.
func TestLocator_Build(t *testing.T) {
	p := loc.Locator{loc.Xi, loc.Attr(0), loc.Phi}
	require.NoError(t, p.Validate())
	assert.Equal(t, "𝜋.𝛼0.𝜑", p.String())
	assert.Len(t, p, 3)
}
