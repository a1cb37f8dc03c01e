package emu_test

import (
	"testing"

	"github.com/katalvlaran/phigo/emu"
	"github.com/katalvlaran/phigo/loc"
	"github.com/katalvlaran/phigo/perf"
	"github.com/stretchr/testify/require"
)

// ph parses a locator or fails the test.
func ph(t *testing.T, s string) loc.Locator {
	t.Helper()
	p, err := loc.ParseLocator(s)
	require.NoError(t, err, "locator %q", s)

	return p
}

// parseEmu parses a program with deletion disabled and both stop guards
// on, the way most scenarios run.
func parseEmu(t *testing.T, text string) *emu.Emu {
	t.Helper()
	e, err := emu.Parse(text)
	require.NoError(t, err)
	e.Opt(emu.DontDelete)
	e.Opt(emu.StopWhenTooManyCycles)
	e.Opt(emu.StopWhenStuck)

	return e
}

// assertDataized parses, dataizes, and compares the root value.
func assertDataized(t *testing.T, expected emu.Data, text string) *perf.Perf {
	t.Helper()
	e := parseEmu(t, text)
	d, p, err := e.Dataize()
	require.NoError(t, err)
	require.Equal(t, expected, d, "the expected dataization result is %d", expected)

	return p
}

// countBaskets counts live baskets instantiating ob.
func countBaskets(e *emu.Emu, ob emu.Ob) int {
	n := 0
	for bk := 0; bk < emu.MaxBaskets; bk++ {
		bsk := e.Basket(emu.Bk(bk))
		if !bsk.IsEmpty() && bsk.Ob == ob {
			n++
		}
	}

	return n
}
