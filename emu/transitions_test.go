package emu_test

import (
	"testing"

	"github.com/katalvlaran/phigo/emu"
	"github.com/katalvlaran/phigo/loc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deleteProbeProgram feeds one decorated literal into both operands of a
// sum; each decorator basket finishes mid-run and becomes reclaimable
// while the computation continues.
const deleteProbeProgram = `
	ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν3(𝜋) ⟧
	ν1(𝜋) ↦ ⟦ Δ ↦ 0x0015 ⟧
	ν2(𝜋) ↦ ⟦ 𝜑 ↦ ν1(𝜋) ⟧
	ν3(𝜋) ↦ ⟦ λ ↦ int-add, ρ ↦ ν2(𝜋), 𝛼0 ↦ ν2(𝜋) ⟧
`

// TestDelete_ReclaimsFinishedBaskets removes finished, unreferenced
// decorator baskets during the run.
func TestDelete_ReclaimsFinishedBaskets(t *testing.T) {
	e, err := emu.Parse(deleteProbeProgram)
	require.NoError(t, err)
	e.Opt(emu.StopWhenTooManyCycles)
	e.Opt(emu.StopWhenStuck)
	d, _, err := e.Dataize()
	require.NoError(t, err)
	assert.Equal(t, emu.Data(42), d)
	assert.Equal(t, 0, countBaskets(e, 2), "decorator baskets reclaimed")
	// The data basket survives: data objects are constant and never
	// deleted.
	assert.Equal(t, 1, countBaskets(e, 1))
}

// TestDelete_KeptUnderDontDelete keeps every basket alive for
// inspection.
func TestDelete_KeptUnderDontDelete(t *testing.T) {
	e := parseEmu(t, deleteProbeProgram)
	d, _, err := e.Dataize()
	require.NoError(t, err)
	assert.Equal(t, emu.Data(42), d)
	assert.Equal(t, 2, countBaskets(e, 2), "one basket per operand position")
}

// TestSharing_ConstantAtomFiresOnce binds two argument positions to the
// same constant compound; its atom must be invoked exactly once.
func TestSharing_ConstantAtomFiresOnce(t *testing.T) {
	e := parseEmu(t, `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν4(𝜋) ⟧
		ν1(𝜋) ↦ ⟦! λ ↦ int-add, ρ ↦ ν2(𝜋), 𝛼0 ↦ ν3(𝜋) ⟧
		ν2(𝜋) ↦ ⟦ Δ ↦ 0x0002 ⟧
		ν3(𝜋) ↦ ⟦ Δ ↦ 0x0003 ⟧
		ν4(𝜋) ↦ ⟦ λ ↦ int-add, ρ ↦ ν1(𝜋), 𝛼0 ↦ ν1(𝜋) ⟧
	`)
	d, p, err := e.Dataize()
	require.NoError(t, err)
	assert.Equal(t, emu.Data(10), d)
	assert.Equal(t, 1, countBaskets(e, 1), "both positions share one basket")
	assert.Equal(t, 2, p.Atoms("int-add"), "shared addend fired once, outer sum once")
}

// TestSharing_DataObjectsGlobal shares a data object's basket across
// unrelated contexts.
func TestSharing_DataObjectsGlobal(t *testing.T) {
	e := parseEmu(t, `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2(𝜋) ⟧
		ν1(𝜋) ↦ ⟦ Δ ↦ 0x0015 ⟧
		ν2(𝜋) ↦ ⟦ λ ↦ int-add, ρ ↦ ν1(𝜋), 𝛼0 ↦ ν1(𝜋) ⟧
	`)
	d, _, err := e.Dataize()
	require.NoError(t, err)
	assert.Equal(t, emu.Data(42), d)
	assert.Equal(t, 1, countBaskets(e, 1), "data objects are globally shared")
}

// TestInject_PlacesBasket installs a prebuilt basket and refuses an
// occupied slot.
func TestInject_PlacesBasket(t *testing.T) {
	e := emu.New()
	bsk, err := emu.ParseBasket("[ν1, ξ:β1, 𝜑⇶0x002A]")
	require.NoError(t, err)
	require.NoError(t, e.Inject(1, bsk))
	assert.False(t, e.Basket(1).IsEmpty())
	assert.ErrorIs(t, e.Inject(1, bsk), emu.ErrBasketOccupied)
	assert.ErrorIs(t, e.Inject(emu.MaxBaskets, bsk), emu.ErrOutOfRange)
}

// TestPut_RefusesOccupiedSlot guards the object arena.
func TestPut_RefusesOccupiedSlot(t *testing.T) {
	e := emu.New()
	require.NoError(t, e.Put(1, emu.Dataic(1)))
	assert.ErrorIs(t, e.Put(1, emu.Dataic(2)), emu.ErrObjectOccupied)
	assert.ErrorIs(t, e.Put(emu.MaxObjects, emu.Dataic(1)), emu.ErrOutOfRange)
	assert.ErrorIs(t, e.Put(-1, emu.Dataic(1)), emu.ErrOutOfRange)
}

// TestRead_UpgradesEmptToRqtd covers the atom-facing read protocol.
func TestRead_UpgradesEmptToRqtd(t *testing.T) {
	e := emu.New()
	bsk, err := emu.ParseBasket("[ν1, ξ:β0, ρ→∅, 𝛼0⇶0x0007, 𝛼1→?]")
	require.NoError(t, err)
	require.NoError(t, e.Inject(1, bsk))

	// Empt upgrades to Rqtd and reports not-ready.
	_, ok := e.Read(1, loc.Rho)
	assert.False(t, ok)
	k, found := e.Basket(1).Kid(loc.Rho)
	require.True(t, found)
	assert.Equal(t, emu.Rqtd, k.State)

	// Dtzd returns the datum.
	d, ok := e.Read(1, loc.Attr(0))
	assert.True(t, ok)
	assert.Equal(t, emu.Data(7), d)

	// Rqtd stays pending.
	_, ok = e.Read(1, loc.Attr(1))
	assert.False(t, ok)

	// A location the basket has no slot for is a malformed program.
	assert.Panics(t, func() { e.Read(1, loc.Sigma) })
}
