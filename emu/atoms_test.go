package emu_test

import (
	"testing"

	"github.com/katalvlaran/phigo/emu"
	"github.com/stretchr/testify/assert"
)

// TestBoolIf_SelectsBranches checks both branches of bool-if.
func TestBoolIf_SelectsBranches(t *testing.T) {
	assertDataized(t, 42, `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2 ⟧
		ν1(𝜋) ↦ ⟦ Δ ↦ 0x0001 ⟧
		ν2(𝜋) ↦ ⟦ λ ↦ bool-if, ρ ↦ ν1, 𝛼0 ↦ ν3, 𝛼1 ↦ ν4 ⟧
		ν3(𝜋) ↦ ⟦ Δ ↦ 0x002A ⟧
		ν4(𝜋) ↦ ⟦ Δ ↦ 0x0000 ⟧
	`)
	assertDataized(t, 42, `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2 ⟧
		ν1(𝜋) ↦ ⟦ Δ ↦ 0x0000 ⟧
		ν2(𝜋) ↦ ⟦ λ ↦ bool-if, ρ ↦ ν1, 𝛼0 ↦ ν3, 𝛼1 ↦ ν4 ⟧
		ν3(𝜋) ↦ ⟦ Δ ↦ 0x0000 ⟧
		ν4(𝜋) ↦ ⟦ Δ ↦ 0x002A ⟧
	`)
}

// TestIntAdd_Works sums ρ and 𝛼0.
func TestIntAdd_Works(t *testing.T) {
	assertDataized(t, 49, `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2 ⟧
		ν1(𝜋) ↦ ⟦ Δ ↦ 0x0007 ⟧
		ν2(𝜋) ↦ ⟦ λ ↦ int-add, ρ ↦ ν1, 𝛼0 ↦ ν3 ⟧
		ν3(𝜋) ↦ ⟦ Δ ↦ 0x002A ⟧
	`)
}

// TestIntTimes_Works multiplies ρ by 𝛼0.
func TestIntTimes_Works(t *testing.T) {
	assertDataized(t, 77, `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2 ⟧
		ν1(𝜋) ↦ ⟦ Δ ↦ 0x0007 ⟧
		ν2(𝜋) ↦ ⟦ λ ↦ int-times, ρ ↦ ν1, 𝛼0 ↦ ν3 ⟧
		ν3(𝜋) ↦ ⟦ Δ ↦ 0x000B ⟧
	`)
}

// TestIntSub_Works subtracts 𝛼0 from ρ.
func TestIntSub_Works(t *testing.T) {
	assertDataized(t, 40, `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2 ⟧
		ν1(𝜋) ↦ ⟦ Δ ↦ 0x002A ⟧
		ν2(𝜋) ↦ ⟦ λ ↦ int-sub, ρ ↦ ν1, 𝛼0 ↦ ν3 ⟧
		ν3(𝜋) ↦ ⟦ Δ ↦ 0x0002 ⟧
	`)
}

// TestIntNeg_Works negates ρ.
func TestIntNeg_Works(t *testing.T) {
	assertDataized(t, -42, `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2 ⟧
		ν1(𝜋) ↦ ⟦ Δ ↦ 0x002A ⟧
		ν2(𝜋) ↦ ⟦ λ ↦ int-neg, ρ ↦ ν1 ⟧
	`)
}

// TestIntDiv_Works divides ρ by 𝛼0, truncating.
func TestIntDiv_Works(t *testing.T) {
	assertDataized(t, 21, `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2 ⟧
		ν1(𝜋) ↦ ⟦ Δ ↦ 0x002A ⟧
		ν2(𝜋) ↦ ⟦ λ ↦ int-div, ρ ↦ ν1, 𝛼0 ↦ ν3 ⟧
		ν3(𝜋) ↦ ⟦ Δ ↦ 0x0002 ⟧
	`)
}

// TestIntLess_Works yields 0 or 1.
func TestIntLess_Works(t *testing.T) {
	program := func(arg string) string {
		return `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2 ⟧
		ν1(𝜋) ↦ ⟦ Δ ↦ 0x002A ⟧
		ν2(𝜋) ↦ ⟦ λ ↦ int-less, ρ ↦ ν1, 𝛼0 ↦ ν3 ⟧
		ν3(𝜋) ↦ ⟦ Δ ↦ ` + arg + ` ⟧
	`
	}
	assertDataized(t, 0, program("0x0002"))
	assertDataized(t, 0, program("0x002A"))
	assertDataized(t, 1, program("0x002B"))
}

// TestWrapAround_Arithmetic stays exact 16-bit two's-complement.
func TestWrapAround_Arithmetic(t *testing.T) {
	// 0x7FFF + 1 wraps to -0x8000.
	assertDataized(t, -32768, `
		ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2 ⟧
		ν1(𝜋) ↦ ⟦ Δ ↦ 0x7FFF ⟧
		ν2(𝜋) ↦ ⟦ λ ↦ int-add, ρ ↦ ν1, 𝛼0 ↦ ν3 ⟧
		ν3(𝜋) ↦ ⟦ Δ ↦ 0x0001 ⟧
	`)
}

// TestAtomRegistry lists the seven primitives.
func TestAtomRegistry(t *testing.T) {
	for _, name := range []string{
		"int-add", "int-sub", "int-neg", "int-times", "int-div", "int-less", "bool-if",
	} {
		_, ok := emu.LookupAtom(name)
		assert.True(t, ok, "missing atom %q", name)
	}
	_, ok := emu.LookupAtom("unknown-lambda")
	assert.False(t, ok)
	assert.Len(t, emu.AtomNames(), 7)
}
