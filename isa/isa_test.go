package isa

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindingOrder(t *testing.T) {
	assert := assert.New(t)

	binding := Binding{MODE_REL16: 0x1020, MODE_NONE: 1, MODE_EXTENDED: 0xb0}

	var forward []Mode
	for mode := range binding.All() {
		forward = append(forward, mode)
	}
	assert.Equal([]Mode{MODE_NONE, MODE_EXTENDED, MODE_REL16}, forward)

	var backward []Mode
	for mode, opcode := range binding.Backward() {
		backward = append(backward, mode)
		assert.Equal(binding[mode], opcode)
	}
	assert.Equal([]Mode{MODE_REL16, MODE_EXTENDED, MODE_NONE}, backward)

	row := binding.Row()
	assert.Equal(1, row[MODE_NONE])
	assert.Equal(UNDEFINED, row[MODE_IMM8])
	assert.Equal(0xb0, row[MODE_EXTENDED])
	assert.Equal(0x1020, row[MODE_REL16])
}

func TestModeNames(t *testing.T) {
	assert := assert.New(t)

	var names []string
	for mode := range Modes() {
		names = append(names, mode.String())
	}
	assert.Equal([]string{"none", "imm8", "imm16", "direct", "indexed",
		"extended", "rel8", "rel16", "reg2", "reglist"}, names)

	assert.Equal("reg, reg", MODE_REG2.Syntax())
	assert.Equal("Mode(10)", Mode(MODE_COUNT).String())
}

func TestArch(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("m6800", ARCH_LEGACY.String())
	assert.Equal("6809", ARCH_EXTENDED.Tag())

	var set ArchSet
	assert.False(set.Has(ARCH_LEGACY))
	set = set.With(ARCH_EXTENDED)
	assert.True(set.Has(ARCH_EXTENDED))
	assert.False(set.Has(ARCH_LEGACY))
	set = set.With(ARCH_LEGACY)
	assert.Equal([]Arch{ARCH_LEGACY, ARCH_EXTENDED}, slices.Collect(set.All()))
}

func TestKindToken(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(TOKEN_MNEM1, KIND_UNARY_WORD.Token())
	assert.Equal(TOKEN_MNEM1T, KIND_UNARY_TRAP.Token())
	assert.Equal(TOKEN_MNEM1T, KIND_UNARY_NO_IMMEDIATE.Token())
	assert.Equal("MNEML", KIND_REGISTER_LIST.Token().String())
	assert.Equal("1*t", KIND_UNARY_TRAP.String())
}
