// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"iter"
)

// Arch is a modelled processor architecture.
type Arch int

//go:generate go tool stringer -linecomment -type=Arch
const (
	ARCH_LEGACY   = Arch(0) // m6800
	ARCH_EXTENDED = Arch(1) // m6809
)

// ARCH_COUNT is the number of modelled architectures.
const ARCH_COUNT = 2

// Archs returns all architectures, legacy first.
func Archs() iter.Seq[Arch] {
	return func(yield func(Arch) bool) {
		for arch := range Arch(ARCH_COUNT) {
			if !yield(arch) {
				return
			}
		}
	}
}

// Tag returns the architecture name without its family prefix, ie "6809".
func (arch Arch) Tag() string {
	return arch.String()[1:]
}

// ArchSet is a set of architectures.
type ArchSet uint8

// With returns the set with arch added.
func (set ArchSet) With(arch Arch) ArchSet {
	return set | (1 << arch)
}

// Has returns true if arch is a member of the set.
func (set ArchSet) Has(arch Arch) bool {
	return set&(1<<arch) != 0
}

// All iterates over the members of the set, legacy first.
func (set ArchSet) All() iter.Seq[Arch] {
	return func(yield func(Arch) bool) {
		for arch := range Archs() {
			if set.Has(arch) && !yield(arch) {
				return
			}
		}
	}
}

// Mode is an operand addressing mode.
//
// The order of the modes is significant: it is the column order of the
// pattern matrix, and the decode compiler visits modes in reverse of it.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_NONE     = Mode(0) // none
	MODE_IMM8     = Mode(1) // imm8
	MODE_IMM16    = Mode(2) // imm16
	MODE_DIRECT   = Mode(3) // direct
	MODE_INDEXED  = Mode(4) // indexed
	MODE_EXTENDED = Mode(5) // extended
	MODE_REL8     = Mode(6) // rel8
	MODE_REL16    = Mode(7) // rel16
	MODE_REG2     = Mode(8) // reg2
	MODE_REGLIST  = Mode(9) // reglist
)

// MODE_COUNT is the number of addressing modes.
const MODE_COUNT = 10

// Modes iterates the addressing modes in canonical order.
func Modes() iter.Seq[Mode] {
	return func(yield func(Mode) bool) {
		for mode := range Mode(MODE_COUNT) {
			if !yield(mode) {
				return
			}
		}
	}
}

// syntaxMap is the operand syntax of each mode, as shown in listings.
var syntaxMap = [MODE_COUNT]string{
	MODE_NONE:     "",
	MODE_IMM8:     "imm8",
	MODE_IMM16:    "imm16",
	MODE_DIRECT:   "dir",
	MODE_INDEXED:  "idx",
	MODE_EXTENDED: "ext",
	MODE_REL8:     "rel8",
	MODE_REL16:    "rel16",
	MODE_REG2:     "reg, reg",
	MODE_REGLIST:  "lst",
}

// Syntax returns the short listing form of the mode, empty for MODE_NONE.
func (mode Mode) Syntax() string {
	return syntaxMap[mode]
}

// Kind is the operand-encoding kind of a declaration.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_NILARY             = Kind(0) // 0
	KIND_UNARY              = Kind(1) // 1
	KIND_UNARY_TRAP         = Kind(2) // 1*t
	KIND_UNARY_WORD         = Kind(3) // 1w
	KIND_UNARY_IMMEDIATE    = Kind(4) // 1i
	KIND_UNARY_INDEXED      = Kind(5) // 1x
	KIND_UNARY_NO_IMMEDIATE = Kind(6) // 1t
	KIND_RELATIVE           = Kind(7) // 1r
	KIND_BINARY             = Kind(8) // 2
	KIND_REGISTER_LIST      = Kind(9) // l
)

// KIND_COUNT is the number of declaration kinds.
const KIND_COUNT = 10

// kindMap maps the spelling of a kind in the description text.
var kindMap = map[string]Kind{}

func init() {
	for kind := range Kind(KIND_COUNT) {
		kindMap[kind.String()] = kind
	}
}

// ParseKind returns the kind spelled as word.
func ParseKind(word string) (kind Kind, err error) {
	kind, ok := kindMap[word]
	if !ok {
		err = ErrUnknownKind
	}
	return
}

// Token is the lexer token category of a mnemonic.
type Token int

//go:generate go tool stringer -linecomment -type=Token
const (
	TOKEN_MNEM0  = Token(0) // MNEM0
	TOKEN_MNEM1  = Token(1) // MNEM1
	TOKEN_MNEM1T = Token(2) // MNEM1T
	TOKEN_MNEM1I = Token(3) // MNEM1I
	TOKEN_MNEM1X = Token(4) // MNEM1X
	TOKEN_MNEM1R = Token(5) // MNEM1R
	TOKEN_MNEM2  = Token(6) // MNEM2
	TOKEN_MNEML  = Token(7) // MNEML
)

// tokenMap is the token category of each kind.
var tokenMap = [KIND_COUNT]Token{
	KIND_NILARY:             TOKEN_MNEM0,
	KIND_UNARY:              TOKEN_MNEM1,
	KIND_UNARY_TRAP:         TOKEN_MNEM1T,
	KIND_UNARY_WORD:         TOKEN_MNEM1,
	KIND_UNARY_IMMEDIATE:    TOKEN_MNEM1I,
	KIND_UNARY_INDEXED:      TOKEN_MNEM1X,
	KIND_UNARY_NO_IMMEDIATE: TOKEN_MNEM1T,
	KIND_RELATIVE:           TOKEN_MNEM1R,
	KIND_BINARY:             TOKEN_MNEM2,
	KIND_REGISTER_LIST:      TOKEN_MNEML,
}

// Token returns the token category of the kind. It does not depend on the
// modes available on any architecture.
func (kind Kind) Token() Token {
	return tokenMap[kind]
}

// UNDEFINED marks an addressing mode without an opcode.
const UNDEFINED = -1

// LONG_BRANCH_PREFIX starts the mnemonics of synthesized long branches. These
// are the only mnemonics allowed to take over an already decoded opcode.
const LONG_BRANCH_PREFIX = "l"

// Binding maps the addressing modes of a mnemonic to their opcode values.
type Binding map[Mode]uint16

// All iterates over the bound modes in canonical order.
func (b Binding) All() iter.Seq2[Mode, uint16] {
	return func(yield func(Mode, uint16) bool) {
		for mode := range Modes() {
			opcode, ok := b[mode]
			if ok && !yield(mode, opcode) {
				return
			}
		}
	}
}

// Backward iterates over the bound modes in reverse canonical order.
func (b Binding) Backward() iter.Seq2[Mode, uint16] {
	return func(yield func(Mode, uint16) bool) {
		for mode := Mode(MODE_COUNT - 1); mode >= 0; mode-- {
			opcode, ok := b[mode]
			if ok && !yield(mode, opcode) {
				return
			}
		}
	}
}

// Row returns the opcodes of the binding in canonical column order, with
// UNDEFINED for unbound modes.
func (b Binding) Row() (row [MODE_COUNT]int) {
	for mode := range Modes() {
		opcode, ok := b[mode]
		if ok {
			row[mode] = int(opcode)
		} else {
			row[mode] = UNDEFINED
		}
	}
	return
}

// Declaration is a single instruction line of a description.
type Declaration struct {
	LineNo   int      // Line number in the description text.
	Mnemonic string   // Instruction mnemonic.
	Kind     Kind     // Operand-encoding kind.
	Bases    []uint16 // One or two base opcodes.
}

// Description is a parsed instruction description.
type Description struct {
	Sections [ARCH_COUNT][]Declaration // Declarations per architecture, in input order.
}

// Declarations iterates over all declarations of an architecture.
func (desc *Description) Declarations(arch Arch) iter.Seq[Declaration] {
	return func(yield func(Declaration) bool) {
		for _, decl := range desc.Sections[arch] {
			if !yield(decl) {
				return
			}
		}
	}
}
