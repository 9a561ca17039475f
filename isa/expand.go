// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Expansion is a mnemonic with the addressing modes a declaration gives it.
type Expansion struct {
	Mnemonic string
	Token    Token
	Binding  Binding
}

// offset adds delta to a base opcode, failing if it leaves the two byte range.
func offset(base uint16, delta int) (opcode uint16, err error) {
	value := int(base) + delta
	if value > 0xffff {
		err = &ErrOverflow{Base: base, Delta: delta}
		return
	}
	opcode = uint16(value)
	return
}

// unaryBinding binds direct, indexed and extended modes at base+0x10, +0x20
// and +0x30, the layout shared by all the accumulator instructions.
func unaryBinding(base uint16) (binding Binding, err error) {
	binding = Binding{}
	for n, mode := range []Mode{MODE_DIRECT, MODE_INDEXED, MODE_EXTENDED} {
		binding[mode], err = offset(base, 0x10*(n+1))
		if err != nil {
			return
		}
	}
	return
}

// Expand computes the addressing modes of a declaration on an architecture.
//
// Relative branches on the extended architecture expand to two mnemonics:
// the declared one and its long form, prefixed with LONG_BRANCH_PREFIX and
// bound only to MODE_REL16.
func Expand(decl Declaration, arch Arch) (expansions []Expansion, err error) {
	if len(decl.Bases) == 0 {
		err = ErrMalformedLine
		return
	}
	base := decl.Bases[0]

	var binding Binding

	switch decl.Kind {
	case KIND_NILARY:
		binding = Binding{MODE_NONE: base}
	case KIND_UNARY:
		binding, err = unaryBinding(base)
		binding[MODE_IMM8] = base
	case KIND_UNARY_TRAP:
		binding, err = unaryBinding(base)
	case KIND_UNARY_WORD:
		binding, err = unaryBinding(base)
		binding[MODE_IMM16] = base
	case KIND_UNARY_IMMEDIATE:
		binding = Binding{MODE_IMM8: base}
	case KIND_UNARY_INDEXED:
		binding = Binding{MODE_INDEXED: base}
	case KIND_UNARY_NO_IMMEDIATE:
		binding = Binding{}
		if arch != ARCH_LEGACY {
			binding[MODE_DIRECT] = base
		}
		binding[MODE_INDEXED], err = offset(base, 0x60)
		if err != nil {
			return
		}
		binding[MODE_EXTENDED], err = offset(base, 0x70)
	case KIND_RELATIVE:
		binding = Binding{MODE_REL8: base}
		if arch != ARCH_LEGACY {
			var long uint16
			if len(decl.Bases) > 1 {
				long = decl.Bases[1]
			} else {
				long, err = offset(base, 0x1000)
				if err != nil {
					return
				}
			}
			binding[MODE_REL16] = long
			expansions = append(expansions, Expansion{
				Mnemonic: decl.Mnemonic,
				Token:    decl.Kind.Token(),
				Binding:  binding,
			}, Expansion{
				Mnemonic: LONG_BRANCH_PREFIX + decl.Mnemonic,
				Token:    decl.Kind.Token(),
				Binding:  Binding{MODE_REL16: long},
			})
			return
		}
	case KIND_BINARY:
		binding = Binding{MODE_REG2: base}
	case KIND_REGISTER_LIST:
		binding = Binding{MODE_REGLIST: base}
	default:
		err = ErrKind(decl.Kind.String())
	}

	if err != nil {
		return
	}

	expansions = append(expansions, Expansion{
		Mnemonic: decl.Mnemonic,
		Token:    decl.Kind.Token(),
		Binding:  binding,
	})

	return
}
