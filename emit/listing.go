package emit

import (
	"github.com/ezrec/isagen/decode"
	"github.com/ezrec/isagen/isa"
	"github.com/ezrec/isagen/semantics"
)

// Listing writes the decoded opcodes of every architecture in byte order,
// with the total instruction length.
func (g *Generator) Listing(matrices [isa.ARCH_COUNT]*decode.Matrix) {
	for arch := range isa.Archs() {
		g.printf("%v:", arch)
		for opcode, node := range matrices[arch].Leaves() {
			length := 1
			if opcode > 0xff {
				length++
			}
			length += semantics.AccessFor(arch, node.Mnemonic, node.Mode).Width
			g.printf("\t%04x  %-6s %-8s %d", opcode, node.Mnemonic, node.Mode, length)
		}
	}
}
