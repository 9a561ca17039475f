package emit

import (
	"strings"

	"github.com/ezrec/isagen/decode"
	"github.com/ezrec/isagen/isa"
	"github.com/ezrec/isagen/semantics"
)

// Dispatch writes the instruction step function of an architecture: a
// switch on the fetched opcode byte, nested for each prefix table.
func (g *Generator) Dispatch(arch isa.Arch, matrix *decode.Matrix, provider semantics.Provider) (err error) {
	g.printf("static void do_%v_step(m6809_t * cpu)", arch)
	g.printf("{")
	g.printf("\tuint16_t address;")
	g.printf("\tuint16_t value;")
	g.printf("\tuint8_t op;")
	err = g.dispatchTable(arch, matrix, matrix.Root(), "\t", provider)
	if err != nil {
		return
	}
	g.printf("}")
	return
}

func (g *Generator) dispatchTable(arch isa.Arch, matrix *decode.Matrix, table *decode.Table, indent string, provider semantics.Provider) (err error) {
	g.printf("%sswitch((op = FETCH(cpu)))", indent)
	g.printf("%s{", indent)

	undefined := false
	for index, node := range table {
		switch node.Kind {
		case decode.NODE_EMPTY:
			undefined = true
			continue
		case decode.NODE_TABLE:
			g.printf("%scase 0x%02X:", indent, index)
			err = g.dispatchTable(arch, matrix, matrix.Table(node.Table), indent+"\t", provider)
		case decode.NODE_LEAF:
			g.printf("%scase 0x%02X:", indent, index)
			err = g.dispatchLeaf(arch, node, indent+"\t", provider)
		}
		if err != nil {
			return
		}
		g.printf("%s\tbreak;", indent)
	}

	if undefined {
		g.printf("%sdefault:", indent)
		g.printf("%s\tUNDEFINED();", indent)
	}
	g.printf("%s}", indent)

	return
}

func (g *Generator) dispatchLeaf(arch isa.Arch, node decode.Node, indent string, provider semantics.Provider) (err error) {
	ins := semantics.NewInstruction(arch, node.Mnemonic, node.Mode)
	body, err := provider.Render(ins)
	if err != nil {
		return
	}

	syntax := node.Mode.Syntax()
	if syntax != "" {
		syntax = " " + syntax
	}

	g.printf("%s/* %s%s */", indent, strings.ToUpper(node.Mnemonic), syntax)
	g.lines(indent, ins.Access.Fetch)
	g.lines(indent, body)

	return
}

// Emulation writes the step functions of all architectures.
func (g *Generator) Emulation(matrices [isa.ARCH_COUNT]*decode.Matrix, provider semantics.Provider) (err error) {
	g.printf("%s", BANNER)
	for arch := range isa.Archs() {
		err = g.Dispatch(arch, matrices[arch], provider)
		if err != nil {
			return
		}
	}
	return
}
