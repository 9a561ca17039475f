package emit

import (
	"fmt"
	"strings"

	"github.com/ezrec/isagen/catalog"
	"github.com/ezrec/isagen/isa"
)

// Patterns writes the pattern matrix of each architecture: the opcode of
// every mnemonic in every operand type, or UNDEF.
func (g *Generator) Patterns(cat *catalog.Catalog) {
	g.printf("%s", BANNER)
	for arch := range isa.Archs() {
		g.printf("static unsigned %v_patterns[][_OPD_TYPE_COUNT] =", arch)
		g.printf("{")
		for _, pattern := range cat.Patterns(arch) {
			cells := make([]string, 0, isa.MODE_COUNT)
			for _, opcode := range pattern.Opcodes {
				if opcode == isa.UNDEFINED {
					cells = append(cells, "UNDEF")
				} else {
					cells = append(cells, fmt.Sprintf("%#x", opcode))
				}
			}
			g.printf("\t[MNEM_%s] = { %s },", strings.ToUpper(pattern.Mnemonic), strings.Join(cells, ", "))
		}
		g.printf("};")
	}
}
