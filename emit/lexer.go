package emit

import (
	"strings"

	"github.com/ezrec/isagen/catalog"
)

// Lexer writes the mnemonic rules of the lexer: one rule per token and
// architecture, in the start condition of the architecture.
func (g *Generator) Lexer(cat *catalog.Catalog) {
	g.printf("%%%%")
	for _, entry := range cat.Tokens {
		for arch := range entry.Archs.All() {
			g.printf("<%s>\"%s\"\tyylval.i = MNEM_%s; return TOK_%s_%v;",
				strings.ToUpper(arch.String()), entry.Mnemonic,
				strings.ToUpper(entry.Mnemonic), arch.Tag(), entry.Token)
		}
	}
	g.printf("%%%%")
}

// Symbols writes the mnemonic enumeration of the parser.
func (g *Generator) Symbols(cat *catalog.Catalog) {
	g.printf("%s", BANNER)
	g.printf("/* INCLUDE_MNEMONICS_YACC */")
	for _, mnemonic := range cat.Mnemonics {
		g.printf("\tMNEM_%s,", strings.ToUpper(mnemonic))
	}
}
