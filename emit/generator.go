// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emit renders the compiled instruction set into the C sources of
// the assembler and emulator.
package emit

import (
	"bytes"
	"fmt"
)

// Names of the emitted artifacts.
const (
	LEXER_FILE     = "mnem.lex"
	SYMBOLS_FILE   = "ins.h"
	PATTERNS_FILE  = "gen.h"
	EMULATION_FILE = "emu.h"
	MANIFEST_FILE  = "isa.yaml"
	LISTING_FILE   = "opcodes.txt"
)

// BANNER starts every generated C source.
const BANNER = "/* This file is automatically generated */"

// Generator accumulates the text of an artifact.
type Generator struct {
	bytes.Buffer
}

func (g *Generator) printf(format string, args ...any) {
	fmt.Fprintf(g, "%s\n", fmt.Sprintf(format, args...))
}

// lines writes each line with an indent.
func (g *Generator) lines(indent string, lines []string) {
	for _, line := range lines {
		g.printf("%s%s", indent, line)
	}
}
