// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// sectionMap maps the section markers of a description.
var sectionMap = map[string]int{
	"@6800": int(ARCH_LEGACY),
	"@6809": int(ARCH_EXTENDED),
	"@end":  sectionNone,
}

// sectionNone discards declarations following a terminator.
const sectionNone = -1

// Parser reads instruction descriptions.
//
// A description is a sequence of lines of the form
//
//	mnemonic kind base[,base2]
//
// grouped into sections by the markers '@6800', '@6809' and '@end'. Lines
// before the first marker are declarations for the 6800. Text following a
// ';' is a comment.
type Parser struct {
	Verbose bool // If set, verbosely logs each declaration.
}

// parseBases parses a comma separated list of one or two hex opcodes.
func parseBases(word string) (bases []uint16, err error) {
	values := strings.Split(word, ",")
	if len(values) > 2 {
		err = ErrMalformedLine
		return
	}

	for _, value := range values {
		digits := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
		var v64 uint64
		v64, err = strconv.ParseUint(digits, 16, 16)
		if err != nil {
			err = ErrBase(value)
			return
		}
		bases = append(bases, uint16(v64))
	}

	return
}

// parseDeclaration parses a single declaration line.
func parseDeclaration(line string, lineno int) (decl Declaration, err error) {
	words := strings.Fields(line)
	if len(words) != 3 {
		err = ErrMalformedLine
		return
	}

	kind, err := ParseKind(words[1])
	if err != nil {
		err = ErrKind(words[1])
		return
	}

	bases, err := parseBases(words[2])
	if err != nil {
		return
	}

	decl = Declaration{
		LineNo:   lineno,
		Mnemonic: words[0],
		Kind:     kind,
		Bases:    bases,
	}

	return
}

// Parse parses an input stream into a Description.
func (parser *Parser) Parse(input io.Reader) (desc *Description, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	desc = &Description{}
	section := int(ARCH_LEGACY)

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.SplitN(text, ";", 2)
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		marker, ok := sectionMap[line]
		if ok {
			section = marker
			continue
		}

		if section == sectionNone {
			continue
		}

		var decl Declaration
		decl, err = parseDeclaration(line, lineno)
		if err != nil {
			desc = nil
			return
		}

		arch := Arch(section)
		if parser.Verbose {
			log.Printf("%v: %v: %v %v %#v", lineno, arch, decl.Mnemonic, decl.Kind, decl.Bases)
		}

		desc.Sections[arch] = append(desc.Sections[arch], decl)
	}

	err = scanner.Err()
	if err != nil {
		desc = nil
		line = ""
	}

	return
}
