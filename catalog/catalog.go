// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package catalog

import (
	"cmp"
	"log"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"

	"github.com/ezrec/isagen/isa"
)

// Options control catalog construction.
type Options struct {
	Strict  bool // If set, a mnemonic declared twice in one architecture is an error.
	Verbose bool // If set, logs redefinitions.
}

// Entry is a mnemonic and its addressing modes on one architecture.
type Entry struct {
	Mnemonic string
	Binding  isa.Binding
}

// TokenEntry is a lexer token of a mnemonic, with the architectures using it.
type TokenEntry struct {
	Mnemonic string
	Token    isa.Token
	Archs    isa.ArchSet
}

// Pattern is a row of the pattern matrix.
type Pattern struct {
	Mnemonic string
	Opcodes  [isa.MODE_COUNT]int // Opcode per mode, or isa.UNDEFINED.
}

// Catalog is the merged instruction set of all architectures.
type Catalog struct {
	Mnemonics []string                               // Sorted distinct mnemonics of all architectures.
	Bindings  [isa.ARCH_COUNT]map[string]isa.Binding // Modes of each mnemonic, per architecture.
	Tokens    []TokenEntry                           // Sorted by mnemonic, then token name.
}

// section is the expansion of one architecture.
type section struct {
	bindings map[string]isa.Binding
	tokens   map[string]isa.Token
}

// expandSection expands the declarations of one architecture, in input order.
func expandSection(desc *isa.Description, arch isa.Arch, opts Options) (sect section, err error) {
	sect.bindings = map[string]isa.Binding{}
	sect.tokens = map[string]isa.Token{}

	for decl := range desc.Declarations(arch) {
		var expansions []isa.Expansion
		expansions, err = isa.Expand(decl, arch)
		if err != nil {
			err = &ErrDeclaration{Arch: arch, Declaration: decl, Err: err}
			return
		}

		for _, exp := range expansions {
			_, dup := sect.bindings[exp.Mnemonic]
			if dup {
				if opts.Strict {
					err = &ErrDeclaration{Arch: arch, Declaration: decl, Err: isa.ErrDuplicateMnemonic}
					return
				}
				if opts.Verbose {
					log.Printf("%v: line %d: %v redefined", arch, decl.LineNo, exp.Mnemonic)
				}
			}
			// A redefinition replaces the token along with the modes.
			sect.bindings[exp.Mnemonic] = exp.Binding
			sect.tokens[exp.Mnemonic] = exp.Token
		}
	}

	return
}

// Build expands all declarations of a description into a catalog.
func Build(desc *isa.Description, opts Options) (catalog *Catalog, err error) {
	var sections [isa.ARCH_COUNT]section

	var group errgroup.Group
	for arch := range isa.Archs() {
		group.Go(func() (err error) {
			sections[arch], err = expandSection(desc, arch, opts)
			return
		})
	}

	err = group.Wait()
	if err != nil {
		return
	}

	catalog = &Catalog{}

	type tokenKey struct {
		mnemonic string
		token    isa.Token
	}
	tokens := map[tokenKey]isa.ArchSet{}
	names := map[string]bool{}

	for arch, sect := range sections {
		catalog.Bindings[arch] = sect.bindings
		for mnemonic, token := range sect.tokens {
			names[mnemonic] = true
			key := tokenKey{mnemonic: mnemonic, token: token}
			tokens[key] = tokens[key].With(isa.Arch(arch))
		}
	}

	catalog.Mnemonics = maps.Keys(names)
	slices.Sort(catalog.Mnemonics)

	for key, archs := range tokens {
		catalog.Tokens = append(catalog.Tokens, TokenEntry{
			Mnemonic: key.mnemonic,
			Token:    key.token,
			Archs:    archs,
		})
	}
	slices.SortFunc(catalog.Tokens, func(a, b TokenEntry) int {
		return cmp.Or(
			cmp.Compare(a.Mnemonic, b.Mnemonic),
			cmp.Compare(a.Token.String(), b.Token.String()),
		)
	})

	return
}

// Entries returns the mnemonics of an architecture with their bindings, in
// sorted mnemonic order.
func (catalog *Catalog) Entries(arch isa.Arch) (entries []Entry) {
	for _, mnemonic := range catalog.Mnemonics {
		binding, ok := catalog.Bindings[arch][mnemonic]
		if !ok {
			continue
		}
		entries = append(entries, Entry{Mnemonic: mnemonic, Binding: binding})
	}
	return
}

// Patterns returns the pattern matrix of an architecture: one row per
// mnemonic of the catalog, in sorted order. A mnemonic the architecture does
// not have gets a row of isa.UNDEFINED.
func (catalog *Catalog) Patterns(arch isa.Arch) (patterns []Pattern) {
	patterns = make([]Pattern, 0, len(catalog.Mnemonics))
	for _, mnemonic := range catalog.Mnemonics {
		// A nil binding yields a row of isa.UNDEFINED.
		patterns = append(patterns, Pattern{
			Mnemonic: mnemonic,
			Opcodes:  catalog.Bindings[arch][mnemonic].Row(),
		})
	}
	return
}

// Binding returns the modes of a mnemonic on an architecture.
func (catalog *Catalog) Binding(arch isa.Arch, mnemonic string) (binding isa.Binding, ok bool) {
	binding, ok = catalog.Bindings[arch][mnemonic]
	return
}
