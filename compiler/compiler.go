// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package compiler runs the instruction set compilation pipeline: parsing,
// expansion into the catalog, decode matrix compilation and rendering of
// the artifacts.
package compiler

import (
	"io"
	"iter"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/isagen/catalog"
	"github.com/ezrec/isagen/decode"
	"github.com/ezrec/isagen/emit"
	"github.com/ezrec/isagen/internal"
	"github.com/ezrec/isagen/isa"
	"github.com/ezrec/isagen/semantics"
)

// Provider names understood by Compiler.NewProvider.
const (
	PROVIDER_BUILTIN = "builtin"
	PROVIDER_TRACE   = "trace"
	SCRIPT_SUFFIX    = ".star"
)

// Compiler compiles instruction descriptions.
type Compiler struct {
	Verbose bool // If set, enables verbose logging.
	Strict  bool // If set, a mnemonic declared twice in an architecture is an error.
}

// Result is a compiled instruction set.
type Result struct {
	Description *isa.Description
	Catalog     *catalog.Catalog
	Matrices    [isa.ARCH_COUNT]*decode.Matrix
}

// Compile compiles an instruction description.
func (comp *Compiler) Compile(input io.Reader) (result *Result, err error) {
	parser := &isa.Parser{Verbose: comp.Verbose}
	desc, err := parser.Parse(input)
	if err != nil {
		return
	}

	cat, err := catalog.Build(desc, catalog.Options{Strict: comp.Strict, Verbose: comp.Verbose})
	if err != nil {
		return
	}

	var matrices [isa.ARCH_COUNT]*decode.Matrix

	var group errgroup.Group
	for arch := range isa.Archs() {
		group.Go(func() (err error) {
			matrices[arch], err = decode.Compile(cat.Entries(arch), decode.Options{Verbose: comp.Verbose})
			if err != nil {
				return
			}
			if comp.Verbose {
				log.Printf("%v: %d mnemonics, %d opcodes, %d tables, %d collisions", arch,
					len(cat.Bindings[arch]), internal.Count(matrices[arch].Leaves()),
					len(matrices[arch].Tables), len(matrices[arch].Collisions))
			}
			return
		})
	}

	err = group.Wait()
	if err != nil {
		return
	}

	result = &Result{
		Description: desc,
		Catalog:     cat,
		Matrices:    matrices,
	}

	return
}

// Collisions iterates over the opcode collisions of all architectures.
func (result *Result) Collisions() iter.Seq2[isa.Arch, decode.Collision] {
	seqs := make([]iter.Seq2[isa.Arch, decode.Collision], 0, isa.ARCH_COUNT)
	for arch := range isa.Archs() {
		seqs = append(seqs, func(yield func(isa.Arch, decode.Collision) bool) {
			for _, collision := range result.Matrices[arch].Collisions {
				if !yield(arch, collision) {
					return
				}
			}
		})
	}
	return internal.Concat2(seqs...)
}

// Options select the artifacts to render.
type Options struct {
	Emulation bool               // Render the emulation dispatch.
	Manifest  bool               // Render the YAML manifest and the opcode listing.
	Semantics semantics.Provider // Bodies of the emulation dispatch; builtin if nil.
}

// Render renders the artifacts of a compiled instruction set. No artifact
// is returned unless all of them rendered.
func (result *Result) Render(opts Options) (bundle *emit.Bundle, err error) {
	provider := opts.Semantics
	if provider == nil {
		provider = semantics.Builtin()
	}

	type artifact struct {
		name   string
		render func(g *emit.Generator) error
	}

	artifacts := []artifact{
		{emit.LEXER_FILE, func(g *emit.Generator) error {
			g.Lexer(result.Catalog)
			return nil
		}},
		{emit.SYMBOLS_FILE, func(g *emit.Generator) error {
			g.Symbols(result.Catalog)
			return nil
		}},
		{emit.PATTERNS_FILE, func(g *emit.Generator) error {
			g.Patterns(result.Catalog)
			return nil
		}},
	}

	if opts.Emulation {
		artifacts = append(artifacts, artifact{emit.EMULATION_FILE, func(g *emit.Generator) error {
			return g.Emulation(result.Matrices, provider)
		}})
	}

	if opts.Manifest {
		artifacts = append(artifacts, artifact{emit.MANIFEST_FILE, func(g *emit.Generator) error {
			return g.Manifest(result.Catalog)
		}}, artifact{emit.LISTING_FILE, func(g *emit.Generator) error {
			g.Listing(result.Matrices)
			return nil
		}})
	}

	rendered := &emit.Bundle{}
	for _, art := range artifacts {
		err = rendered.Render(art.name, art.render)
		if err != nil {
			err = &ErrArtifact{Name: art.name, Err: err}
			return
		}
	}

	bundle = rendered
	return
}

// NewProvider chains the named semantics providers: PROVIDER_BUILTIN,
// PROVIDER_TRACE, or the path of a Starlark script.
func (comp *Compiler) NewProvider(names []string) (provider semantics.Chain, err error) {
	for _, name := range names {
		switch {
		case name == PROVIDER_BUILTIN:
			provider = append(provider, semantics.Builtin())
		case name == PROVIDER_TRACE:
			provider = append(provider, semantics.TraceOnly{})
		case strings.HasSuffix(name, SCRIPT_SUFFIX):
			var script *semantics.Script
			script, err = semantics.NewScript(name, nil)
			if err != nil {
				provider = nil
				return
			}
			if comp.Verbose {
				log.Printf("%v: %d mnemonics", name, script.Mnemonics())
			}
			provider = append(provider, script)
		default:
			err = ErrProviderName(name)
			provider = nil
			return
		}
	}

	return
}
