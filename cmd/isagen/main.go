// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command isagen compiles the 6800 and 6809 instruction description into
// the lexer rules, symbol and pattern tables and emulation dispatch of the
// assembler and emulator.
package main

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ezrec/isagen/compiler"
	"github.com/ezrec/isagen/config"
	"github.com/ezrec/isagen/data"
	"github.com/ezrec/isagen/emit"
)

var (
	version = "0.1.0"
	commit  = ""
	date    = ""
)

// outputFlag is the output directory. Only the first one given is used.
type outputFlag struct {
	value string
	set   bool
}

var _ pflag.Value = (*outputFlag)(nil)

func (flag *outputFlag) String() string {
	return flag.value
}

func (flag *outputFlag) Set(value string) error {
	if flag.set {
		log.Printf("multiple output directories specified, ignoring '%v'", value)
		return nil
	}
	flag.value = value
	flag.set = true
	return nil
}

func (flag *outputFlag) Type() string {
	return "dir"
}

type optionFlags struct {
	config    string
	output    outputFlag
	emulation bool
	manifest  bool
	strict    bool
	builtin   bool
	dump      bool
	verbose   bool
	semantics []string
}

// settings merges the configuration file and the flags set on the command line.
func (options *optionFlags) settings(cmd *cobra.Command, args []string) (cfg config.Config, err error) {
	cfg = config.Default()
	if options.config != "" {
		cfg, err = config.Load(options.config)
		if err != nil {
			return
		}
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = options.output.value
	}
	if flags.Changed("emulation") {
		cfg.Emulation = options.emulation
	}
	if flags.Changed("manifest") {
		cfg.Manifest = options.manifest
	}
	if flags.Changed("strict") {
		cfg.Strict = options.strict
	}
	if flags.Changed("verbose") {
		cfg.Verbose = options.verbose
	}
	if flags.Changed("semantics") {
		cfg.Semantics = options.semantics
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	return
}

func run(cmd *cobra.Command, args []string, options *optionFlags) (err error) {
	cfg, err := options.settings(cmd, args)
	if err != nil {
		return
	}

	name := cfg.Input
	var input io.Reader
	if options.builtin {
		name = data.NAME
		input = bytes.NewReader(data.Description)
	} else {
		var inf *os.File
		inf, err = os.Open(name)
		if err != nil {
			return
		}
		defer inf.Close()
		input = inf
	}

	if cfg.Verbose {
		log.Printf("%v: compiling into %v", name, cfg.Output)
	}

	comp := &compiler.Compiler{Verbose: cfg.Verbose, Strict: cfg.Strict}
	result, err := comp.Compile(input)
	if err != nil {
		err = &ErrInput{Name: name, Err: err}
		return
	}

	if options.dump {
		dumper := spew.ConfigState{Indent: "\t", SortKeys: true, DisablePointerAddresses: true}
		dumper.Fdump(cmd.ErrOrStderr(), result.Catalog)
	}

	provider, err := comp.NewProvider(cfg.Semantics)
	if err != nil {
		return
	}

	opts := compiler.Options{
		Emulation: cfg.Emulation,
		Manifest:  cfg.Manifest,
	}
	if len(provider) > 0 {
		opts.Semantics = provider
	}

	bundle, err := result.Render(opts)
	if err != nil {
		err = &ErrInput{Name: name, Err: err}
		return
	}

	out, err := emit.OutputFS(cfg.Output)
	if err != nil {
		return
	}

	err = bundle.Marshal(out)
	return
}

// newCommand returns the isagen command.
func newCommand() *cobra.Command {
	options := &optionFlags{output: outputFlag{value: "."}}

	cmd := &cobra.Command{
		Use:           "isagen [flags] [spec-file]",
		Short:         "6800/6809 instruction table generator",
		Version:       buildinfo.Version(version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &ErrCommandLine{Err: ErrArguments(args[1:])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, options)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ErrCommandLine{Err: err}
	})

	flags := cmd.Flags()
	flags.VarP(&options.output, "output", "o", "Output directory")
	flags.BoolVarP(&options.emulation, "emulation", "e", false, "Emit the emulation dispatch (emu.h)")
	flags.BoolVar(&options.manifest, "manifest", false, "Emit the YAML manifest and opcode listing")
	flags.StringSliceVar(&options.semantics, "semantics", nil, "Semantics providers: builtin, trace, or a .star script")
	flags.BoolVar(&options.strict, "strict", false, "Duplicate mnemonics are errors")
	flags.BoolVar(&options.builtin, "builtin", false, "Compile the bundled 6800/6809 description")
	flags.StringVar(&options.config, "config", "", "TOML configuration file")
	flags.BoolVar(&options.dump, "dump", false, "Dump the instruction catalog to stderr")
	flags.BoolVarP(&options.verbose, "verbose", "v", false, "Verbose mode")

	return cmd
}

func main() {
	err := newCommand().Execute()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
