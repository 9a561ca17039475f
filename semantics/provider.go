// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package semantics renders the C body of each decoded instruction in the
// emulation dispatch.
package semantics

import (
	"errors"

	"github.com/ezrec/isagen/isa"
)

// Instruction is a decoded instruction in a dispatch arm.
type Instruction struct {
	Arch     isa.Arch
	Mnemonic string
	Mode     isa.Mode
	Access   Access
}

// NewInstruction returns the instruction with its operand access.
func NewInstruction(arch isa.Arch, mnemonic string, mode isa.Mode) Instruction {
	return Instruction{
		Arch:     arch,
		Mnemonic: mnemonic,
		Mode:     mode,
		Access:   AccessFor(arch, mnemonic, mode),
	}
}

// Provider renders the body of an instruction.
type Provider interface {
	// Render returns the C statements of an instruction, one per line,
	// or ErrUnhandledInstruction.
	Render(ins Instruction) ([]string, error)
}

// Handler renders the body of the instructions of a mnemonic.
type Handler func(ins Instruction) ([]string, error)

// Table is a Provider dispatching on the mnemonic.
type Table map[string]Handler

var _ Provider = Table(nil)

func (table Table) add(handler Handler, mnemonics ...string) {
	for _, mnemonic := range mnemonics {
		table[mnemonic] = handler
	}
}

// Render implements Provider.
func (table Table) Render(ins Instruction) (lines []string, err error) {
	handler, ok := table[ins.Mnemonic]
	if !ok {
		err = ErrUnhandledInstruction
	} else {
		lines, err = handler(ins)
	}

	if err != nil {
		err = &ErrInstruction{Arch: ins.Arch, Mnemonic: ins.Mnemonic, Mode: ins.Mode, Err: err}
	}

	return
}

// TraceOnly renders empty bodies, leaving only the operand fetch and trace.
type TraceOnly struct{}

var _ Provider = TraceOnly{}

// Render implements Provider.
func (TraceOnly) Render(ins Instruction) ([]string, error) {
	return nil, nil
}

// Chain is a Provider asking each of its providers in turn, until one
// handles the instruction.
type Chain []Provider

var _ Provider = Chain(nil)

// Render implements Provider.
func (chain Chain) Render(ins Instruction) (lines []string, err error) {
	for _, provider := range chain {
		lines, err = provider.Render(ins)
		if !errors.Is(err, ErrUnhandledInstruction) {
			return
		}
	}

	if err == nil {
		err = &ErrInstruction{Arch: ins.Arch, Mnemonic: ins.Mnemonic, Mode: ins.Mode, Err: ErrUnhandledInstruction}
	}

	return
}
