package semantics

import (
	"errors"

	"github.com/ezrec/isagen/isa"
	"github.com/ezrec/isagen/translate"
)

var f = translate.From

var (
	ErrUnhandledInstruction = errors.New(f("unhandled instruction"))
	ErrOperand              = errors.New(f("operand not accessible in this mode"))
	ErrScript               = errors.New(f("semantics script invalid"))
)

// ErrInstruction indicates the instruction that could not be rendered.
type ErrInstruction struct {
	Arch     isa.Arch
	Mnemonic string
	Mode     isa.Mode
	Err      error
}

func (err *ErrInstruction) Error() string {
	return f("%v: %v %v: %v", err.Arch, err.Mnemonic, err.Mode, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

// ErrScriptValue indicates a script value of the wrong type.
type ErrScriptValue string

func (err ErrScriptValue) Error() string {
	return f("unexpected script value %v", string(err))
}

func (err ErrScriptValue) Unwrap() error {
	return ErrScript
}
