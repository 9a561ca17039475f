package decode

import (
	"errors"

	"github.com/ezrec/isagen/isa"
	"github.com/ezrec/isagen/translate"
)

var f = translate.From

var (
	ErrPrefixConflict = errors.New(f("prefix conflict"))
)

// ErrConflict indicates the binding that could not be placed in the matrix.
type ErrConflict struct {
	Mnemonic string
	Mode     isa.Mode
	Opcode   uint16
	Err      error
}

func (err *ErrConflict) Error() string {
	return f("%v %v %#x: %v", err.Mnemonic, err.Mode, err.Opcode, err.Err)
}

func (err *ErrConflict) Unwrap() error {
	return err.Err
}
