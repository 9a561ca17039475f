package isa

import (
	"errors"

	"github.com/ezrec/isagen/translate"
)

var f = translate.From

var (
	// Description errors
	ErrMalformedLine     = errors.New(f("malformed line"))
	ErrUnknownKind       = errors.New(f("unknown kind"))
	ErrDuplicateMnemonic = errors.New(f("mnemonic duplicated"))
)

// ErrSyntax indicates the line of the description that failed to parse.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrBase indicates a base opcode that is not a 16-bit hexadecimal value.
type ErrBase string

func (err ErrBase) Error() string {
	return f("'%v' is not a hexadecimal opcode", string(err))
}

func (err ErrBase) Unwrap() error {
	return ErrMalformedLine
}

// ErrOverflow indicates a derived opcode beyond 0xffff.
type ErrOverflow struct {
	Base  uint16
	Delta int
}

func (err *ErrOverflow) Error() string {
	return f("opcode %#x+%#x exceeds 0xffff", err.Base, err.Delta)
}

func (err *ErrOverflow) Unwrap() error {
	return ErrMalformedLine
}

// ErrKind indicates an unrecognised kind spelling.
type ErrKind string

func (err ErrKind) Error() string {
	return f("'%v' is not a kind", string(err))
}

func (err ErrKind) Unwrap() error {
	return ErrUnknownKind
}
