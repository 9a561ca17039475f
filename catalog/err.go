package catalog

import (
	"github.com/ezrec/isagen/isa"
	"github.com/ezrec/isagen/translate"
)

var f = translate.From

// ErrDeclaration indicates the declaration that could not be catalogued.
type ErrDeclaration struct {
	Arch        isa.Arch
	Declaration isa.Declaration
	Err         error
}

func (err *ErrDeclaration) Error() string {
	return f("%v: line %d '%v' %v", err.Arch, err.Declaration.LineNo, err.Declaration.Mnemonic, err.Err)
}

func (err *ErrDeclaration) Unwrap() error {
	return err.Err
}
