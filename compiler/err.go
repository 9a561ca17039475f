package compiler

import (
	"errors"

	"github.com/ezrec/isagen/translate"
)

var f = translate.From

var (
	ErrProvider = errors.New(f("unknown semantics provider"))
)

// ErrArtifact indicates the artifact that failed to render.
type ErrArtifact struct {
	Name string
	Err  error
}

func (err *ErrArtifact) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrArtifact) Unwrap() error {
	return err.Err
}

// ErrProviderName indicates a semantics provider that is neither builtin
// nor a script.
type ErrProviderName string

func (err ErrProviderName) Error() string {
	return f("'%v' is not a semantics provider", string(err))
}

func (err ErrProviderName) Unwrap() error {
	return ErrProvider
}
