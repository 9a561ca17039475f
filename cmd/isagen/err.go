package main

import (
	"errors"

	"github.com/ezrec/isagen/translate"
)

var f = translate.From

var (
	ErrUsage = errors.New(f("usage"))
)

// ErrArguments lists unexpected positional arguments.
type ErrArguments []string

func (err ErrArguments) Error() string {
	return f("unexpected arguments %v", []string(err))
}

// ErrCommandLine is an invalid command line.
type ErrCommandLine struct {
	Err error
}

func (err *ErrCommandLine) Error() string {
	return f("%v: %v", ErrUsage, err.Err)
}

func (err *ErrCommandLine) Unwrap() []error {
	return []error{ErrUsage, err.Err}
}

// ErrInput indicates the description that failed to compile.
type ErrInput struct {
	Name string
	Err  error
}

func (err *ErrInput) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrInput) Unwrap() error {
	return err.Err
}
