package main

import (
	"errors"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	ErrCommandMissing = errors.New(f("command missing"))
	ErrArguments      = errors.New(f("wrong number of arguments"))
)

// ErrCommand is an unknown or ambiguous subcommand name.
type ErrCommand struct {
	Name string
	Err  error
}

func (err *ErrCommand) Error() string {
	return f("command '%v': %v", err.Name, err.Err)
}

func (err *ErrCommand) Unwrap() error {
	return err.Err
}

// ErrExpect is a run whose final state failed its -expect check.
type ErrExpect string

func (err ErrExpect) Error() string {
	return f("expectation failed: %v", string(err))
}

// ErrOrigin is a load address outside the 16-bit word address space.
type ErrOrigin uint

func (err ErrOrigin) Error() string {
	return f("origin 0x%x is outside 0x0-0xffff", uint(err))
}
