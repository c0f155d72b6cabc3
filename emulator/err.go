package emulator

import (
	"errors"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	ErrCheckResult = errors.New(f("check expression has no result"))
	ErrMemoryRange = errors.New(f("memory address out of range"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrCheckExpression is a check expression that failed to evaluate.
type ErrCheckExpression struct {
	Expr string
	Err  error
}

func (err *ErrCheckExpression) Error() string {
	return f("check '%v': %v", err.Expr, err.Err)
}

func (err *ErrCheckExpression) Unwrap() error {
	return err.Err
}
