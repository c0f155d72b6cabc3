package asm

import (
	"errors"
	"fmt"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	// Error categories. Every assembly error matches exactly one of
	// these with errors.Is().
	ErrLexical  = errors.New(f("lexical error"))
	ErrSyntax   = errors.New(f("syntax error"))
	ErrSymbol   = errors.New(f("symbol error"))
	ErrEncoding = errors.New(f("encoding error"))

	// Lexical errors
	ErrRead = fmt.Errorf("%w: %v", ErrLexical, f("source unreadable"))

	// Syntax errors
	ErrOpMissing  = fmt.Errorf("%w: %v", ErrSyntax, f("instruction or directive expected"))
	ErrHashNumber = fmt.Errorf("%w: %v", ErrSyntax, f("number expected after '#'"))
	ErrOrgSyntax  = fmt.Errorf("%w: %v", ErrSyntax, f(".org expects one numeric operand"))

	// Encoding errors
	ErrWordOperand  = fmt.Errorf("%w: %v", ErrEncoding, f(".word expects a number or label"))
	ErrAddTarget    = fmt.Errorf("%w: %v", ErrEncoding, f("ADD target must be a register"))
	ErrAddSource    = fmt.Errorf("%w: %v", ErrEncoding, f("ADD source must be a register or immediate"))
	ErrJumpTarget   = fmt.Errorf("%w: %v", ErrEncoding, f("jump target must be a label or number"))
	ErrRegister     = fmt.Errorf("%w: %v", ErrEncoding, f("register expected"))
	ErrSizeMismatch = fmt.Errorf("%w: %v", ErrEncoding, f("encoded size disagrees with address assignment"))
)

// ErrCharacter is an unrecognized character in the source text.
type ErrCharacter struct {
	Char   rune
	Column int
}

func (err ErrCharacter) Error() string {
	return f("unexpected character %q at column %d", err.Char, err.Column)
}

func (err ErrCharacter) Is(target error) bool {
	return target == ErrLexical
}

// ErrOperand is a token that cannot start an operand.
type ErrOperand string

func (err ErrOperand) Error() string {
	return f("unsupported operand syntax '%v'", string(err))
}

func (err ErrOperand) Is(target error) bool {
	return target == ErrSyntax
}

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label %v duplicated", string(err))
}

func (err ErrLabelDuplicate) Is(target error) bool {
	return target == ErrSymbol
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

func (err ErrLabelMissing) Is(target error) bool {
	return target == ErrSymbol
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrEncoding
}

type ErrNumberRange string

func (err ErrNumberRange) Error() string {
	return f("'%v' is out of range for a 16-bit value", string(err))
}

func (err ErrNumberRange) Is(target error) bool {
	return target == ErrEncoding
}

type ErrInstructionInvalid string

func (err ErrInstructionInvalid) Error() string {
	return f("unsupported instruction %v", string(err))
}

func (err ErrInstructionInvalid) Is(target error) bool {
	return target == ErrEncoding
}

type ErrDirectiveInvalid string

func (err ErrDirectiveInvalid) Error() string {
	return f("unsupported directive %v", string(err))
}

func (err ErrDirectiveInvalid) Is(target error) bool {
	return target == ErrEncoding
}

// ErrOperandCount is a mnemonic or directive given the wrong number of
// operands.
type ErrOperandCount struct {
	Op   string
	Want int
	Got  int
}

func (err ErrOperandCount) Error() string {
	return f("%v expects %v operand(s), got %v", err.Op, err.Want, err.Got)
}

func (err ErrOperandCount) Is(target error) bool {
	return target == ErrEncoding
}

// ErrLine locates an assembly error in the source.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
