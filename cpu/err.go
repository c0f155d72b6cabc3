package cpu

import (
	"errors"

	"github.com/ezrec/asm16/isa"
	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("cpu halted"))
	ErrTickLimit       = errors.New(f("tick limit exceeded"))
	ErrRegisterInvalid = errors.New(f("register invalid"))

	// Image errors
	ErrImageOdd  = errors.New(f("image has an odd number of bytes"))
	ErrImageSize = errors.New(f("image does not fit in memory"))
)

// ErrOpcode is an instruction word the CPU cannot execute.
type ErrOpcode isa.Word

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), isa.Word(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
