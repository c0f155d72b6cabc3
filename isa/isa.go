// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package isa describes the instruction set of the 16-bit toy CPU: the
// opcode table, the addressing modes, the register file and the layout of
// an instruction word.
//
// An instruction word is packed MSB first as:
//
//	15..11  opcode
//	10..8   mode
//	 7..5   destination register (rd)
//	 4..2   source register (rs)
//	 1..0   zero
//
// Immediates and jump offsets follow the instruction word as whole words.
package isa

import (
	"fmt"
	"strings"
)

// DEFAULT_ORIGIN is the word address code is assembled for and loaded at.
const DEFAULT_ORIGIN = uint16(0x8000)

// Bit field positions and widths of an instruction word.
const (
	OPCODE_SHIFT = 11
	OPCODE_MASK  = 0x1f
	MODE_SHIFT   = 8
	MODE_MASK    = 0x7
	RD_SHIFT     = 5
	RS_SHIFT     = 2
	REG_MASK     = 0x7
)

// Opcode is an operation code.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP  = Opcode(0)  // NOP
	OP_HALT = Opcode(1)  // HALT
	OP_ADD  = Opcode(5)  // ADD
	OP_JMP  = Opcode(13) // JMP
	OP_JZ   = Opcode(14) // JZ
)

// Mode is an operand addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_REG = Mode(0) // reg
	MODE_IMM = Mode(1) // imm
	MODE_REL = Mode(5) // rel
)

// Register is a general purpose register index.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	R0 = Register(0) // R0
	R1 = Register(1) // R1
	R2 = Register(2) // R2
	R3 = Register(3) // R3
)

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 4

// opcodeMap maps upper case mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"NOP":  OP_NOP,
	"HALT": OP_HALT,
	"ADD":  OP_ADD,
	"JMP":  OP_JMP,
	"JZ":   OP_JZ,
}

// registerMap maps upper case register names to registers.
var registerMap = map[string]Register{
	"R0": R0,
	"R1": R1,
	"R2": R2,
	"R3": R3,
}

// Lookup returns the opcode for a mnemonic, ignoring case.
func Lookup(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[strings.ToUpper(mnemonic)]
	return
}

// RegisterByName returns the register for a name, ignoring case.
func RegisterByName(name string) (reg Register, ok bool) {
	reg, ok = registerMap[strings.ToUpper(name)]
	return
}

// Valid returns true if the register exists in the register file.
func (reg Register) Valid() bool {
	return reg >= 0 && reg < REGISTER_COUNT
}

// Word is a single instruction word.
type Word uint16

// MakeWord packs an instruction word. Each field is masked to its width.
func MakeWord(op Opcode, mode Mode, rd, rs Register) Word {
	return Word((uint16(op)&OPCODE_MASK)<<OPCODE_SHIFT |
		(uint16(mode)&MODE_MASK)<<MODE_SHIFT |
		(uint16(rd)&REG_MASK)<<RD_SHIFT |
		(uint16(rs)&REG_MASK)<<RS_SHIFT)
}

// Opcode returns the operation code field.
func (w Word) Opcode() Opcode {
	return Opcode((uint16(w) >> OPCODE_SHIFT) & OPCODE_MASK)
}

// Mode returns the addressing mode field.
func (w Word) Mode() Mode {
	return Mode((uint16(w) >> MODE_SHIFT) & MODE_MASK)
}

// Rd returns the destination register field.
func (w Word) Rd() Register {
	return Register((uint16(w) >> RD_SHIFT) & REG_MASK)
}

// Rs returns the source register field.
func (w Word) Rs() Register {
	return Register((uint16(w) >> RS_SHIFT) & REG_MASK)
}

// String returns a short decoded form, such as "ADD.imm.R0.R0".
func (w Word) String() string {
	return fmt.Sprintf("%v.%v.%v.%v", w.Opcode(), w.Mode(), w.Rd(), w.Rs())
}
