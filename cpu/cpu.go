// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/asm16/isa"
)

// MEMORY_SIZE is the number of words of memory.
const MEMORY_SIZE = 0x10000

// Cpu is the simulation context for the toy CPU.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       uint16                     // Program counter, in words.
	Register [isa.REGISTER_COUNT]uint16 // Register bank.
	Zero     bool                       // Set when the last ADD produced zero.
	Halted   bool                       // Set by HALT.
	Ticks    int                        // CPU ticks counter.
	Memory   [MEMORY_SIZE]uint16        // Word addressed memory.
}

// NewCpu creates a new CPU in the reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"zero",
		"halt",
		"r0", "r1", "r2", "r3",
		"ticks",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.Pc)
		case "zero":
			strval = fmt.Sprintf("%v", cpu.Zero)
		case "halt":
			strval = fmt.Sprintf("%v", cpu.Halted)
		case "r0", "r1", "r2", "r3":
			strval = fmt.Sprintf("%04X", cpu.Register[byte(reg[1]-'0')])
		case "ticks":
			strval = fmt.Sprintf("%v", cpu.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears the registers, flags and memory.
// - Zeros the tick counter.
// - Sets the PC to isa.DEFAULT_ORIGIN.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Zero = false
	cpu.Halted = false
	cpu.Ticks = 0
	cpu.Pc = isa.DEFAULT_ORIGIN
}

// Load copies a little-endian image into memory at a word address and
// points the PC at it.
func (cpu *Cpu) Load(data []byte, origin uint16) (err error) {
	if len(data)%2 != 0 {
		err = ErrImageOdd
		return
	}

	if int(origin)+len(data)/2 > MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	for n := 0; n < len(data); n += 2 {
		cpu.Memory[int(origin)+n/2] = uint16(data[n]) | uint16(data[n+1])<<8
	}

	cpu.Pc = origin

	if cpu.Verbose {
		log.Printf("cpu: loaded %v words at %04x", len(data)/2, origin)
	}

	return
}

// Store writes a single word of memory.
func (cpu *Cpu) Store(addr uint16, word uint16) {
	cpu.Memory[addr] = word
}

// fetch reads the word at the PC and advances it.
func (cpu *Cpu) fetch() (word uint16) {
	word = cpu.Memory[cpu.Pc]
	cpu.Pc++
	return
}

// FetchCode fetches the next instruction word.
func (cpu *Cpu) FetchCode() (code isa.Word, err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	code = isa.Word(cpu.fetch())
	return
}

// Tick executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	pc := cpu.Pc

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %04x: %v", pc, code)
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Execute executes a fetched instruction word. Immediates and offsets are
// read from the words following it.
func (cpu *Cpu) Execute(code isa.Word) (err error) {
	switch code.Opcode() {
	case isa.OP_NOP:
	case isa.OP_HALT:
		cpu.Halted = true
	case isa.OP_ADD:
		rd := code.Rd()
		if !rd.Valid() {
			err = errors.Join(ErrOpcode(code), ErrRegisterInvalid)
			return
		}
		var value uint16
		switch code.Mode() {
		case isa.MODE_REG:
			rs := code.Rs()
			if !rs.Valid() {
				err = errors.Join(ErrOpcode(code), ErrRegisterInvalid)
				return
			}
			value = cpu.Register[rs]
		case isa.MODE_IMM:
			value = cpu.fetch()
		default:
			err = ErrOpcode(code)
			return
		}
		cpu.Register[rd] += value
		cpu.Zero = cpu.Register[rd] == 0
	case isa.OP_JMP, isa.OP_JZ:
		if code.Mode() != isa.MODE_REL {
			err = ErrOpcode(code)
			return
		}
		offset := cpu.fetch()
		if code.Opcode() == isa.OP_JMP || cpu.Zero {
			cpu.Pc += offset
		}
	default:
		err = ErrOpcode(code)
	}

	return
}

// Run ticks the CPU until it halts. A positive limit bounds the total
// number of ticks since reset.
func (cpu *Cpu) Run(limit int) (err error) {
	for !cpu.Halted {
		if limit > 0 && cpu.Ticks >= limit {
			err = ErrTickLimit
			return
		}
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// GetRegister returns the value of a general purpose register.
func (cpu *Cpu) GetRegister(index int) (value uint16, err error) {
	if !isa.Register(index).Valid() {
		err = ErrRegisterInvalid
		return
	}

	value = cpu.Register[index]
	return
}
