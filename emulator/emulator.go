// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"github.com/ezrec/asm16/asm"
	"github.com/ezrec/asm16/cpu"
	"github.com/ezrec/asm16/isa"
)

// Emulator state. CPU + the program it runs.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &asm.Program{Origin: isa.DEFAULT_ORIGIN},
	}

	return
}

// Reset the CPU and place every word of the program at its assembled
// address. Execution starts at the first emitted word.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()
	for addr, word := range emu.Program.Codes() {
		emu.Cpu.Store(addr, word)
	}
	emu.Cpu.Pc = emu.Program.Entry()

	return
}

// LoadImage resets the CPU and loads a raw little-endian image at origin.
// The program listing is cleared, so LineNo reports 0.
func (emu *Emulator) LoadImage(data []byte, origin uint16) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Program = &asm.Program{Origin: origin}
	emu.Cpu.Reset()

	err = emu.Cpu.Load(data, origin)
	return
}

// LineNo returns the current line number for the executing opcode, or 0 if
// the PC is not within the program.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted
	return
}

// Run ticks until the program halts. A positive limit bounds the number of
// ticks since reset.
func (emu *Emulator) Run(limit int) (err error) {
	for {
		if limit > 0 && emu.Cpu.Ticks >= limit && !emu.Cpu.Halted {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: cpu.ErrTickLimit}
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
