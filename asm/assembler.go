// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	"github.com/ezrec/asm16/isa"
)

// Context is the state carried from the first pass to the second.
type Context struct {
	Addr     uint16            // Current location counter, in words.
	Symbol   map[string]uint16 // Label addresses.
	LineAddr []uint16          // Address of each parsed line, by index.
}

// Assembler is a two pass assembler for the 16-bit toy CPU.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	// Initial location counter. Zero selects isa.DEFAULT_ORIGIN, so code
	// for word address 0 starts with '.org 0'.
	Origin uint16
}

// Assemble translates source text into a little-endian byte image using a
// default Assembler.
func Assemble(source string) (bytes []byte, err error) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	bytes = prog.Bytes()
	return
}

func (asm *Assembler) origin() uint16 {
	if asm.Origin == 0 {
		return isa.DEFAULT_ORIGIN
	}
	return asm.Origin
}

// Parse reads assembly source and assembles it into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, math.MaxInt)

	var lines []Line
	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if len(strings.TrimSpace(text)) == 0 {
			continue
		}

		if asm.Verbose {
			log.Printf("asm: %v: %v\n", lineno, text)
		}

		var tokens []Token
		tokens, err = Lex(text, lineno)
		if err != nil {
			err = &ErrLine{LineNo: lineno, Line: text, Err: err}
			return
		}

		var line Line
		line, err = ParseTokens(tokens, lineno)
		if err != nil {
			err = &ErrLine{LineNo: lineno, Line: text, Err: err}
			return
		}
		line.Text = text

		lines = append(lines, line)
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrLine{LineNo: lineno + 1, Err: fmt.Errorf("%w: %w", ErrRead, err)}
		return
	}

	ctx, err := asm.pass1(lines)
	if err != nil {
		return
	}

	prog, err = asm.pass2(ctx, lines)
	if err != nil {
		prog = nil
		return
	}

	return
}

// Size returns the number of words a line occupies. Unknown instructions
// and directives occupy nothing; they are rejected when encoded.
func Size(line *Line) (words int) {
	switch line.Kind {
	case LINE_DIRECTIVE:
		if line.Directive() == ".word" {
			words = 1
		}
	case LINE_INSTRUCTION:
		op, ok := isa.Lookup(line.Op)
		if !ok {
			return
		}
		words = 1
		switch op {
		case isa.OP_ADD:
			if len(line.Operands) >= 2 && line.Operands[1].Kind == OPERAND_IMMEDIATE {
				words++
			}
		case isa.OP_JMP, isa.OP_JZ:
			words++
		}
	}

	return
}

// pass1 assigns an address to every line and collects the label table.
func (asm *Assembler) pass1(lines []Line) (ctx *Context, err error) {
	ctx = &Context{
		Addr:     asm.origin(),
		Symbol:   make(map[string]uint16),
		LineAddr: make([]uint16, len(lines)),
	}

	for n := range lines {
		line := &lines[n]
		ctx.LineAddr[n] = ctx.Addr

		if len(line.Label) != 0 {
			_, ok := ctx.Symbol[line.Label]
			if ok {
				err = &ErrLine{LineNo: line.LineNo, Line: line.Text, Err: ErrLabelDuplicate(line.Label)}
				return
			}
			ctx.Symbol[line.Label] = ctx.Addr
			if asm.Verbose {
				log.Printf("asm: %v = %#04x\n", line.Label, ctx.Addr)
			}
		}

		if line.Kind == LINE_DIRECTIVE && line.Directive() == ".org" {
			if len(line.Operands) != 1 || line.Operands[0].Kind != OPERAND_NUMBER {
				err = &ErrLine{LineNo: line.LineNo, Line: line.Text, Err: ErrOrgSyntax}
				return
			}
			var addr uint16
			addr, err = ParseNumber(line.Operands[0].Text)
			if err != nil {
				err = &ErrLine{LineNo: line.LineNo, Line: line.Text, Err: err}
				return
			}
			ctx.Addr = addr
			continue
		}

		ctx.Addr += uint16(Size(line))
	}

	return
}

// pass2 encodes every line at the address pass1 assigned to it.
func (asm *Assembler) pass2(ctx *Context, lines []Line) (prog *Program, err error) {
	prog = &Program{
		Origin: asm.origin(),
		Symbol: ctx.Symbol,
	}

	for n := range lines {
		line := &lines[n]
		addr := ctx.LineAddr[n]

		var words []uint16
		words, err = asm.encode(ctx, line, addr)
		if err == nil && len(words) != Size(line) {
			err = ErrSizeMismatch
		}
		if err != nil {
			err = &ErrLine{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}

		if len(words) == 0 {
			continue
		}

		if asm.Verbose {
			log.Printf("asm: %#04x: %04x\n", addr, words)
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo: line.LineNo,
			Addr:   addr,
			Text:   line.Text,
			Words:  words,
		})
	}

	return
}

// encode produces the words for a single line.
func (asm *Assembler) encode(ctx *Context, line *Line, addr uint16) (words []uint16, err error) {
	switch line.Kind {
	case LINE_EMPTY:
		return
	case LINE_DIRECTIVE:
		return asm.encodeDirective(ctx, line)
	}

	op, ok := isa.Lookup(line.Op)
	if !ok {
		err = ErrInstructionInvalid(line.Op)
		return
	}

	operands := line.Operands
	countIs := func(want int) bool {
		if len(operands) != want {
			err = ErrOperandCount{Op: op.String(), Want: want, Got: len(operands)}
			return false
		}
		return true
	}

	switch op {
	case isa.OP_NOP, isa.OP_HALT:
		if !countIs(0) {
			return
		}
		words = []uint16{uint16(isa.MakeWord(op, isa.MODE_REG, isa.R0, isa.R0))}
	case isa.OP_ADD:
		if !countIs(2) {
			return
		}
		if operands[0].Kind != OPERAND_REGISTER {
			err = ErrAddTarget
			return
		}
		var rd, rs isa.Register
		rd, err = operands[0].Register()
		if err != nil {
			return
		}
		switch operands[1].Kind {
		case OPERAND_REGISTER:
			rs, err = operands[1].Register()
			if err != nil {
				return
			}
			words = []uint16{uint16(isa.MakeWord(op, isa.MODE_REG, rd, rs))}
		case OPERAND_IMMEDIATE:
			var imm uint16
			imm, err = operands[1].Value(ctx.Symbol)
			if err != nil {
				return
			}
			words = []uint16{uint16(isa.MakeWord(op, isa.MODE_IMM, rd, isa.R0)), imm}
		default:
			err = ErrAddSource
		}
	case isa.OP_JMP, isa.OP_JZ:
		if !countIs(1) {
			return
		}
		if operands[0].Kind != OPERAND_LABEL && operands[0].Kind != OPERAND_NUMBER {
			err = ErrJumpTarget
			return
		}
		var target uint16
		target, err = operands[0].Value(ctx.Symbol)
		if err != nil {
			return
		}
		// Relative to the word after the offset. Wraps modulo 2^16.
		offset := target - (addr + 2)
		words = []uint16{uint16(isa.MakeWord(op, isa.MODE_REL, isa.R0, isa.R0)), offset}
	default:
		err = ErrInstructionInvalid(line.Op)
	}

	return
}

func (asm *Assembler) encodeDirective(ctx *Context, line *Line) (words []uint16, err error) {
	switch line.Directive() {
	case ".org":
		// Applied by pass1.
	case ".word":
		if len(line.Operands) != 1 {
			err = ErrWordOperand
			return
		}
		opr := line.Operands[0]
		if opr.Kind != OPERAND_NUMBER && opr.Kind != OPERAND_LABEL {
			err = ErrWordOperand
			return
		}
		var value uint16
		value, err = opr.Value(ctx.Symbol)
		if err != nil {
			return
		}
		words = []uint16{value}
	default:
		err = ErrDirectiveInvalid(line.Op)
	}

	return
}
