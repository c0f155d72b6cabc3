package asm

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asm16/isa"
)

func assemble(t *testing.T, program ...string) *Program {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal(isa.DEFAULT_ORIGIN, prog.Origin)
	assert.Equal([]byte{}, prog.Bytes())
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	data, err := Assemble("ADD R0, #10\nADD R0, #5\nNOP\nHALT\n")
	assert.NoError(err)
	assert.Equal([]byte{
		0x00, 0x29, 0x0a, 0x00,
		0x00, 0x29, 0x05, 0x00,
		0x00, 0x00,
		0x00, 0x08,
	}, data)
}

func TestAssemblerOpcodes(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"; counts down",
		"start:  ADD R1, #0xffff",
		"        add r2, r1",
		"",
		"        JZ start",
		"        halt",
	)

	expected := []Opcode{
		{2, 0x8000, "start:  ADD R1, #0xffff", []uint16{0x2920, 0xffff}},
		{3, 0x8002, "        add r2, r1", []uint16{0x2844}},
		{5, 0x8003, "        JZ start", []uint16{0x7500, 0xfffb}},
		{6, 0x8005, "        halt", []uint16{0x0800}},
	}

	assert.Equal(expected, prog.Opcodes)
	assert.Equal(map[string]uint16{"start": 0x8000}, prog.Symbol)
}

func TestAssemblerImmediate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		value uint16
	}){
		{"0", 0},
		{"0x0", 0},
		{"7", 7},
		{"0x7", 7},
		{"4660", 0x1234},
		{"0X1234", 0x1234},
		{"32768", 0x8000},
		{"65535", 0xffff},
		{"0xffff", 0xffff},
		{"0XFFFF", 0xffff},
	}

	for _, entry := range table {
		prog := assemble(t, "ADD R0, #"+entry.text)
		words := prog.Words()
		if !assert.Equal(2, len(words), entry.text) {
			continue
		}

		word := isa.Word(words[0])
		assert.Equal(isa.OP_ADD, word.Opcode(), entry.text)
		assert.Equal(isa.MODE_IMM, word.Mode(), entry.text)
		assert.Equal(isa.R0, word.Rd(), entry.text)
		assert.Equal(entry.value, words[1], entry.text)
	}

	for n := 0; n <= 0xffff; n += 0xff {
		prog := assemble(t, fmt.Sprintf("ADD R2, #%d", n))
		words := prog.Words()
		assert.Equal([]uint16{0x2940, uint16(n)}, words, n)
	}
}

func TestAssemblerByteLength(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"NOP",
		"ADD R0, R1\nADD R2, #3",
		"a: JMP a\nJZ a\n.word a",
		".org 0x10\nNOP\n.org 0x0\nHALT",
	}

	for _, source := range table {
		prog := assemble(t, source)
		assert.Equal(2*len(prog.Words()), len(prog.Bytes()), source)
	}
}

func TestAssemblerJumps(t *testing.T) {
	assert := assert.New(t)

	// Self loop
	prog := assemble(t, "loop: JZ loop")
	assert.Equal([]uint16{0x7500, 0xfffe}, prog.Words())
	assert.Equal([]byte{0x00, 0x75, 0xfe, 0xff}, prog.Bytes())

	// Forward
	prog = assemble(t, "JMP end", "NOP", "end: HALT")
	assert.Equal([]uint16{0x6d00, 0x0001, 0x0000, 0x0800}, prog.Words())

	// Backward
	prog = assemble(t, "start: NOP", "JMP start")
	assert.Equal([]uint16{0x0000, 0x6d00, 0xfffd}, prog.Words())

	// Forward labels resolve as the literal address would.
	forward := assemble(t, "JMP end", "end: HALT")
	literal := assemble(t, "JMP 0x8002", "HALT")
	assert.Equal(literal.Words(), forward.Words())
	assert.Equal([]uint16{0x6d00, 0x0000, 0x0800}, forward.Words())

	// Offsets wrap modulo 2^16.
	prog = assemble(t, "JMP 0")
	assert.Equal([]uint16{0x6d00, 0x7ffe}, prog.Words())
}

func TestAssemblerOrg(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, ".org 0x9000", "here: .word here")
	assert.Equal(uint16(0x9000), prog.Symbol["here"])
	assert.Equal([]uint16{0x9000}, prog.Words())
	assert.Equal(uint16(0x9000), prog.Opcodes[0].Addr)

	// Words are concatenated with no gap filling.
	prog = assemble(t, ".org 0x10", "NOP", ".ORG 0x20", "HALT")
	assert.Equal([]byte{0x00, 0x00, 0x00, 0x08}, prog.Bytes())
	assert.Equal(uint16(0x10), prog.Opcodes[0].Addr)
	assert.Equal(uint16(0x20), prog.Opcodes[1].Addr)

	// A label on an .org line binds to the address before it.
	prog = assemble(t, "NOP", "before: .org 0x100", "after: NOP")
	assert.Equal(uint16(0x8001), prog.Symbol["before"])
	assert.Equal(uint16(0x100), prog.Symbol["after"])
}

func TestAssemblerOrigin(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Origin: 0x100}
	prog, err := asm.Parse(strings.NewReader("loop: JMP loop\n.word loop"))
	assert.NoError(err)
	assert.Equal(uint16(0x100), prog.Origin)
	assert.Equal(uint16(0x100), prog.Symbol["loop"])
	assert.Equal([]uint16{0x6d00, 0xfffe, 0x0100}, prog.Words())
}

func TestAssemblerOriginZero(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Origin: 0}
	prog, err := asm.Parse(strings.NewReader(".org 0\nzero: JMP zero"))
	assert.NoError(err)
	assert.Equal(isa.DEFAULT_ORIGIN, prog.Origin)
	assert.Equal(uint16(0), prog.Symbol["zero"])
	assert.Equal(uint16(0), prog.Entry())
	assert.Equal([]uint16{0x6d00, 0xfffe}, prog.Words())
}

func TestAssemblerLongLine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		words  []uint16
	}){
		{"NOP ; " + strings.Repeat("x", 70000) + "\nHALT\n", []uint16{0x0000, 0x0800}},
		{"NOP\n" + strings.Repeat(" ", 200000) + "HALT", []uint16{0x0000, 0x0800}},
		{"long: .word long" + strings.Repeat("\t", 100000) + "\nHALT", []uint16{0x8000, 0x0800}},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.source))
		if assert.NoError(err, len(entry.source)) {
			assert.Equal(entry.words, prog.Words(), len(entry.source))
		}
	}

	data, err := Assemble("NOP ; " + strings.Repeat("x", 70000) + "\nHALT\n")
	assert.NoError(err)
	assert.Equal([]byte{0x00, 0x00, 0x00, 0x08}, data)

	_, err = Assemble("NOP\nADD R0, " + strings.Repeat("$", 70000))
	var line *ErrLine
	if assert.True(errors.As(err, &line)) {
		assert.Equal(2, line.LineNo)
		assert.Equal(ErrCharacter{Char: '$', Column: 9}, line.Err)
	}
}

func TestAssemblerReadError(t *testing.T) {
	assert := assert.New(t)

	failure := errors.New("device gone")
	input := io.MultiReader(strings.NewReader("NOP\nHALT\n"), iotest.ErrReader(failure))

	asm := &Assembler{}
	prog, err := asm.Parse(input)
	assert.Nil(prog)
	assert.ErrorIs(err, failure)
	assert.ErrorIs(err, ErrRead)
	assert.ErrorIs(err, ErrLexical)
	assert.False(errors.Is(err, ErrSyntax))

	var line *ErrLine
	if assert.True(errors.As(err, &line)) {
		assert.Equal(3, line.LineNo)
	}
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"first:",
		"second: NOP",
		"Second: .word second",
		"third: .word Second",
	)
	assert.Equal(map[string]uint16{
		"first":  0x8000,
		"second": 0x8000,
		"Second": 0x8001,
		"third":  0x8002,
	}, prog.Symbol)
	assert.Equal([]uint16{0x0000, 0x8000, 0x8001}, prog.Words())
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	for range 2 {
		prog, err := asm.Parse(strings.NewReader("a: NOP\nJMP a"))
		assert.NoError(err)
		assert.Equal(map[string]uint16{"a": 0x8000}, prog.Symbol)
	}
}

func TestAssemblerError(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source   string
		lineno   int
		category error
		err      error
	}){
		{"ADD R0, $1", 1, ErrLexical, ErrCharacter{Char: '$', Column: 9}},
		{"NOP\n#5", 2, ErrSyntax, ErrOpMissing},
		{"ADD R0, #", 1, ErrSyntax, ErrHashNumber},
		{"ADD R0, [R1]", 1, ErrSyntax, ErrOperand("[")},
		{".org foo", 1, ErrSyntax, ErrOrgSyntax},
		{".org", 1, ErrSyntax, ErrOrgSyntax},
		{".org 1, 2", 1, ErrSyntax, ErrOrgSyntax},
		{".org 0x10000", 1, ErrEncoding, ErrNumberRange("0x10000")},
		{"a: NOP\na: HALT", 2, ErrSymbol, ErrLabelDuplicate("a")},
		{"JMP nowhere", 1, ErrSymbol, ErrLabelMissing("nowhere")},
		{".word nowhere", 1, ErrSymbol, ErrLabelMissing("nowhere")},
		{"NOP\n\n\nFOO R0", 4, ErrEncoding, ErrInstructionInvalid("FOO")},
		{".bogus 1", 1, ErrEncoding, ErrDirectiveInvalid(".bogus")},
		{"NOP R0", 1, ErrEncoding, ErrOperandCount{Op: "NOP", Want: 0, Got: 1}},
		{"halt 1", 1, ErrEncoding, ErrOperandCount{Op: "HALT", Want: 0, Got: 1}},
		{"ADD R0", 1, ErrEncoding, ErrOperandCount{Op: "ADD", Want: 2, Got: 1}},
		{"JMP", 1, ErrEncoding, ErrOperandCount{Op: "JMP", Want: 1, Got: 0}},
		{"JZ a b", 1, ErrEncoding, ErrOperandCount{Op: "JZ", Want: 1, Got: 2}},
		{"ADD #1, R0", 1, ErrEncoding, ErrAddTarget},
		{"ADD R0, label", 1, ErrEncoding, ErrAddSource},
		{"ADD R0, 5", 1, ErrEncoding, ErrAddSource},
		{"JMP R0", 1, ErrEncoding, ErrJumpTarget},
		{"JZ #5", 1, ErrEncoding, ErrJumpTarget},
		{".word", 1, ErrEncoding, ErrWordOperand},
		{".word R1", 1, ErrEncoding, ErrWordOperand},
		{".word #1", 1, ErrEncoding, ErrWordOperand},
		{".word 0x10000", 1, ErrEncoding, ErrNumberRange("0x10000")},
		{"ADD R0, #70000", 1, ErrEncoding, ErrNumberRange("70000")},
		{"ADD R0, #12abc", 1, ErrEncoding, ErrParseNumber("12abc")},
	}

	categories := []error{ErrLexical, ErrSyntax, ErrSymbol, ErrEncoding}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.source))
		assert.Nil(prog, entry.source)
		if !assert.Error(err, entry.source) {
			continue
		}

		var line *ErrLine
		if assert.True(errors.As(err, &line), entry.source) {
			assert.Equal(entry.lineno, line.LineNo, entry.source)
			assert.Equal(strings.Split(entry.source, "\n")[entry.lineno-1], line.Line, entry.source)
			assert.Equal(entry.err, line.Err, entry.source)
		}

		for _, category := range categories {
			assert.Equal(category == entry.category, errors.Is(err, category), "%v: %v", entry.source, category)
		}

		data, err := Assemble(entry.source)
		assert.Error(err, entry.source)
		assert.Nil(data, entry.source)
	}
}

func TestSize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		size int
	}){
		{"", 0},
		{"label:", 0},
		{"NOP", 1},
		{"HALT", 1},
		{"ADD R0, R1", 1},
		{"ADD R0, #1", 2},
		{"JMP x", 2},
		{"JZ 0x8000", 2},
		{".word 5", 1},
		{".org 5", 0},
		{".bogus", 0},
		{"FOO", 0},
	}

	for _, entry := range table {
		line, err := parse(t, entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.size, Size(&line), entry.text)
	}
}
