package asm

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asm16/isa"
)

func FuzzAssemble(f *testing.F) {
	f.Add("ADD R0, #10\nADD R0, #5\nNOP\nHALT")
	f.Add("loop: JZ loop")
	f.Add(".org 0x9000\nhere: .word here")
	f.Add("a: NOP\na: HALT")
	f.Add("ADD R0, [R1+4]")
	f.Add("JMP end\nend: .word 0xffff ; done")

	categories := []error{ErrLexical, ErrSyntax, ErrSymbol, ErrEncoding}

	f.Fuzz(func(t *testing.T, source string) {
		assert := assert.New(t)

		data, err := Assemble(source)
		if err != nil {
			assert.Nil(data)

			matched := 0
			for _, category := range categories {
				if errors.Is(err, category) {
					matched++
				}
			}
			assert.Equal(1, matched, err.Error())
			return
		}

		assert.Equal(0, len(data)%2)

		again, err := Assemble(source)
		assert.NoError(err)
		assert.Equal(data, again)

		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(source))
		assert.NoError(err)
		assert.Equal(len(data), 2*len(prog.Words()))
		for _, op := range prog.Opcodes {
			assert.NotEqual(0, len(op.Words))
		}
	})
}

func FuzzAddImmediate(f *testing.F) {
	f.Add(uint16(0), uint8(0), false)
	f.Add(uint16(0xffff), uint8(3), true)
	f.Add(uint16(0x1234), uint8(1), false)

	f.Fuzz(func(t *testing.T, imm uint16, reg uint8, hex bool) {
		assert := assert.New(t)

		rd := isa.Register(reg % isa.REGISTER_COUNT)
		text := fmt.Sprintf("ADD %v, #%d", rd, imm)
		if hex {
			text = fmt.Sprintf("ADD %v, #0x%X", rd, imm)
		}

		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(text))
		if !assert.NoError(err, text) {
			return
		}

		words := prog.Words()
		if assert.Equal(2, len(words), text) {
			word := isa.Word(words[0])
			assert.Equal(isa.OP_ADD, word.Opcode(), text)
			assert.Equal(isa.MODE_IMM, word.Mode(), text)
			assert.Equal(rd, word.Rd(), text)
			assert.Equal(imm, words[1], text)
		}
	})
}
