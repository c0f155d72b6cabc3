package asm

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Opcode is the assembled output of a single source line.
type Opcode struct {
	LineNo int      // Source line number.
	Addr   uint16   // Word address of the first word.
	Text   string   // Source text.
	Words  []uint16 // Encoded words.
}

// Program is an assembled program.
type Program struct {
	Origin  uint16            // Initial location counter.
	Opcodes []Opcode          // Emitting lines, in source order.
	Symbol  map[string]uint16 // Label addresses.
}

// Debug locates a word address within a program.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode covering a word address. The Opcode is nil if no
// line emitted a word at that address.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && int(addr) < int(op.Addr)+len(op.Words) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr - op.Addr),
			}
			break
		}
	}

	return
}

// Entry returns the address of the first emitted word, or the origin if the
// program is empty.
func (prog *Program) Entry() uint16 {
	if len(prog.Opcodes) == 0 {
		return prog.Origin
	}
	return prog.Opcodes[0].Addr
}

// Codes iterates over (address, word) for every emitted word.
func (prog *Program) Codes() iter.Seq2[uint16, uint16] {
	return func(yield func(addr uint16, word uint16) bool) {
		for _, op := range prog.Opcodes {
			for n, word := range op.Words {
				if !yield(op.Addr+uint16(n), word) {
					return
				}
			}
		}
	}
}

// Words returns every emitted word in source order.
func (prog *Program) Words() (words []uint16) {
	for _, word := range prog.Codes() {
		words = append(words, word)
	}
	return
}

// Bytes returns the little-endian image of Words.
func (prog *Program) Bytes() (data []byte) {
	data = make([]byte, 0, 16)
	for _, word := range prog.Codes() {
		data = binary.LittleEndian.AppendUint16(data, word)
	}
	return
}

// WriteTo writes the program image.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	count, err := w.Write(prog.Bytes())
	n = int64(count)
	return
}

// Labels returns the label names sorted by address, then by name.
func (prog *Program) Labels() (labels []string) {
	labels = slices.SortedFunc(maps.Keys(prog.Symbol), func(a, b string) int {
		return cmp.Or(cmp.Compare(prog.Symbol[a], prog.Symbol[b]), strings.Compare(a, b))
	})
	return
}

// Listing writes an address/word/source listing of the program.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, op := range prog.Opcodes {
		for n := 0; n < len(op.Words); n += 3 {
			words := op.Words[n:min(n+3, len(op.Words))]
			hex := ""
			for _, word := range words {
				hex += fmt.Sprintf(" %04x", word)
			}
			text := ""
			if n == 0 {
				text = op.Text
			}
			_, err = fmt.Fprintf(w, "%04x:%-15s  %4d  %s\n", op.Addr+uint16(n), hex, op.LineNo, text)
			if err != nil {
				return
			}
		}
	}

	return
}
