package asm

import (
	"strconv"
	"strings"

	"github.com/ezrec/asm16/isa"
)

// LineKind classifies a parsed source line.
type LineKind int

//go:generate go tool stringer -linecomment -type=LineKind
const (
	LINE_EMPTY       = LineKind(0) // empty
	LINE_INSTRUCTION = LineKind(1) // instruction
	LINE_DIRECTIVE   = LineKind(2) // directive
)

// OperandKind classifies an operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER  = OperandKind(0) // register
	OPERAND_IMMEDIATE = OperandKind(1) // immediate
	OPERAND_LABEL     = OperandKind(2) // label
	OPERAND_NUMBER    = OperandKind(3) // number
)

// Operand is a single instruction or directive operand.
type Operand struct {
	Kind OperandKind
	Text string // Register name, number text (without '#') or label name.
}

// Register returns the register named by a register operand.
func (opr Operand) Register() (reg isa.Register, err error) {
	if opr.Kind != OPERAND_REGISTER {
		err = ErrRegister
		return
	}

	reg, ok := isa.RegisterByName(opr.Text)
	if !ok {
		err = ErrRegister
		return
	}

	return
}

// Value resolves a number, immediate or label operand to a 16-bit value.
func (opr Operand) Value(symbol map[string]uint16) (value uint16, err error) {
	switch opr.Kind {
	case OPERAND_NUMBER, OPERAND_IMMEDIATE:
		value, err = ParseNumber(opr.Text)
	case OPERAND_LABEL:
		var ok bool
		value, ok = symbol[opr.Text]
		if !ok {
			err = ErrLabelMissing(opr.Text)
		}
	default:
		err = ErrOperand(opr.Text)
	}

	return
}

// Line is a parsed source line.
type Line struct {
	LineNo   int
	Text     string // Source text of the line.
	Label    string // Label defined on the line, if any.
	Kind     LineKind
	Op       string // Mnemonic or directive name, as written.
	Operands []Operand
}

// Mnemonic returns the upper case operation name of an instruction line.
func (line *Line) Mnemonic() string {
	return strings.ToUpper(line.Op)
}

// Directive returns the lower case name of a directive line, such as ".org".
func (line *Line) Directive() string {
	return strings.ToLower(line.Op)
}

// ParseTokens builds a Line from the tokens of a single source line.
//
// Commas between operands are optional.
func ParseTokens(tokens []Token, lineno int) (line Line, err error) {
	line.LineNo = lineno
	line.Kind = LINE_EMPTY

	if len(tokens) == 0 {
		return
	}

	if len(tokens) >= 2 && tokens[0].Kind == TOKEN_IDENTIFIER && tokens[1].Kind == TOKEN_COLON {
		line.Label = tokens[0].Text
		tokens = tokens[2:]
		if len(tokens) == 0 {
			return
		}
	}

	if tokens[0].Kind != TOKEN_IDENTIFIER {
		err = ErrOpMissing
		return
	}

	line.Op = tokens[0].Text
	if strings.HasPrefix(line.Op, ".") {
		line.Kind = LINE_DIRECTIVE
	} else {
		line.Kind = LINE_INSTRUCTION
	}

	for n := 1; n < len(tokens); n++ {
		token := tokens[n]
		switch token.Kind {
		case TOKEN_COMMA:
			continue
		case TOKEN_REGISTER:
			line.Operands = append(line.Operands, Operand{Kind: OPERAND_REGISTER, Text: token.Text})
		case TOKEN_HASH:
			if n+1 >= len(tokens) || tokens[n+1].Kind != TOKEN_NUMBER {
				err = ErrHashNumber
				return
			}
			n++
			line.Operands = append(line.Operands, Operand{Kind: OPERAND_IMMEDIATE, Text: tokens[n].Text})
		case TOKEN_NUMBER:
			line.Operands = append(line.Operands, Operand{Kind: OPERAND_NUMBER, Text: token.Text})
		case TOKEN_IDENTIFIER:
			line.Operands = append(line.Operands, Operand{Kind: OPERAND_LABEL, Text: token.Text})
		default:
			err = ErrOperand(token.Text)
			return
		}
	}

	return
}

// ParseNumber converts decimal or 0x-prefixed hexadecimal text to a 16-bit
// value. The whole text must be consumed.
func ParseNumber(text string) (value uint16, err error) {
	digits := text
	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
		base = 16
	}

	v64, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			err = ErrNumberRange(text)
		} else {
			err = ErrParseNumber(text)
		}
		return
	}

	value = uint16(v64)
	return
}
