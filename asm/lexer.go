package asm

import (
	"strings"
	"unicode/utf8"

	"github.com/ezrec/asm16/isa"
)

func whitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func alpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func decimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func alnum(c byte) bool {
	return alpha(c) || decimal(c)
}

// identifierStart admits a leading '.' so that directive names lex as
// identifiers.
func identifierStart(c byte) bool {
	return alpha(c) || c == '_' || c == '.'
}

func identifierChar(c byte) bool {
	return alnum(c) || c == '_'
}

// Lex splits a single source line into tokens. Everything from the first
// ';' to the end of the line is a comment.
//
// Numbers are not validated here; a number is any run of alphanumerics
// that starts with a digit, which admits hexadecimal such as 0x1F.
func Lex(line string, lineno int) (tokens []Token, err error) {
	if n := strings.IndexByte(line, ';'); n >= 0 {
		line = line[:n]
	}

	scan := func(start int, fn func(c byte) bool) (end int) {
		for end = start + 1; end < len(line) && fn(line[end]); end++ {
		}
		return
	}

	for i := 0; i < len(line); {
		c := line[i]

		if whitespace(c) {
			i++
			continue
		}

		if kind, ok := punctuation[c]; ok {
			tokens = append(tokens, Token{Kind: kind, Text: line[i : i+1], LineNo: lineno, Column: i + 1})
			i++
			continue
		}

		switch {
		case decimal(c):
			end := scan(i, alnum)
			tokens = append(tokens, Token{Kind: TOKEN_NUMBER, Text: line[i:end], LineNo: lineno, Column: i + 1})
			i = end
		case identifierStart(c):
			end := scan(i, identifierChar)
			token := Token{Kind: TOKEN_IDENTIFIER, Text: line[i:end], LineNo: lineno, Column: i + 1}
			if reg, ok := isa.RegisterByName(token.Text); ok {
				token.Kind = TOKEN_REGISTER
				token.Text = reg.String()
			}
			tokens = append(tokens, token)
			i = end
		default:
			r, _ := utf8.DecodeRuneInString(line[i:])
			err = ErrCharacter{Char: r, Column: i + 1}
			return
		}
	}

	return
}
