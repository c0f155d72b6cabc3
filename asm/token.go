package asm

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_IDENTIFIER = TokenKind(0) // identifier
	TOKEN_NUMBER     = TokenKind(1) // number
	TOKEN_REGISTER   = TokenKind(2) // register
	TOKEN_COMMA      = TokenKind(3) // ,
	TOKEN_COLON      = TokenKind(4) // :
	TOKEN_HASH       = TokenKind(5) // #
	TOKEN_LBRACKET   = TokenKind(6) // [
	TOKEN_RBRACKET   = TokenKind(7) // ]
	TOKEN_PLUS       = TokenKind(8) // +
)

// Token is a single lexical element of a source line.
type Token struct {
	Kind   TokenKind
	Text   string // Source text. Upper case for registers, as written otherwise.
	LineNo int    // 1-based source line.
	Column int    // 1-based source column.
}

// punctuation maps single character tokens to their kinds.
var punctuation = map[byte]TokenKind{
	',': TOKEN_COMMA,
	':': TOKEN_COLON,
	'#': TOKEN_HASH,
	'[': TOKEN_LBRACKET,
	']': TOKEN_RBRACKET,
	'+': TOKEN_PLUS,
}
