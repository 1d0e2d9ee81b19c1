package lexer

import (
	"fmt"
)

// Token represents one classified unit of input text (lexical unit).
// The recorded position is the scanner's row and column after the
// token's bytes were consumed, not before.
type Token struct {
	kind  TokenKind
	value string

	row int
	col int
}

// NewToken creates a lexical unit
func NewToken(kind TokenKind, value string, row int, col int) Token {
	return Token{
		kind:  kind,
		value: value,
		row:   row,
		col:   col,
	}
}

// Kind returns the class of the lexical unit
func (t Token) Kind() TokenKind {
	return t.kind
}

// Value returns the raw text of the lexical unit
func (t Token) Value() string {
	return t.value
}

// Pos returns the row and column recorded for the lexical unit
func (t Token) Pos() (int, int) {
	return t.row, t.col
}

// Is returns true if the token matches the given kind
func (t Token) Is(kind TokenKind) bool {
	return t.kind == kind
}

// IsTerminal returns true if the token ends productive scanning
func (t Token) IsTerminal() bool {
	return t.kind == TokenNull || t.kind == TokenInvalid
}

// FormatLoc returns the "row:col" rendering of the token's position
func (t Token) FormatLoc() string {
	return fmt.Sprintf("%d:%d", t.row, t.col)
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %v -> %s", t.row, t.col, t.kind, t.value)
}
