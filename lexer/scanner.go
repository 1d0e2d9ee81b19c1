package lexer

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Scanner is a pull-based tokenizer over a fully materialized byte
// buffer. It owns a cursor (byte offset plus row and column counters)
// and produces one Token per call to NextToken. A Scanner is exclusively
// owned by a single caller and is not restartable: rescanning requires a
// fresh Scanner.
type Scanner struct {
	input []byte

	position int
	row      int
	col      int

	decoder transform.Transformer
}

// New initializes a Scanner over the given buffer
func New(input []byte) *Scanner {
	return &Scanner{
		input:   input,
		row:     1,
		col:     1,
		decoder: runes.ReplaceIllFormed(),
	}
}

// NewFromArgs initializes a Scanner over the given arguments joined with
// single spaces. No arguments yields an empty buffer.
func NewFromArgs(args []string) *Scanner {
	return New([]byte(strings.Join(args, " ")))
}

// Tokenize scans the whole buffer and returns every token up to and
// including the first terminal one (Null or Invalid). Scanning cannot
// fail: malformed input is a data outcome, not an error.
func Tokenize(in []byte) []Token {
	tokens := []Token{}

	s := New(in)
	for {
		tok := s.NextToken()
		tokens = append(tokens, tok)
		if tok.IsTerminal() {
			return tokens
		}
	}
}

// NextToken classifies the byte at the cursor and consumes one lexical
// unit, advancing the scanner. It never fails and never blocks. Once a
// terminal token has been produced, every further call returns Null at
// the same position.
func (s *Scanner) NextToken() Token {
	switch c := s.currentByte(); {
	case isIdentByte(c):
		return s.scanIdentifier()
	case isDigitByte(c):
		return s.scanNumber()
	case isPonctByte(c):
		return s.scanPonct()
	case isSpaceByte(c):
		return s.scanWhitespace()
	default:
		if s.hasNext() {
			return s.scanInvalid()
		}
		return s.null()
	}
}

func (s *Scanner) currentByte() byte {
	if s.hasNext() {
		return s.input[s.position]
	}
	return 0
}

func (s *Scanner) peek(offset int) byte {
	if index := s.position + offset; index < len(s.input) {
		return s.input[index]
	}
	return 0
}

func (s *Scanner) hasNext() bool {
	return s.position < len(s.input)
}

// advance consumes exactly one byte. The column counter moves once per
// consumed byte and is never reset, not even on a newline: after the
// first newline the column is a cumulative byte count, not an offset
// within the current line. Downstream consumers depend on these exact
// values.
func (s *Scanner) advance() {
	s.position++
	s.col++
}

func (s *Scanner) scanIdentifier() Token {
	start := s.position

	// A digit terminates the run: this grammar accepts only letters and
	// underscore inside an identifier.
	for isIdentByte(s.currentByte()) {
		s.advance()
	}

	return s.token(TokenIdentifier, start)
}

func (s *Scanner) scanNumber() Token {
	start := s.position
	kind := TokenInt

	for {
		switch c := s.currentByte(); {
		case isDigitByte(c):
		case c == '.' && isDigitByte(s.peek(1)):
			kind = TokenFloat
		default:
			return s.token(kind, start)
		}
		s.advance()
	}
}

func (s *Scanner) scanPonct() Token {
	start := s.position
	s.advance()

	return s.token(TokenPonct, start)
}

func (s *Scanner) scanWhitespace() Token {
	start := s.position

loop:
	for s.hasNext() {
		switch s.currentByte() {
		case ' ', '\t', '\r':
			s.advance()
		case '\n':
			s.row++
			s.advance()
		default:
			break loop
		}
	}

	return s.token(TokenWhitespace, start)
}

// scanInvalid consumes the one unrecognized byte and permanently ends
// the scan: the cursor jumps to the end of the buffer, so any bytes
// after the invalid one are never classified.
func (s *Scanner) scanInvalid() Token {
	value := s.sliceString(s.position, s.position+1)
	s.advance()
	s.position = len(s.input)

	return NewToken(TokenInvalid, value, s.row, s.col)
}

func (s *Scanner) null() Token {
	return NewToken(TokenNull, "", s.row, s.col)
}

func (s *Scanner) token(kind TokenKind, start int) Token {
	return NewToken(kind, s.sliceString(start, s.position), s.row, s.col)
}

// sliceString decodes a slice of the input as text, replacing any
// ill-formed UTF-8 sequence with U+FFFD rather than failing.
func (s *Scanner) sliceString(start, stop int) string {
	out, _, err := transform.Bytes(s.decoder, s.input[start:stop])
	if err != nil {
		return string(s.input[start:stop])
	}
	return string(out)
}
