package lexer

// TokenKind represents all the possible classes of a lexical unit
type TokenKind uint8

// List of classes of lexical units
const (
	TokenWhitespace TokenKind = iota // Run of space, tab, carriage return or newline
	TokenInvalid                     // Single unrecognized byte, ends the scan
	TokenNull                        // End of input, empty value
	TokenInt                         // Run of ASCII digits
	TokenFloat                       // Digits with a dot followed by a digit
	TokenIdentifier                  // Run of ASCII letters and underscore
	TokenPonct                       // Single ASCII punctuation byte
	TokenOp                          // Reserved, no classification rule produces it yet
)

var kindNames = map[TokenKind]string{
	TokenWhitespace: "Whitespace",
	TokenInvalid:    "Invalid",
	TokenNull:       "Null",
	TokenInt:        "Int",
	TokenFloat:      "Float",
	TokenIdentifier: "Identifier",
	TokenPonct:      "Ponct",
	TokenOp:         "Op",
}

func (k TokenKind) String() string {
	if v, ok := kindNames[k]; ok {
		return v
	}
	return kindNames[TokenInvalid]
}

func isIdentByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigitByte(c byte) bool {
	return '0' <= c && c <= '9'
}

// isPonctByte reports whether c belongs to the ASCII punctuation class.
// The underscore is part of this class too, but dispatch checks
// identifiers first so it never reaches the punctuation rule.
func isPonctByte(c byte) bool {
	return ('!' <= c && c <= '/') ||
		(':' <= c && c <= '@') ||
		('[' <= c && c <= '`') ||
		('{' <= c && c <= '~')
}

// isSpaceByte is deliberately narrower than ASCII whitespace: a form
// feed is not consumed by the whitespace rule and classifies as invalid.
func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
