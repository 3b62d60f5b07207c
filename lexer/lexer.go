/*
File    : minilisp/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer tokenizes mini-lisp source text into the flat token stream
// consumed by the parser. It recognizes left/right parentheses, signed
// integer literals, the two boolean literals #t/#f, and symbols (identifiers
// and the named operators), and otherwise reports any byte outside the
// grammar's terminal alphabet as an invalid token. The lexer performs no
// structural validation — that is the parser's job.
package lexer

// Lexer scans source text one byte at a time, tracking line/column for
// diagnostics.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer creates a Lexer positioned at the start of src.
func NewLexer(src string) Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// Peek returns the byte after Current without consuming it, or 0 at EOF.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves to the next byte, updating Position/Column/Current.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespace skips spaces, tabs, and newlines, tracking line numbers.
func (lex *Lexer) IgnoreWhitespace() {
	for isWhitespace(lex.Current) {
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0 // Advance below moves onto column 1
		}
		lex.Advance()
	}
}

// NextToken returns the next token in the source, or an EOF_TYPE token once
// the input is exhausted.
func (lex *Lexer) NextToken() Token {
	lex.IgnoreWhitespace()

	line, col := lex.Line, lex.Column

	switch {
	case lex.Current == 0:
		return NewTokenWithMetadata(EOF_TYPE, "EOF", line, col)
	case lex.Current == '(':
		lex.Advance()
		return NewTokenWithMetadata(LEFT_PAREN, "(", line, col)
	case lex.Current == ')':
		lex.Advance()
		return NewTokenWithMetadata(RIGHT_PAREN, ")", line, col)
	case lex.Current == '#':
		return lex.readBoolean(line, col)
	case (lex.Current == '+' || lex.Current == '-') && isDigit(lex.Peek()):
		return lex.readNumber(line, col)
	case isDigit(lex.Current):
		return lex.readNumber(line, col)
	case isAlpha(lex.Current):
		return lex.readSymbol(line, col)
	case isOperatorChar(lex.Current):
		lit := string(lex.Current)
		lex.Advance()
		return NewTokenWithMetadata(SYMBOL_LIT, lit, line, col)
	default:
		lit := string(lex.Current)
		lex.Advance()
		return NewTokenWithMetadata(INVALID_TYPE, lit, line, col)
	}
}

// readNumber consumes an optionally-signed run of decimal digits.
func (lex *Lexer) readNumber(line, col int) Token {
	start := lex.Position
	if lex.Current == '+' || lex.Current == '-' {
		lex.Advance()
	}
	for isDigit(lex.Current) {
		lex.Advance()
	}
	return NewTokenWithMetadata(INT_LIT, lex.Src[start:lex.Position], line, col)
}

// readBoolean consumes '#t' or '#f'; anything else after '#' is invalid.
func (lex *Lexer) readBoolean(line, col int) Token {
	start := lex.Position
	lex.Advance() // consume '#'
	if lex.Current == 't' || lex.Current == 'f' {
		lit := lex.Src[start : start+2]
		lex.Advance()
		return NewTokenWithMetadata(BOOL_LIT, lit, line, col)
	}
	lit := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(INVALID_TYPE, lit, line, col)
}

// readSymbol consumes an identifier/operator-name: letter (letter|digit|-)*.
func (lex *Lexer) readSymbol(line, col int) Token {
	start := lex.Position
	lex.Advance()
	for isAlpha(lex.Current) || isDigit(lex.Current) || lex.Current == '-' {
		lex.Advance()
	}
	return NewTokenWithMetadata(SYMBOL_LIT, lex.Src[start:lex.Position], line, col)
}

// ConsumeTokens tokenizes the entire source, returning every token up to
// (but excluding) EOF. Primarily useful for tests and debugging.
func (lex *Lexer) ConsumeTokens() []Token {
	tokens := make([]Token, 0)
	for {
		tok := lex.NextToken()
		if tok.Type == EOF_TYPE {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isOperatorChar recognizes the single-character operator symbols.
func isOperatorChar(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '>', '<', '=':
		return true
	}
	return false
}
