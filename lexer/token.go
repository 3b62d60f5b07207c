/*
File    : minilisp/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// TokenType identifies the lexical category of a Token. It is a string so
// that token types double as their own human-readable label.
type TokenType string

const (
	// EOF_TYPE marks the end of the input stream.
	EOF_TYPE TokenType = "EOF"
	// INVALID_TYPE represents a byte outside the grammar's terminal alphabet.
	INVALID_TYPE TokenType = "INVALID"

	LEFT_PAREN  TokenType = "("
	RIGHT_PAREN TokenType = ")"

	INT_LIT    TokenType = "IntLiteral"
	BOOL_LIT   TokenType = "BoolLiteral"
	SYMBOL_LIT TokenType = "Symbol"
)

// Token is a single lexeme produced by the Lexer: its type, its exact source
// text, and its position for diagnostics.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// NewToken creates a Token without position metadata. Mainly useful in
// tests that don't care about line/column.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal}
}

// NewTokenWithMetadata creates a Token carrying its source position.
func NewTokenWithMetadata(tokenType TokenType, literal string, line int, column int) Token {
	return Token{Type: tokenType, Literal: literal, Line: line, Column: column}
}

// Print writes a debug form "literal:type" to stdout.
func (tok Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}
