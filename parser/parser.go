/*
File    : minilisp/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a hand-written recursive-descent parser for
// mini-lisp's fully-parenthesized grammar (spec §6.1). The grammar is
// LL(1) after the leading '(': one token of lookahead is enough to decide
// whether a parenthesized form is a special form (define/if/fun), a named
// built-in, or a function call. The parser performs zero semantic checks —
// no arity checking beyond what the concrete grammar shape enforces, no
// type checking — those belong entirely to the evaluator. Parsing is
// all-or-nothing: the first malformed token aborts with a single syntax
// error and no partial AST is ever returned.
package parser

import (
	"github.com/akashmaji946/minilisp/lexer"
	"github.com/akashmaji946/minilisp/value"
)

// reservedOps is the set of special forms and named built-ins a VAR may
// never shadow (spec §6.1).
var reservedOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "mod": true,
	">": true, "<": true, "=": true,
	"and": true, "or": true, "not": true,
	"if": true, "define": true, "fun": true,
	"print-num": true, "print-bool": true,
}

var numericOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "mod": true,
	">": true, "<": true, "=": true,
}

var logicalOps = map[string]bool{"and": true, "or": true, "not": true}

// Parser holds recursive-descent parsing state: a one-token lookahead pair
// over the lexer's token stream.
type Parser struct {
	Lex  lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// NewParser creates a Parser over src, primed with the first two tokens.
func NewParser(src string) *Parser {
	p := &Parser{Lex: lexer.NewLexer(src)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.Lex.NextToken()
}

func (p *Parser) pos() Pos {
	return Pos{Line: p.cur.Line, Column: p.cur.Column}
}

func (p *Parser) syntaxErrorf(format string, args ...interface{}) error {
	return value.NewError(value.SyntaxError, format, args...)
}

// Parse consumes the entire token stream and returns the Program AST, or a
// syntax error on the first malformed construct. On error, prog is nil.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{Pos: Pos{Line: 1, Column: 1}}
	for p.cur.Type != lexer.EOF_TYPE {
		stmt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// parseExpr parses one `exp` production.
func (p *Parser) parseExpr() (Node, error) {
	switch p.cur.Type {
	case lexer.INT_LIT:
		return p.parseIntLiteral()
	case lexer.BOOL_LIT:
		return p.parseBoolLiteral()
	case lexer.SYMBOL_LIT:
		if reservedOps[p.cur.Literal] {
			return nil, p.syntaxErrorf("unexpected reserved word %q outside a parenthesized form", p.cur.Literal)
		}
		return p.parseSymbol()
	case lexer.LEFT_PAREN:
		return p.parseParenExpr()
	case lexer.EOF_TYPE:
		return nil, p.syntaxErrorf("unexpected end of input")
	default:
		return nil, p.syntaxErrorf("unexpected token %q", p.cur.Literal)
	}
}

func (p *Parser) parseIntLiteral() (Node, error) {
	n, err := parseDecimal(p.cur.Literal)
	if err != nil {
		return nil, p.syntaxErrorf("malformed integer literal %q", p.cur.Literal)
	}
	node := &IntLiteral{Pos: p.pos(), Value: n}
	p.advance()
	return node, nil
}

func (p *Parser) parseBoolLiteral() (Node, error) {
	node := &BoolLiteral{Pos: p.pos(), Value: p.cur.Literal == "#t"}
	p.advance()
	return node, nil
}

func (p *Parser) parseSymbol() (Node, error) {
	node := &Symbol{Pos: p.pos(), Name: p.cur.Literal}
	p.advance()
	return node, nil
}

// parseDecimal parses a (possibly +/- signed) run of digits into an int64,
// matching the lexer's INT_LIT lexeme shape exactly.
func parseDecimal(lit string) (int64, error) {
	neg := false
	i := 0
	if len(lit) > 0 && (lit[0] == '+' || lit[0] == '-') {
		neg = lit[0] == '-'
		i = 1
	}
	if i >= len(lit) {
		return 0, value.NewError(value.SyntaxError, "empty integer literal")
	}
	var n int64
	for ; i < len(lit); i++ {
		c := lit[i]
		if c < '0' || c > '9' {
			return 0, value.NewError(value.SyntaxError, "non-digit in integer literal %q", lit)
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

// parseParenExpr parses a parenthesized form: a special form, a named
// built-in application, or a function call (whose head may itself be any
// expression, including another parenthesized form).
func (p *Parser) parseParenExpr() (Node, error) {
	openPos := p.pos()
	p.advance() // consume '('

	if p.cur.Type == lexer.SYMBOL_LIT {
		switch p.cur.Literal {
		case "define":
			return p.parseDefine(openPos)
		case "if":
			return p.parseIf(openPos)
		case "fun":
			return p.parseFun(openPos)
		case "print-num", "print-bool":
			return p.parsePrintBuiltin(openPos, p.cur.Literal)
		}
		if numericOps[p.cur.Literal] || logicalOps[p.cur.Literal] {
			return p.parseOpBuiltin(openPos, p.cur.Literal)
		}
		// Plain symbol in head position: a function call.
		callee := &Symbol{Pos: p.pos(), Name: p.cur.Literal}
		p.advance()
		return p.parseCallTail(openPos, callee)
	}

	if p.cur.Type == lexer.LEFT_PAREN {
		callee, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		return p.parseCallTail(openPos, callee)
	}

	return nil, p.syntaxErrorf("expected a symbol or '(' after '(', got %q", p.cur.Literal)
}

// parseCallTail parses the argument list and closing paren of a call whose
// callee has already been parsed.
func (p *Parser) parseCallTail(openPos Pos, callee Node) (Node, error) {
	args, err := p.parseArgsUntilClose()
	if err != nil {
		return nil, err
	}
	return &Call{Pos: openPos, Callee: callee, Args: args}, nil
}

// parseArgsUntilClose parses zero or more expressions up to and including
// the closing ')'.
func (p *Parser) parseArgsUntilClose() ([]Node, error) {
	var args []Node
	for p.cur.Type != lexer.RIGHT_PAREN {
		if p.cur.Type == lexer.EOF_TYPE {
			return nil, p.syntaxErrorf("unexpected end of input, expected ')'")
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.advance() // consume ')'
	return args, nil
}

// parseDefine parses `( define VAR exp )`.
func (p *Parser) parseDefine(openPos Pos) (Node, error) {
	p.advance() // consume 'define'
	if p.cur.Type != lexer.SYMBOL_LIT || reservedOps[p.cur.Literal] {
		return nil, p.syntaxErrorf("expected a variable name after 'define', got %q", p.cur.Literal)
	}
	name := p.cur.Literal
	p.advance()

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return &Define{Pos: openPos, Name: name, Expr: expr}, nil
}

// parseIf parses `( if test then else )`.
func (p *Parser) parseIf(openPos Pos) (Node, error) {
	p.advance() // consume 'if'
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return &If{Pos: openPos, Test: test, Then: then, Else: els}, nil
}

// parseFun parses `( fun ( VAR* ) fun_body )` where fun_body is zero or
// more def_stmts followed by exactly one result expression.
func (p *Parser) parseFun(openPos Pos) (Node, error) {
	p.advance() // consume 'fun'
	if err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var params []string
	for p.cur.Type != lexer.RIGHT_PAREN {
		if p.cur.Type != lexer.SYMBOL_LIT || reservedOps[p.cur.Literal] {
			return nil, p.syntaxErrorf("expected a parameter name, got %q", p.cur.Literal)
		}
		if seen[p.cur.Literal] {
			return nil, p.syntaxErrorf("duplicate parameter name %q", p.cur.Literal)
		}
		seen[p.cur.Literal] = true
		params = append(params, p.cur.Literal)
		p.advance()
	}
	p.advance() // consume ')'

	var defines []*Define
	for p.cur.Type == lexer.LEFT_PAREN && p.peek.Type == lexer.SYMBOL_LIT && p.peek.Literal == "define" {
		def, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		defines = append(defines, def.(*Define))
	}

	result, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return &Fun{Pos: openPos, Params: params, Defines: defines, Result: result}, nil
}

// parsePrintBuiltin parses `( print-num exp )` / `( print-bool exp )`.
func (p *Parser) parsePrintBuiltin(openPos Pos, op string) (Node, error) {
	p.advance() // consume the op symbol
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return &Builtin{Pos: openPos, Op: op, Args: []Node{arg}}, nil
}

// parseOpBuiltin parses the arithmetic/comparison/logical operator forms,
// enforcing each operator's grammar-level arity: `not` is unary; `- / mod
// > <` are strictly binary; `+ * = and or` take two or more operands.
func (p *Parser) parseOpBuiltin(openPos Pos, op string) (Node, error) {
	p.advance() // consume the op symbol

	var args []Node
	for p.cur.Type != lexer.RIGHT_PAREN {
		if p.cur.Type == lexer.EOF_TYPE {
			return nil, p.syntaxErrorf("unexpected end of input, expected ')'")
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.advance() // consume ')'

	switch op {
	case "not":
		if len(args) != 1 {
			return nil, p.syntaxErrorf("'not' takes exactly 1 argument, got %d", len(args))
		}
	case "-", "/", "mod", ">", "<":
		if len(args) != 2 {
			return nil, p.syntaxErrorf("'%s' takes exactly 2 arguments, got %d", op, len(args))
		}
	default: // + * = and or
		if len(args) < 2 {
			return nil, p.syntaxErrorf("'%s' takes at least 2 arguments, got %d", op, len(args))
		}
	}

	return &Builtin{Pos: openPos, Op: op, Args: args}, nil
}

func (p *Parser) expect(tt lexer.TokenType) error {
	if p.cur.Type != tt {
		return p.syntaxErrorf("expected %q, got %q", tt, p.cur.Literal)
	}
	p.advance()
	return nil
}
