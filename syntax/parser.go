package syntax

import "capuchin/report"

// The handler types registered in the Pratt parsing tables.  A prefix
// function parses an expression form that begins at the current token.  An
// infix function receives the already parsed left operand and extends it,
// starting centered on the operator token.
type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Parser is a Pratt parser over the token stream of a single source text.  It
// moves over the stream two tokens at a time, deciding what to parse from the
// token it is currently positioned on and dispatching expression forms
// through the prefix and infix tables keyed by token kind.  All parsing
// functions assume that they begin with the parser centered on the first
// token of their production and end centered on the last token of it.
//
// The parser never stops early and never panics on malformed input: errors
// are accumulated in source order and the statements that did parse are kept.
// Parsers are created once per source text.
type Parser struct {
	// l is the lexer this parser draws its tokens from.
	l *Lexer

	// curToken is the token the parser is positioned on; peekToken is the one
	// after it, used to decide how the current construct continues.
	curToken  Token
	peekToken Token

	// errors is the list of parse errors accumulated so far.
	errors []*report.ParseError

	prefixParseFns map[int]prefixParseFn
	infixParseFns  map[int]infixParseFn
}

// NewParser creates a parser over the given lexer with both token slots
// primed and all expression handlers registered.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[int]prefixParseFn{
		IDENT:    p.parseIdentifier,
		INT:      p.parseIntegerLiteral,
		BANG:     p.parsePrefixExpression,
		MINUS:    p.parsePrefixExpression,
		TRUE:     p.parseBoolean,
		FALSE:    p.parseBoolean,
		LPAREN:   p.parseGroupedExpression,
		IF:       p.parseIfExpression,
		FUNCTION: p.parseFunctionLiteral,
	}

	p.infixParseFns = map[int]infixParseFn{
		PLUS:     p.parseInfixExpression,
		MINUS:    p.parseInfixExpression,
		SLASH:    p.parseInfixExpression,
		ASTERISK: p.parseInfixExpression,
		EQ:       p.parseInfixExpression,
		NEQ:      p.parseInfixExpression,
		LT:       p.parseInfixExpression,
		GT:       p.parseInfixExpression,
		LPAREN:   p.parseCallExpression,
	}

	// fill curToken and peekToken
	p.nextToken()
	p.nextToken()

	return p
}

// ParseProgram parses the whole token stream into a program.
func (p *Parser) ParseProgram() *Program {
	program := &Program{}

	for !p.curTokenIs(EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}

		p.nextToken()
	}

	return program
}

// Errors returns the parse errors accumulated so far in source order.
func (p *Parser) Errors() []*report.ParseError {
	return p.errors
}

// -----------------------------------------------------------------------------

// nextToken moves the parser one token forward in the token stream.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// curTokenIs returns whether the current token is of the given kind.
func (p *Parser) curTokenIs(kind int) bool {
	return p.curToken.Kind == kind
}

// peekTokenIs returns whether the next token is of the given kind.
func (p *Parser) peekTokenIs(kind int) bool {
	return p.peekToken.Kind == kind
}

// expectPeek moves the parser forward if the next token is of the given kind
// and records a parse error without moving otherwise.
func (p *Parser) expectPeek(kind int) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}

	p.peekError(kind)
	return false
}

// peekError records a parse error for an unexpected peek token.
func (p *Parser) peekError(kind int) {
	p.errors = append(p.errors, report.Raise(
		p.peekToken.Span(),
		"expected next token to be %s, got %s instead",
		KindName(kind), KindName(p.peekToken.Kind),
	))
}

// noPrefixParseFnError records a parse error for a token that cannot begin an
// expression.
func (p *Parser) noPrefixParseFnError() {
	p.errors = append(p.errors, report.Raise(
		p.curToken.Span(),
		"no prefix parse function for %s found",
		KindName(p.curToken.Kind),
	))
}
