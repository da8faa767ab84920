package syntax

import (
	"strconv"

	"capuchin/report"
)

// Operator precedence levels from weakest to strongest binding.
const (
	_ = iota
	LOWEST
	EQUALS      // == or !=
	LESSGREATER // < or >
	SUM         // + or -
	PRODUCT     // * or /
	PREFIX      // -x or !x
	CALL        // f(x)
)

// precedences maps token kinds to the binding power they have as infix
// operators.  Kinds missing from the table bind at LOWEST, which is what
// stops the infix loop at statement boundaries.
var precedences = map[int]int{
	EQ:       EQUALS,
	NEQ:      EQUALS,
	LT:       LESSGREATER,
	GT:       LESSGREATER,
	PLUS:     SUM,
	MINUS:    SUM,
	SLASH:    PRODUCT,
	ASTERISK: PRODUCT,
	LPAREN:   CALL,
}

// peekPrecedence returns the infix binding power of the peek token.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Kind]; ok {
		return prec
	}

	return LOWEST
}

// curPrecedence returns the infix binding power of the current token.
func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}

	return LOWEST
}

// -----------------------------------------------------------------------------

// parseExpression parses an expression using Pratt's technique: the prefix
// function of the current token produces the left operand, then every infix
// operator that binds more tightly than the given precedence extends it.
// The strictly-greater comparison is what makes operators of equal precedence
// associate to the left.
func (p *Parser) parseExpression(precedence int) Expression {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.noPrefixParseFnError()
		return nil
	}

	leftExpr := prefix()

	for !p.peekTokenIs(SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			return leftExpr
		}

		p.nextToken()

		leftExpr = infix(leftExpr)
	}

	return leftExpr
}

// -----------------------------------------------------------------------------

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.curToken, Value: p.curToken.Value}
}

// parseIntegerLiteral emits a node even when the literal does not convert:
// the error is recorded and the node is marked invalid.
func (p *Parser) parseIntegerLiteral() Expression {
	lit := &IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Value, 10, 64)
	if err != nil {
		p.errors = append(p.errors, report.Raise(
			p.curToken.Span(),
			"could not parse %q as integer",
			p.curToken.Value,
		))

		return lit
	}

	lit.Value = value
	lit.Valid = true

	return lit
}

func (p *Parser) parseBoolean() Expression {
	return &Boolean{Token: p.curToken, Value: p.curTokenIs(TRUE)}
}

// prefix_expr = ('!' | '-') expr
func (p *Parser) parsePrefixExpression() Expression {
	expr := &PrefixExpression{Token: p.curToken, Operator: p.curToken.Value}

	p.nextToken()

	expr.Right = p.parseExpression(PREFIX)

	return expr
}

// infix_expr = expr OPERATOR expr
func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &InfixExpression{Token: p.curToken, Operator: p.curToken.Value, Left: left}

	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)

	return expr
}

// grouped_expr = '(' expr ')'
func (p *Parser) parseGroupedExpression() Expression {
	p.nextToken()

	expr := p.parseExpression(LOWEST)

	if !p.expectPeek(RPAREN) {
		return nil
	}

	return expr
}

// if_expr = 'if' '(' expr ')' block ['else' block]
func (p *Parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: p.curToken}

	if !p.expectPeek(LPAREN) {
		return nil
	}

	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(RPAREN) {
		return nil
	}

	if !p.expectPeek(LBRACE) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(ELSE) {
		p.nextToken()

		if !p.expectPeek(LBRACE) {
			return nil
		}

		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

// func_lit = 'fn' '(' [param_list] ')' block
func (p *Parser) parseFunctionLiteral() Expression {
	lit := &FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(LPAREN) {
		return nil
	}

	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(LBRACE) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

// param_list = 'IDENT' {',' 'IDENT'}
func (p *Parser) parseFunctionParameters() []*Identifier {
	params := []*Identifier{}

	if p.peekTokenIs(RPAREN) {
		p.nextToken()
		return params
	}

	if !p.expectPeek(IDENT) {
		return nil
	}

	params = append(params, &Identifier{Token: p.curToken, Value: p.curToken.Value})

	for p.peekTokenIs(COMMA) {
		p.nextToken()

		if !p.expectPeek(IDENT) {
			return nil
		}

		params = append(params, &Identifier{Token: p.curToken, Value: p.curToken.Value})
	}

	if !p.expectPeek(RPAREN) {
		return nil
	}

	return params
}

// call_expr = expr '(' [expr_list] ')'
//
// parseCallExpression is registered as the infix handler for '(': the left
// operand is the callee and the arguments follow.
func (p *Parser) parseCallExpression(function Expression) Expression {
	call := &CallExpression{Token: p.curToken, Function: function}
	call.Arguments = p.parseCallArguments()
	return call
}

// expr_list = expr {',' expr}
func (p *Parser) parseCallArguments() []Expression {
	args := []Expression{}

	if p.peekTokenIs(RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))

	for p.peekTokenIs(COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(RPAREN) {
		return nil
	}

	return args
}
