package syntax

import "capuchin/report"

// statement = let_stmt | return_stmt | expr_stmt
func (p *Parser) parseStatement() Statement {
	switch p.curToken.Kind {
	case LET:
		return p.parseLetStatement()
	case RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// let_stmt = 'let' 'IDENT' '=' expr [';']
func (p *Parser) parseLetStatement() Statement {
	stmt := &LetStatement{Token: p.curToken}

	if !p.expectPeek(IDENT) {
		return nil
	}

	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Value}

	if !p.expectPeek(ASSIGN) {
		return nil
	}

	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// return_stmt = 'return' [expr] [';']
func (p *Parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.curToken}

	// a return with no value: `return;`, `return}`, or return at the end of
	// the input
	if p.peekTokenIs(SEMICOLON) {
		p.nextToken()
		return stmt
	}

	if p.peekTokenIs(RBRACE) || p.peekTokenIs(EOF) {
		return stmt
	}

	p.nextToken()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekTokenIs(SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// expr_stmt = expr [';']
func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// block = '{' {statement} '}'
//
// parseBlockStatement begins centered on the opening brace.  A block cut off
// by the end of the input keeps its parsed statements and records one error
// for the missing closing brace.
func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.curToken}

	p.nextToken()

	for !p.curTokenIs(RBRACE) {
		if p.curTokenIs(EOF) {
			p.errors = append(p.errors, report.Raise(
				p.curToken.Span(),
				"expected %s before end of input",
				KindName(RBRACE),
			))

			return block
		}

		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}

		p.nextToken()
	}

	return block
}
