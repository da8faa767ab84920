package syntax

import "strings"

// Node is the interface implemented by every node of the abstract syntax
// tree.  TokenLiteral returns the literal of the token the node was created
// from and exists mainly for tests and debugging.  String reproduces the
// node as canonical source text.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is an AST node that appears in statement position.  The
// statementNode marker keeps statements and expressions from being used
// interchangeably.
type Statement interface {
	Node
	statementNode()
}

// Expression is an AST node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// -----------------------------------------------------------------------------

// Program is the root node of every parsed source text: the list of top
// level statements in source order.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}

	return ""
}

func (p *Program) String() string {
	sb := strings.Builder{}

	for _, stmt := range p.Statements {
		sb.WriteString(stmt.String())
	}

	return sb.String()
}

// -----------------------------------------------------------------------------

// LetStatement is a `let <name> = <value>;` binding.  The name slot only ever
// holds an identifier.
type LetStatement struct {
	Token Token // the `let` token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Value }

func (ls *LetStatement) String() string {
	sb := strings.Builder{}

	sb.WriteString(ls.TokenLiteral())
	sb.WriteRune(' ')
	sb.WriteString(ls.Name.String())
	sb.WriteString(" = ")

	if ls.Value != nil {
		sb.WriteString(ls.Value.String())
	}

	sb.WriteRune(';')

	return sb.String()
}

// ReturnStatement is a `return [<value>];` statement.  A bare return keeps a
// nil return value.
type ReturnStatement struct {
	Token       Token // the `return` token
	ReturnValue Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Value }

func (rs *ReturnStatement) String() string {
	sb := strings.Builder{}

	sb.WriteString(rs.TokenLiteral())

	if rs.ReturnValue != nil {
		sb.WriteRune(' ')
		sb.WriteString(rs.ReturnValue.String())
	}

	sb.WriteRune(';')

	return sb.String()
}

// ExpressionStatement is a bare expression in statement position, such as a
// REPL input line like `1 + 2`.
type ExpressionStatement struct {
	Token      Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Value }

func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}

	return ""
}

// BlockStatement is a brace-delimited statement list.
type BlockStatement struct {
	Token      Token // the `{` token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Value }

func (bs *BlockStatement) String() string {
	sb := strings.Builder{}

	for _, stmt := range bs.Statements {
		sb.WriteString(stmt.String())
	}

	return sb.String()
}

// -----------------------------------------------------------------------------

// Identifier is a name in expression position.  It also serves as the name
// slot of a let statement and the parameters of a function literal.
type Identifier struct {
	Token Token // the IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Value }
func (i *Identifier) String() string       { return i.Value }

// IntegerLiteral is an integer literal with its decoded value.  Valid is
// false when the literal did not fit in an int64: the node still exists and
// prints, only its value is unusable.
type IntegerLiteral struct {
	Token Token // the INT token
	Value int64
	Valid bool
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Value }
func (il *IntegerLiteral) String() string       { return il.Token.Value }

// Boolean is a `true` or `false` literal.
type Boolean struct {
	Token Token
	Value bool
}

func (b *Boolean) expressionNode()      {}
func (b *Boolean) TokenLiteral() string { return b.Token.Value }
func (b *Boolean) String() string       { return b.Token.Value }

// PrefixExpression is an operator applied in front of its operand: `!ok` or
// `-x`.
type PrefixExpression struct {
	Token    Token // the operator token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Value }

func (pe *PrefixExpression) String() string {
	sb := strings.Builder{}

	sb.WriteRune('(')
	sb.WriteString(pe.Operator)

	if pe.Right != nil {
		sb.WriteString(pe.Right.String())
	}

	sb.WriteRune(')')

	return sb.String()
}

// InfixExpression is a binary operator applied between two operands.  The
// printed form is fully parenthesized.
type InfixExpression struct {
	Token    Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Value }

func (ie *InfixExpression) String() string {
	sb := strings.Builder{}

	sb.WriteRune('(')

	if ie.Left != nil {
		sb.WriteString(ie.Left.String())
	}

	sb.WriteRune(' ')
	sb.WriteString(ie.Operator)
	sb.WriteRune(' ')

	if ie.Right != nil {
		sb.WriteString(ie.Right.String())
	}

	sb.WriteRune(')')

	return sb.String()
}

// IfExpression is a conditional expression: `if (<cond>) { ... }` with an
// optional else block.
type IfExpression struct {
	Token       Token // the `if` token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Value }

func (ie *IfExpression) String() string {
	sb := strings.Builder{}

	sb.WriteString("if")

	if ie.Condition != nil {
		sb.WriteString(ie.Condition.String())
	}

	sb.WriteRune(' ')
	sb.WriteString(ie.Consequence.String())

	if ie.Alternative != nil {
		sb.WriteString("else ")
		sb.WriteString(ie.Alternative.String())
	}

	return sb.String()
}

// FunctionLiteral is an anonymous function: `fn(<params>) { <body> }`.
// Parameters are always plain identifiers.
type FunctionLiteral struct {
	Token      Token // the `fn` token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Value }

func (fl *FunctionLiteral) String() string {
	sb := strings.Builder{}

	sb.WriteString(fl.TokenLiteral())
	sb.WriteRune('(')

	for i, param := range fl.Parameters {
		if i != 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(param.String())
	}

	sb.WriteString(") ")
	sb.WriteString(fl.Body.String())

	return sb.String()
}

// CallExpression is a call of any callable expression: an identifier or a
// function literal followed by a parenthesized argument list.
type CallExpression struct {
	Token     Token // the `(` token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Value }

func (ce *CallExpression) String() string {
	sb := strings.Builder{}

	if ce.Function != nil {
		sb.WriteString(ce.Function.String())
	}

	sb.WriteRune('(')

	for i, arg := range ce.Arguments {
		if i != 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(arg.String())
	}

	sb.WriteRune(')')

	return sb.String()
}
