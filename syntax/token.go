package syntax

import "capuchin/report"

// Token represents a token read in by the lexer.
type Token struct {
	Kind  int
	Value string

	// Line and Col give the position of the token's first character.  Both
	// are zero-indexed; tabs count as four columns.
	Line int
	Col  int
}

// Span returns the text span covered by the token.
func (t Token) Span() *report.TextSpan {
	return &report.TextSpan{
		StartLine: t.Line,
		StartCol:  t.Col,
		EndLine:   t.Line,
		EndCol:    t.Col + len(t.Value),
	}
}

// NewToken creates a token of the given kind whose literal is the single
// byte ch.
func NewToken(kind int, ch byte, line, col int) Token {
	return Token{Kind: kind, Value: string(ch), Line: line, Col: col}
}

// MakeToken creates a token of the given kind from a complete literal.
func MakeToken(kind int, value string, line, col int) Token {
	return Token{Kind: kind, Value: value, Line: line, Col: col}
}

// The various kinds of tokens produced by the lexer.
const (
	// stream control
	EOF = iota
	ILLEGAL

	// identifiers and literals
	IDENT
	INT

	// operators
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LT
	GT
	EQ
	NEQ

	// punctuation
	COMMA
	SEMICOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE

	// keywords
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

// kindNames maps token kinds to the names used for them in error messages.
var kindNames = map[int]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "=",
	PLUS:      "+",
	MINUS:     "-",
	BANG:      "!",
	ASTERISK:  "*",
	SLASH:     "/",
	LT:        "<",
	GT:        ">",
	EQ:        "==",
	NEQ:       "!=",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	FUNCTION:  "fn",
	LET:       "let",
	TRUE:      "true",
	FALSE:     "false",
	IF:        "if",
	ELSE:      "else",
	RETURN:    "return",
}

// KindName returns the display name of a token kind.
func KindName(kind int) string {
	if name, ok := kindNames[kind]; ok {
		return name
	}

	return "UNKNOWN"
}

// token patterns (matching strings) for keywords
var keywordPatterns = map[string]int{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// token patterns for symbolic items - longest match wins
var symbolPatterns = map[string]int{
	"=":  ASSIGN,
	"==": EQ,
	"+":  PLUS,
	"-":  MINUS,
	"!":  BANG,
	"!=": NEQ,
	"*":  ASTERISK,
	"/":  SLASH,
	"<":  LT,
	">":  GT,
	",":  COMMA,
	";":  SEMICOLON,
	"(":  LPAREN,
	")":  RPAREN,
	"{":  LBRACE,
	"}":  RBRACE,
}

// LookupIdent returns the keyword kind matching the given identifier if there
// is one and IDENT otherwise.
func LookupIdent(name string) int {
	if kind, ok := keywordPatterns[name]; ok {
		return kind
	}

	return IDENT
}
