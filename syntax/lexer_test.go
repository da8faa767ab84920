package syntax_test

import (
	"testing"

	"capuchin/syntax"

	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
`

	expected := []struct {
		kind  int
		value string
	}{
		{syntax.LET, "let"},
		{syntax.IDENT, "five"},
		{syntax.ASSIGN, "="},
		{syntax.INT, "5"},
		{syntax.SEMICOLON, ";"},
		{syntax.LET, "let"},
		{syntax.IDENT, "ten"},
		{syntax.ASSIGN, "="},
		{syntax.INT, "10"},
		{syntax.SEMICOLON, ";"},
		{syntax.LET, "let"},
		{syntax.IDENT, "add"},
		{syntax.ASSIGN, "="},
		{syntax.FUNCTION, "fn"},
		{syntax.LPAREN, "("},
		{syntax.IDENT, "x"},
		{syntax.COMMA, ","},
		{syntax.IDENT, "y"},
		{syntax.RPAREN, ")"},
		{syntax.LBRACE, "{"},
		{syntax.IDENT, "x"},
		{syntax.PLUS, "+"},
		{syntax.IDENT, "y"},
		{syntax.SEMICOLON, ";"},
		{syntax.RBRACE, "}"},
		{syntax.SEMICOLON, ";"},
		{syntax.LET, "let"},
		{syntax.IDENT, "result"},
		{syntax.ASSIGN, "="},
		{syntax.IDENT, "add"},
		{syntax.LPAREN, "("},
		{syntax.IDENT, "five"},
		{syntax.COMMA, ","},
		{syntax.IDENT, "ten"},
		{syntax.RPAREN, ")"},
		{syntax.SEMICOLON, ";"},
		{syntax.BANG, "!"},
		{syntax.MINUS, "-"},
		{syntax.SLASH, "/"},
		{syntax.ASTERISK, "*"},
		{syntax.INT, "5"},
		{syntax.SEMICOLON, ";"},
		{syntax.INT, "5"},
		{syntax.LT, "<"},
		{syntax.INT, "10"},
		{syntax.GT, ">"},
		{syntax.INT, "5"},
		{syntax.SEMICOLON, ";"},
		{syntax.IF, "if"},
		{syntax.LPAREN, "("},
		{syntax.INT, "5"},
		{syntax.LT, "<"},
		{syntax.INT, "10"},
		{syntax.RPAREN, ")"},
		{syntax.LBRACE, "{"},
		{syntax.RETURN, "return"},
		{syntax.TRUE, "true"},
		{syntax.SEMICOLON, ";"},
		{syntax.RBRACE, "}"},
		{syntax.ELSE, "else"},
		{syntax.LBRACE, "{"},
		{syntax.RETURN, "return"},
		{syntax.FALSE, "false"},
		{syntax.SEMICOLON, ";"},
		{syntax.RBRACE, "}"},
		{syntax.INT, "10"},
		{syntax.EQ, "=="},
		{syntax.INT, "10"},
		{syntax.SEMICOLON, ";"},
		{syntax.INT, "10"},
		{syntax.NEQ, "!="},
		{syntax.INT, "9"},
		{syntax.SEMICOLON, ";"},
		{syntax.EOF, ""},
	}

	l := syntax.NewLexer(input)

	for i, exp := range expected {
		tok := l.NextToken()

		if tok.Kind != exp.kind {
			t.Fatalf("token %d: expected kind %s, got %s", i, syntax.KindName(exp.kind), syntax.KindName(tok.Kind))
		}

		if tok.Value != exp.value {
			t.Fatalf("token %d: expected value %q, got %q", i, exp.value, tok.Value)
		}
	}
}

func TestNextTokenPositions(t *testing.T) {
	input := "let x = 5;\n  x + y;\n"

	expected := []struct {
		kind      int
		value     string
		line, col int
	}{
		{syntax.LET, "let", 0, 0},
		{syntax.IDENT, "x", 0, 4},
		{syntax.ASSIGN, "=", 0, 6},
		{syntax.INT, "5", 0, 8},
		{syntax.SEMICOLON, ";", 0, 9},
		{syntax.IDENT, "x", 1, 2},
		{syntax.PLUS, "+", 1, 4},
		{syntax.IDENT, "y", 1, 6},
		{syntax.SEMICOLON, ";", 1, 7},
		{syntax.EOF, "", 2, 0},
	}

	l := syntax.NewLexer(input)

	for i, exp := range expected {
		tok := l.NextToken()

		require.Equal(t, exp.kind, tok.Kind, "token %d kind", i)
		require.Equal(t, exp.value, tok.Value, "token %d value", i)
		require.Equal(t, exp.line, tok.Line, "token %d line", i)
		require.Equal(t, exp.col, tok.Col, "token %d col", i)
	}
}

func TestNextTokenCountsTabsAsFourColumns(t *testing.T) {
	l := syntax.NewLexer("\tx")

	tok := l.NextToken()
	require.Equal(t, syntax.IDENT, tok.Kind)
	require.Equal(t, 4, tok.Col)
}

func TestNextTokenIdempotentAtEOF(t *testing.T) {
	l := syntax.NewLexer("x")

	tok := l.NextToken()
	require.Equal(t, syntax.IDENT, tok.Kind)

	for i := 0; i < 5; i++ {
		tok = l.NextToken()

		require.Equal(t, syntax.EOF, tok.Kind, "call %d", i)
		require.Equal(t, "", tok.Value, "call %d", i)
	}
}

func TestNextTokenEmptyInput(t *testing.T) {
	l := syntax.NewLexer("")

	tok := l.NextToken()
	require.Equal(t, syntax.EOF, tok.Kind)
	require.Equal(t, "", tok.Value)
	require.Equal(t, 0, tok.Line)
	require.Equal(t, 0, tok.Col)
}

func TestNextTokenIllegalBytes(t *testing.T) {
	input := "let a = 5 @ 7; #"

	expected := []struct {
		kind  int
		value string
	}{
		{syntax.LET, "let"},
		{syntax.IDENT, "a"},
		{syntax.ASSIGN, "="},
		{syntax.INT, "5"},
		{syntax.ILLEGAL, "@"},
		{syntax.INT, "7"},
		{syntax.SEMICOLON, ";"},
		{syntax.ILLEGAL, "#"},
		{syntax.EOF, ""},
	}

	l := syntax.NewLexer(input)

	for i, exp := range expected {
		tok := l.NextToken()

		require.Equal(t, exp.kind, tok.Kind, "token %d kind", i)
		require.Equal(t, exp.value, tok.Value, "token %d value", i)
	}
}

func TestNextTokenTwoCharOperators(t *testing.T) {
	input := "a == b != c = d !e"

	expected := []int{
		syntax.IDENT, syntax.EQ, syntax.IDENT, syntax.NEQ, syntax.IDENT,
		syntax.ASSIGN, syntax.IDENT, syntax.BANG, syntax.IDENT, syntax.EOF,
	}

	l := syntax.NewLexer(input)

	for i, kind := range expected {
		tok := l.NextToken()
		require.Equal(t, kind, tok.Kind, "token %d", i)
	}
}

func TestIdentifiersEndAtDigits(t *testing.T) {
	input := "x1 foo_bar2"

	expected := []struct {
		kind  int
		value string
	}{
		{syntax.IDENT, "x"},
		{syntax.INT, "1"},
		{syntax.IDENT, "foo_bar"},
		{syntax.INT, "2"},
		{syntax.EOF, ""},
	}

	l := syntax.NewLexer(input)

	for i, exp := range expected {
		tok := l.NextToken()

		require.Equal(t, exp.kind, tok.Kind, "token %d kind", i)
		require.Equal(t, exp.value, tok.Value, "token %d value", i)
	}
}

func TestLookupIdent(t *testing.T) {
	cases := []struct {
		name string
		kind int
	}{
		{"fn", syntax.FUNCTION},
		{"let", syntax.LET},
		{"true", syntax.TRUE},
		{"false", syntax.FALSE},
		{"if", syntax.IF},
		{"else", syntax.ELSE},
		{"return", syntax.RETURN},
		{"Let", syntax.IDENT},
		{"letter", syntax.IDENT},
		{"_", syntax.IDENT},
	}

	for _, c := range cases {
		require.Equal(t, c.kind, syntax.LookupIdent(c.name), "LookupIdent(%q)", c.name)
	}
}

func TestTokenConstructors(t *testing.T) {
	tok := syntax.NewToken(syntax.ILLEGAL, '@', 3, 7)
	require.Equal(t, syntax.ILLEGAL, tok.Kind)
	require.Equal(t, "@", tok.Value)
	require.Equal(t, 3, tok.Line)
	require.Equal(t, 7, tok.Col)

	tok = syntax.MakeToken(syntax.EQ, "==", 0, 2)
	require.Equal(t, syntax.EQ, tok.Kind)
	require.Equal(t, "==", tok.Value)
	require.Equal(t, 0, tok.Line)
	require.Equal(t, 2, tok.Col)
}

func TestTokenSpan(t *testing.T) {
	l := syntax.NewLexer("x\n  abc")

	l.NextToken() // x

	tok := l.NextToken()
	require.Equal(t, "abc", tok.Value)

	span := tok.Span()
	require.Equal(t, 1, span.StartLine)
	require.Equal(t, 2, span.StartCol)
	require.Equal(t, 1, span.EndLine)
	require.Equal(t, 5, span.EndCol)
}
