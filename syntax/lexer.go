package syntax

// Lexer tokenizes a single source text.  It moves a cursor over the raw bytes
// of the input one byte at a time and never reads backwards: each call to
// NextToken consumes exactly the bytes of one token.  The lexer itself never
// fails.  Bytes that cannot begin a token are returned as ILLEGAL tokens and
// left for the parser to complain about.
type Lexer struct {
	// input is the full source text being tokenized.
	input string

	// position is the index of the byte held in ch; readPosition is the index
	// of the byte after it.  readPosition == position+1 after every step.
	position     int
	readPosition int

	// ch is the byte under examination.  It is 0 before the cursor is primed
	// and once the cursor has moved past the end of the input.
	ch byte

	// line and col give the position of ch.  Both are zero-indexed; tabs
	// count as four columns.
	line int
	col  int
}

// NewLexer creates a lexer for the given source text with the cursor primed
// on the first byte.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken scans and returns the next token in the input.  Once the input is
// exhausted it returns an EOF token on every call.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	line, col := l.line, l.col

	switch {
	case l.ch == 0:
		return MakeToken(EOF, "", line, col)
	case isLetter(l.ch):
		value := l.readIdentifier()
		return MakeToken(LookupIdent(value), value, line, col)
	case isDigit(l.ch):
		return MakeToken(INT, l.readNumber(), line, col)
	default:
		return l.lexSymbol(line, col)
	}
}

// lexSymbol scans an operator or punctuation token using the symbol pattern
// table.  The longest match wins, which is how `==` and `!=` are told apart
// from `=` and `!`.  A byte matching no pattern becomes an ILLEGAL token.
func (l *Lexer) lexSymbol(line, col int) Token {
	value := string(l.ch)

	kind, ok := symbolPatterns[value]
	if !ok {
		ch := l.ch
		l.readChar()
		return NewToken(ILLEGAL, ch, line, col)
	}

	if next := l.peekChar(); next != 0 {
		if extKind, ok := symbolPatterns[value+string(next)]; ok {
			value += string(next)
			kind = extKind
			l.readChar()
		}
	}

	l.readChar()
	return MakeToken(kind, value, line, col)
}

// readChar moves the cursor one byte forward, loading 0 into ch once the end
// of the input is reached.
func (l *Lexer) readChar() {
	// The line and column track the byte being replaced, so they are updated
	// before the cursor moves.  A zero ch means the cursor is unprimed or
	// already at the end; neither adjusts the column.
	switch l.ch {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	case 0:
	default:
		l.col++
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++
}

// peekChar returns the byte after ch without moving the cursor.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}

	return l.input[l.readPosition]
}

// skipWhitespace consumes the run of whitespace in front of the cursor.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier consumes and returns a maximal run of identifier characters.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}

	return l.input[start:l.position]
}

// readNumber consumes and returns a maximal run of decimal digits.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}

	return l.input[start:l.position]
}

// -----------------------------------------------------------------------------

// isLetter returns whether c can appear in an identifier.
func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// isDigit returns whether c is a decimal digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
