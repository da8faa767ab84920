package report

import "fmt"

// ParseError is an error produced while lexing or parsing source text.  The
// parser does not stop at the first error: it accumulates parse errors in
// order and hands them to the reporter once parsing has run to completion.
type ParseError struct {
	// The error message.
	Message string

	// The span over which the error occurs.
	Span *TextSpan
}

func (pe *ParseError) Error() string {
	return pe.Message
}

// Raise creates a new parse error spanning the given source text.
func Raise(span *TextSpan, msg string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(msg, args...), Span: span}
}
