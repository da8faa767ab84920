package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"capuchin/common"
	"capuchin/proj"
	"capuchin/report"
	"capuchin/syntax"

	"github.com/davecgh/go-spew/spew"
)

// replSourceName is the path stand-in used for input that has no file.
const replSourceName = "<repl>"

// Repl is an interactive shell over the Capuchin front end.  It evaluates
// nothing: each input line is lexed and parsed and the result is displayed
// according to the current mode.
type Repl struct {
	// prompt is the string displayed in front of every input line.
	prompt string

	// mode is the current display mode: one of tree, tokens, or raw.
	mode string

	in  *bufio.Scanner
	out io.Writer
}

// New creates a repl reading from in and writing to out, configured by the
// given project.
func New(project *proj.Project, in io.Reader, out io.Writer) *Repl {
	return &Repl{
		prompt: project.Prompt,
		mode:   project.ReplMode,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run runs the read-print loop until the input ends or a quit command is
// entered.
func (r *Repl) Run() {
	r.displayBanner()

	for {
		fmt.Fprint(r.out, report.InfoColorFG.Sprint(r.prompt))

		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return
		}

		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if !r.handleMeta(line) {
				return
			}

			continue
		}

		r.showLine(line)
	}
}

// displayBanner prints the version header and a usage hint.
func (r *Repl) displayBanner() {
	fmt.Fprint(r.out, "capuchin ")
	fmt.Fprintln(r.out, report.InfoColorFG.Sprint("v"+common.CapuchinVersion))
	fmt.Fprintln(r.out, "enter :help for help and :quit to leave")
}

// -----------------------------------------------------------------------------

// showLine renders one line of source input according to the current display
// mode.
func (r *Repl) showLine(line string) {
	switch r.mode {
	case "tokens":
		r.showTokens(line)
	case "raw":
		r.showRaw(line)
	default:
		r.showTree(line)
	}
}

// showTokens prints the token stream of the line, one token per line, until
// the end of the input.
func (r *Repl) showTokens(line string) {
	l := syntax.NewLexer(line)

	for tok := l.NextToken(); tok.Kind != syntax.EOF; tok = l.NextToken() {
		fmt.Fprintf(r.out, "%-8s %q\n", syntax.KindName(tok.Kind), tok.Value)
	}
}

// showTree parses the line and prints the canonical form of the resulting
// program.  Nothing is printed for a program whose error list is non-empty:
// the errors are displayed instead.
func (r *Repl) showTree(line string) {
	p := syntax.NewParser(syntax.NewLexer(line))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		r.displayParseErrors(line, errs)
		return
	}

	fmt.Fprintln(r.out, program.String())
}

// rawDumper dumps syntax trees field by field.  Stringer methods are
// disabled: every AST node has one, and the dump would otherwise collapse
// into the node's canonical form.
var rawDumper = spew.ConfigState{Indent: " ", DisableMethods: true}

// showRaw parses the line and dumps the program structure itself, including
// whatever partial tree survived any parse errors.
func (r *Repl) showRaw(line string) {
	p := syntax.NewParser(syntax.NewLexer(line))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		r.displayParseErrors(line, errs)
	}

	fmt.Fprint(r.out, rawDumper.Sdump(program))
}

// displayParseErrors prints each parse error followed by a caret line
// pointing at the offending span of the input line.
func (r *Repl) displayParseErrors(line string, errs []*report.ParseError) {
	// Tabs are shown as four spaces to match the column accounting done by
	// the lexer.
	line = strings.ReplaceAll(line, "\t", "    ")

	for _, perr := range errs {
		fmt.Fprintf(r.out, "%s: error: %s\n", replSourceName, perr.Message)

		if perr.Span != nil && perr.Span.StartLine == 0 {
			caretCount := perr.Span.EndCol - perr.Span.StartCol
			if caretCount < 1 {
				caretCount = 1
			}

			fmt.Fprintf(r.out, "  %s\n", line)
			fmt.Fprintf(r.out, "  %s%s\n", strings.Repeat(" ", perr.Span.StartCol), strings.Repeat("^", caretCount))
		}
	}
}
