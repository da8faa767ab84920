package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// DisplayErrorMessage prints a standard Go error to the console.
func DisplayErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// DisplayWarningMessage prints a warning message to the console.
func DisplayWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// DisplayInfoMessage prints an informational message to the user.
func DisplayInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// displayFatal displays a fatal error message.
func displayFatal(msg string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displayParseError displays a parse error as a `path:line:col` header line
// followed by the offending source text.  The line and column in the header
// are one-indexed.
func displayParseError(reprPath, src string, perr *ParseError) {
	if perr.Span == nil {
		fmt.Printf("%s: ", reprPath)
		ErrorColorFG.Print("error:")
		fmt.Printf(" %s\n", perr.Message)
		return
	}

	fmt.Printf("%s:%d:%d: ", reprPath, perr.Span.StartLine+1, perr.Span.StartCol+1)
	ErrorColorFG.Print("error:")
	fmt.Printf(" %s\n", perr.Message)

	displaySourceText(src, perr.Span)
}

// displayErrorOverflow displays the number of parse errors that were withheld
// because the display cap was reached.
func displayErrorOverflow(n int) {
	if n == 1 {
		ErrorColorFG.Println("... and 1 more error")
	} else {
		ErrorColorFG.Printf("... and %d more errors\n", n)
	}

	fmt.Println()
}

// displaySourceText displays the segment of source text covered by a text span
// with line numbers and caret underlining.
func displaySourceText(src string, span *TextSpan) {
	// Collect the source lines containing the given span.  Tabs are replaced
	// by four spaces to match the column accounting done by the lexer.
	var lines []string
	for ln, line := range strings.Split(src, "\n") {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(strings.TrimSuffix(line, "\r"), "\t", "    "))
		}
	}

	if len(lines) == 0 {
		fmt.Println()
		return
	}

	// Calculate the minimum line indentation so that deeply indented code can
	// be shifted left before it is printed.
	minIndent := -1
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if minIndent == -1 || lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Generate the format string used to left-pad line numbers.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v"

	for i, line := range lines {
		// Print the line number, separator bar, and the source text with the
		// leading indent trimmed off.
		InfoColorFG.Print(fmt.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Print(" | ")
		fmt.Println(line[minIndent:])

		// The caret underline continues from the start column on the first
		// line to the end column on the last line, covering the full width of
		// every line in between.
		caretPrefix := 0
		if i == 0 {
			caretPrefix = span.StartCol - minIndent
		}

		caretSuffix := 0
		if i == len(lines)-1 {
			caretSuffix = len(line) - span.EndCol
		}

		caretCount := len(line) - caretSuffix - caretPrefix - minIndent
		if caretPrefix < 0 {
			caretPrefix = 0
		}
		if caretCount < 1 {
			// spans at the very end of a line still get one caret
			caretCount = 1
		}

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")
		fmt.Print(strings.Repeat(" ", caretPrefix))
		ErrorColorFG.Println(strings.Repeat("^", caretCount))
	}

	fmt.Println()
}
