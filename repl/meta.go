package repl

import (
	"fmt"
	"strings"

	"capuchin/proj"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// metaCommands lists the names of all meta commands, both for the help text
// and for suggesting fixes to mistyped ones.
var metaCommands = []string{":help", ":mode", ":quit"}

const helpText = `commands:
  :help         show this help
  :mode <mode>  switch the display mode (tree, tokens, raw)
  :quit         leave the repl

anything else is read as Capuchin source: the line is lexed and parsed and
the result is displayed according to the current mode`

// handleMeta processes one meta command line.  It returns false once the
// repl should exit.
func (r *Repl) handleMeta(line string) bool {
	fields := strings.Fields(line)

	switch fields[0] {
	case ":quit":
		return false
	case ":help":
		fmt.Fprintln(r.out, helpText)
	case ":mode":
		r.switchMode(fields[1:])
	default:
		if suggestion, ok := suggestMeta(fields[0]); ok {
			fmt.Fprintf(r.out, "unknown command %s (did you mean %s?)\n", fields[0], suggestion)
		} else {
			fmt.Fprintf(r.out, "unknown command %s\n", fields[0])
		}
	}

	return true
}

// switchMode changes the current display mode if given a valid mode name.
func (r *Repl) switchMode(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: :mode tree|tokens|raw")
		return
	}

	if !proj.IsValidMode(args[0]) {
		fmt.Fprintf(r.out, "`%s` is not a valid repl mode\n", args[0])
		return
	}

	r.mode = args[0]
	fmt.Fprintf(r.out, "mode set to %s\n", r.mode)
}

// suggestMeta returns the known meta command closest to the given input,
// provided one of them is within two edits of it.
func suggestMeta(name string) (string, bool) {
	best := ""
	bestDist := -1

	for _, cmd := range metaCommands {
		if dist := fuzzy.LevenshteinDistance(name, cmd); bestDist == -1 || dist < bestDist {
			best, bestDist = cmd, dist
		}
	}

	if bestDist >= 0 && bestDist <= 2 {
		return best, true
	}

	return "", false
}
