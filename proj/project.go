package proj

import "capuchin/common"

// Project represents a Capuchin project -- specifically, the configuration
// loaded from the project file.  Tools that run without a project file in
// reach fall back to DefaultProject.
type Project struct {
	// Name is the name of the project.
	Name string

	// Root is the path to the directory containing the project file.  It is
	// empty for the default project.
	Root string

	// Main is the path to the project's main source file relative to Root.
	Main string

	// Prompt is the prompt string the REPL displays.
	Prompt string

	// ReplMode is the display mode the REPL starts in.  This is one of the
	// mode names enumerated in validModes.
	ReplMode string

	// LogLevel is the log level name used to initialize the reporter.
	LogLevel string

	// MaxErrors is the maximum number of parse errors displayed for a single
	// source text.  Zero means no limit.
	MaxErrors int
}

// Default configuration values used for missing project file entries and for
// the default project.
const (
	DefaultMode      = "tree"
	DefaultLogLevel  = "verbose"
	DefaultMaxErrors = 10
)

// DefaultProject returns the configuration used when no project file is in
// reach.
func DefaultProject() *Project {
	return &Project{
		Name:      "scratch",
		Main:      "main" + common.SrcFileExtension,
		Prompt:    common.DefaultPrompt,
		ReplMode:  DefaultMode,
		LogLevel:  DefaultLogLevel,
		MaxErrors: DefaultMaxErrors,
	}
}

// validModes is the set of REPL display mode names accepted in the project
// file and on the command line.
var validModes = map[string]struct{}{
	"tree":   {},
	"tokens": {},
	"raw":    {},
}

// IsValidMode returns whether or not the given name names a REPL display
// mode.
func IsValidMode(name string) bool {
	_, ok := validModes[name]
	return ok
}

// IsValidName returns whether or not a given string would be a valid project
// name.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}

	if name[0] == '_' || ('a' <= name[0] && name[0] <= 'z') || ('A' <= name[0] && name[0] <= 'Z') {
		for _, c := range name[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
