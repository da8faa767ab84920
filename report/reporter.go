package report

import "sync"

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during program execution.  The reporter respects the
// set log level and is synchronized: its methods can be safely called from
// multiple goroutines.
type Reporter struct {
	// The mutex used to synchronize different reporting calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of errors reported so far.
	errorCount int

	// The maximum number of parse errors to display for a single source text.
	// Errors beyond this count are still counted but not rendered.  A value of
	// zero means no limit.
	maxErrors int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// logLevelNames maps log level names as they appear on the command line and in
// the project file to enumerated log levels.
var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// LogLevelFromString converts a log level name into an enumerated log level.
// Anything that is not a recognized log level name converts to the default
// level of verbose.
func LogLevelFromString(name string) int {
	if level, ok := logLevelNames[name]; ok {
		return level
	}

	return LogLevelVerbose
}

// IsValidLogLevel returns whether or not the given name names a log level.
func IsValidLogLevel(name string) bool {
	_, ok := logLevelNames[name]
	return ok
}

// rep is the global reporter instance.  The zero configuration is usable so
// that messages raised before InitReporter runs are not lost.
var rep = &Reporter{
	m:        &sync.Mutex{},
	logLevel: LogLevelVerbose,
}

// InitReporter resets the global reporter to the given log level.
func InitReporter(logLevel int) {
	rep = &Reporter{
		m:        &sync.Mutex{},
		logLevel: logLevel,
	}
}

// SetMaxErrors sets the maximum number of parse errors displayed for a single
// source text.
func SetMaxErrors(n int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.maxErrors = n
}

// ShouldProceed indicates whether or not any errors have been reported that
// should stop the current phase from proceeding to the next one.
func ShouldProceed() bool {
	return rep.errorCount == 0
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	return rep.errorCount
}
