package report

import (
	"fmt"
	"os"
)

// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions will simply fail silently if below their
// appropriate log level.  Errors are always counted, even when they are not
// displayed, so that exit codes do not depend on the log level.

// ReportParseError reports a single parse error in the source text named by
// reprPath.  The src argument is the full source text the error occurred in:
// it is used to render the offending source lines.
func ReportParseError(reprPath, src string, perr *ParseError) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayParseError(reprPath, src, perr)
	}
}

// ReportParseErrors reports a list of parse errors produced over a single
// source text, respecting the configured display cap.
func ReportParseErrors(reprPath, src string, perrs []*ParseError) {
	rep.m.Lock()
	defer rep.m.Unlock()

	shown := 0
	for _, perr := range perrs {
		rep.errorCount++

		if rep.logLevel == LogLevelSilent {
			continue
		}

		if rep.maxErrors > 0 && shown == rep.maxErrors {
			continue
		}

		displayParseError(reprPath, src, perr)
		shown++
	}

	if rep.logLevel > LogLevelSilent && shown < len(perrs) {
		displayErrorOverflow(len(perrs) - shown)
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(tag string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		DisplayErrorMessage(tag, err)
	}
}

// ReportWarning reports a warning message.
func ReportWarning(tag, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelWarn {
		DisplayWarningMessage(tag, msg)
	}
}

// ReportInfo displays an informational message when the log level allows it.
func ReportInfo(tag, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		DisplayInfoMessage(tag, msg)
	}
}

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that generally result from invalid configuration of some form:
// unreadable source file, malformed project file, etc.
func ReportFatal(msg string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(msg, args...))
	}

	os.Exit(1)
}
