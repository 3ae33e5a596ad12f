package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ConsoleReporter is responsible for reporting errors, warnings, and other
// kinds of messages to the user during program execution.  The reporter
// respects the set log level and is synchronized: its methods can be safely
// called from multiple goroutines.
type ConsoleReporter struct {
	// The mutex used to synchonize different reporting method calls.
	m sync.Mutex

	// The writer messages are displayed to.
	out io.Writer

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels.
	logLevel int

	// The number of errors and warnings reported so far.  These are counted
	// regardless of log level.
	errorCount, warningCount int
}

// NewConsoleReporter creates a new console reporter writing to out.
func NewConsoleReporter(out io.Writer, logLevel int) *ConsoleReporter {
	return &ConsoleReporter{out: out, logLevel: logLevel}
}

// ForFile returns a reporter which displays diagnostics against the given
// source file through the console reporter.
func (cr *ConsoleReporter) ForFile(src *SourceFile) Reporter {
	return &fileReporter{cr: cr, src: src}
}

type fileReporter struct {
	cr  *ConsoleReporter
	src *SourceFile
}

func (fr *fileReporter) Report(diag *Diagnostic) {
	fr.cr.ReportDiagnostic(fr.src, diag)
}

// -----------------------------------------------------------------------------

// ReportDiagnostic displays a diagnostic about the given source file.  The
// source file may be nil in which case no source text is displayed.
func (cr *ConsoleReporter) ReportDiagnostic(src *SourceFile, diag *Diagnostic) {
	cr.m.Lock()
	defer cr.m.Unlock()

	switch diag.Kind {
	case KindError:
		cr.errorCount++
		if cr.logLevel < LogLevelError {
			return
		}
	case KindWarning:
		cr.warningCount++
		if cr.logLevel < LogLevelWarn {
			return
		}
	default:
		if cr.logLevel < LogLevelVerbose {
			return
		}
	}

	sb := &strings.Builder{}
	displayDiagnostic(sb, src, diag)
	io.WriteString(cr.out, sb.String())
}

// ReportStdError reports a non-fatal, standard Go error.
func (cr *ConsoleReporter) ReportStdError(reprPath string, err error) {
	cr.m.Lock()
	defer cr.m.Unlock()

	cr.errorCount++
	if cr.logLevel >= LogLevelError {
		io.WriteString(cr.out, displayStdError(reprPath, err))
	}
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately: eg. an unreadable project file.  Stopping
// is left to the caller.
func (cr *ConsoleReporter) ReportFatal(message string, args ...interface{}) {
	cr.m.Lock()
	defer cr.m.Unlock()

	cr.errorCount++
	if cr.logLevel > LogLevelSilent {
		io.WriteString(cr.out, displayFatal(fmt.Sprintf(message, args...)))
	}
}

// ReportICE displays an internal compiler error.  These are always displayed
// regardless of log level.
func (cr *ConsoleReporter) ReportICE(ice *ICE) {
	cr.m.Lock()
	defer cr.m.Unlock()

	cr.errorCount++
	io.WriteString(cr.out, displayICE(ice.Message))
}

// ReportInfo displays an informational message in verbose mode.
func (cr *ConsoleReporter) ReportInfo(tag, message string, args ...interface{}) {
	cr.m.Lock()
	defer cr.m.Unlock()

	if cr.logLevel == LogLevelVerbose {
		io.WriteString(cr.out, displayInfo(tag, fmt.Sprintf(message, args...)))
	}
}

// ReportFinished displays the compilation summary in verbose mode.
func (cr *ConsoleReporter) ReportFinished() {
	cr.m.Lock()
	defer cr.m.Unlock()

	if cr.logLevel == LogLevelVerbose {
		io.WriteString(cr.out, displayFinished(cr.errorCount, cr.warningCount))
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were reported.
func (cr *ConsoleReporter) AnyErrors() bool {
	cr.m.Lock()
	defer cr.m.Unlock()

	return cr.errorCount > 0
}

// Counts returns the number of errors and warnings reported.
func (cr *ConsoleReporter) Counts() (errors, warnings int) {
	cr.m.Lock()
	defer cr.m.Unlock()

	return cr.errorCount, cr.warningCount
}

// Reset clears the error and warning counts.  It is used between runs in watch
// mode.
func (cr *ConsoleReporter) Reset() {
	cr.m.Lock()
	defer cr.m.Unlock()

	cr.errorCount = 0
	cr.warningCount = 0
}
