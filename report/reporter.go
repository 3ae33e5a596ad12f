package report

import "sync"

// Reporter accepts diagnostics produced during compilation.  Implementations
// must not fail: if a diagnostic cannot be displayed properly, a best-effort
// rendering is acceptable.
type Reporter interface {
	Report(diag *Diagnostic)
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// LogLevels maps the names of the log levels to their values.
var LogLevels = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// -----------------------------------------------------------------------------

// Collector is a reporter which stores every diagnostic it receives.  It is
// synchronized so a single collector can be shared between goroutines.
type Collector struct {
	m           sync.Mutex
	diagnostics []*Diagnostic
}

// Report implements Reporter.
func (c *Collector) Report(diag *Diagnostic) {
	c.m.Lock()
	defer c.m.Unlock()

	c.diagnostics = append(c.diagnostics, diag)
}

// Diagnostics returns the diagnostics collected so far in reporting order.
func (c *Collector) Diagnostics() []*Diagnostic {
	c.m.Lock()
	defer c.m.Unlock()

	return append([]*Diagnostic(nil), c.diagnostics...)
}

// Codes returns the codes of the collected diagnostics in reporting order.
func (c *Collector) Codes() []Code {
	c.m.Lock()
	defer c.m.Unlock()

	codes := make([]Code, len(c.diagnostics))
	for i, diag := range c.diagnostics {
		codes[i] = diag.Code
	}

	return codes
}

// AnyErrors returns whether any error diagnostics were collected.
func (c *Collector) AnyErrors() bool {
	c.m.Lock()
	defer c.m.Unlock()

	for _, diag := range c.diagnostics {
		if diag.IsError() {
			return true
		}
	}

	return false
}

// -----------------------------------------------------------------------------

// Tee is a reporter which forwards every diagnostic to several reporters.
type Tee []Reporter

// Report implements Reporter.
func (t Tee) Report(diag *Diagnostic) {
	for _, r := range t {
		r.Report(diag)
	}
}

// ErrorTracker wraps a reporter and remembers whether an error was reported
// through it.  Phases use it to decide whether the unit they process failed.
type ErrorTracker struct {
	Reporter
	isErr bool
}

// NewErrorTracker returns a new error tracker forwarding to r.
func NewErrorTracker(r Reporter) *ErrorTracker {
	return &ErrorTracker{Reporter: r}
}

// Report implements Reporter.
func (et *ErrorTracker) Report(diag *Diagnostic) {
	if diag.IsError() {
		et.isErr = true
	}

	et.Reporter.Report(diag)
}

// AnyErrors returns whether an error was reported through the tracker.
func (et *ErrorTracker) AnyErrors() bool {
	return et.isErr
}
