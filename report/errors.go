package report

import "fmt"

// ICE is an internal compiler error.  These are errors that specifically
// result from a bug or unexpected condition occurring within the compiler:
// they are never caused by the input source.
type ICE struct {
	Message string
}

func (ice *ICE) Error() string {
	return "internal compiler error: " + ice.Message
}

// ReportICE raises an internal compiler error by panicking with an *ICE.  The
// panic should only ever be caught by the driver using CatchICE.
func ReportICE(message string, args ...interface{}) {
	panic(&ICE{Message: fmt.Sprintf(message, args...)})
}

// CatchICE recovers an internal compiler error raised by ReportICE and displays
// it.  Any other panic is propagated unchanged.
// NB: This function must ALWAYS be deferred.
func (cr *ConsoleReporter) CatchICE() {
	if x := recover(); x != nil {
		if ice, ok := x.(*ICE); ok {
			cr.ReportICE(ice)
		} else {
			panic(x)
		}
	}
}
