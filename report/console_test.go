package report

import (
	"strings"
	"testing"
)

func TestConsoleReporterRendersExcerpt(t *testing.T) {
	sb := &strings.Builder{}
	cr := NewConsoleReporter(sb, LogLevelVerbose)
	src := NewSourceFile("main.haste", "const a = 1;\nconst x: int = 1.5;\n")

	diag := NewError(TypeMismatch, NewSpan(19, 20), "type mismatch").
		WithLabel(NewSpan(28, 31), "expected `int`, found `float`")
	cr.ForFile(src).Report(diag)

	out := sb.String()
	for _, want := range []string{"TypeMismatch", ":2:7: type mismatch", "const x: int = 1.5;", "^", "expected `int`, found `float`"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}

	if errs, warns := cr.Counts(); errs != 1 || warns != 0 {
		t.Errorf("counts = (%d, %d), want (1, 0)", errs, warns)
	}
}

func TestConsoleReporterBadSpans(t *testing.T) {
	sb := &strings.Builder{}
	cr := NewConsoleReporter(sb, LogLevelVerbose)

	spans := []Span{
		NewSpan(-10, -2),
		NewSpan(500, 900),
		NewSpan(8, 3),
		NewSpan(0, 0),
	}

	for _, src := range []*SourceFile{nil, NewSourceFile("empty.haste", ""), NewSourceFile("a.haste", "var a;\n\tvar b;")} {
		for _, span := range spans {
			cr.ReportDiagnostic(src, NewError(UnexpectedToken, span, "bad").WithLabel(span, "here"))
		}
	}

	if !cr.AnyErrors() {
		t.Error("expected errors to be recorded")
	}
}

func TestConsoleReporterLogLevel(t *testing.T) {
	sb := &strings.Builder{}
	cr := NewConsoleReporter(sb, LogLevelError)
	src := NewSourceFile("main.haste", "const a = 1;")

	cr.ReportDiagnostic(src, NewWarning(UnusedDeclaration, NewSpan(6, 7), "`a` is declared but never used"))
	cr.ReportDiagnostic(src, NewCustom("note", NewSpan(6, 7), "just a note"))
	cr.ReportInfo("Checking", "1 file")

	if sb.Len() != 0 {
		t.Errorf("expected no output at error log level, got:\n%s", sb.String())
	}

	if errs, warns := cr.Counts(); errs != 0 || warns != 1 {
		t.Errorf("counts = (%d, %d), want (0, 1)", errs, warns)
	}

	cr.ReportDiagnostic(src, NewError(UndefinedIdentifier, NewSpan(10, 11), "undefined symbol"))
	if !strings.Contains(sb.String(), "undefined symbol") {
		t.Errorf("error was not displayed:\n%s", sb.String())
	}
}

func TestCatchICE(t *testing.T) {
	sb := &strings.Builder{}
	cr := NewConsoleReporter(sb, LogLevelSilent)

	func() {
		defer cr.CatchICE()
		ReportICE("bad state: %d", 3)
	}()

	if !strings.Contains(sb.String(), "bad state: 3") {
		t.Errorf("ICE was not displayed:\n%s", sb.String())
	}

	if !cr.AnyErrors() {
		t.Error("ICE should count as an error")
	}
}

func TestErrorTracker(t *testing.T) {
	c := &Collector{}
	et := NewErrorTracker(c)

	et.Report(NewWarning(UnusedDeclaration, NewSpan(0, 1), "unused"))
	if et.AnyErrors() {
		t.Error("warning should not count as an error")
	}

	et.Report(NewError(TypeMismatch, NewSpan(0, 1), "mismatch"))
	if !et.AnyErrors() || !c.AnyErrors() {
		t.Error("error was not tracked")
	}

	if codes := c.Codes(); len(codes) != 2 || codes[1] != TypeMismatch {
		t.Errorf("codes = %v", codes)
	}
}
