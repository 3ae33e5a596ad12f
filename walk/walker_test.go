package walk

import (
	"hastec/depm"
	"hastec/report"
	"hastec/syntax"
	"hastec/types"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func newWalker(t *testing.T, src string, opts Options) (*Walker, *report.Collector) {
	t.Helper()

	c := &report.Collector{}
	file, ok := syntax.Parse(src, c)
	if !ok {
		t.Fatalf("failed to parse %q: %v", src, c.Codes())
	}

	return NewWalker(file, c, opts), c
}

func check(t *testing.T, src string) (*Program, *report.Collector, bool) {
	t.Helper()

	w, c := newWalker(t, src, DefaultOptions())
	prog, ok := w.Analyze()
	if ok == c.AnyErrors() {
		t.Fatalf("ok = %v but reported %v", ok, c.Codes())
	}

	return prog, c, ok
}

func snapshot(w *Walker) map[string]depm.Symbol {
	syms := make(map[string]depm.Symbol)
	for decl, sym := range w.syms {
		syms[decl.Name] = *sym
	}

	return syms
}

func TestForwardReference(t *testing.T) {
	prog, c, ok := check(t, "const a = b; const b = 5;")
	if !ok {
		t.Fatalf("unexpected errors: %v", c.Codes())
	}

	a, _ := prog.Lookup("a")
	b, _ := prog.Lookup("b")
	if a == nil || b == nil {
		t.Fatalf("globals = %v", prog.Globals)
	}

	if a.Type != types.Int || a.Type != b.Type || a.Value != types.IntValue(5) {
		t.Errorf("a = %s %v, b = %s %v", a.Type, a.Value, b.Type, b.Value)
	}

	if prog.Globals[0] != a || prog.Globals[1] != b {
		t.Error("globals must be in source order")
	}
}

func TestSymbolState(t *testing.T) {
	w, _ := newWalker(t, "var v = c * 2.0; const c = 3;", DefaultOptions())

	v, _ := w.Table().FindGlobal("v")
	if v.IsTyped() || v.Visited || w.Resolution().Color(v) != depm.ColorWhite {
		t.Fatal("hoisted symbols must start untyped")
	}

	if _, ok := w.Analyze(); !ok {
		t.Fatal("analysis failed")
	}

	c, _ := w.Table().FindGlobal("c")
	if !c.Visited || c.Type != types.Int || !c.Constant || !c.Used {
		t.Errorf("c = %+v", c)
	}

	if !v.Visited || v.Type != types.Float || v.Constant || v.Value != types.FloatValue(6) {
		t.Errorf("v = %+v", v)
	}

	if w.Resolution().Color(v) != depm.ColorBlack {
		t.Errorf("v is %s", w.Resolution().Color(v))
	}
}

func TestFolding(t *testing.T) {
	tests := []struct {
		src  string
		name string
		want types.Value
	}{
		{"const x = 2 ** 3 ** 2;", "x", types.IntValue(512)},
		{"const y = 7 / 2;", "y", types.IntValue(3)},
		{"const z = 1 + 2.5;", "z", types.FloatValue(3.5)},
		{"var v: float;", "v", types.FloatValue(0)},
		{"var i: int;", "i", types.IntValue(0)},
		{"const n = -(3 - 5) * 2;", "n", types.IntValue(4)},
		{"const h = 1.5 * 2.0;", "h", types.FloatValue(3)},
		{"const p = +4;", "p", types.IntValue(4)},
		{"const q: float = 1.0 / 4;", "q", types.FloatValue(0.25)},
		{"const r: auto = 10 - 20;", "r", types.IntValue(-10)},
		{"const s: (int) = 2 * (3 + 4);", "s", types.IntValue(14)},
		{"const t = u ** 2; var u = -3;", "t", types.IntValue(9)},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog, c, ok := check(t, tt.src)
			if !ok {
				t.Fatalf("unexpected errors: %v", c.Codes())
			}

			g, found := prog.Lookup(tt.name)
			if !found {
				t.Fatalf("no global named %s", tt.name)
			}

			if g.Type != tt.want.Type || g.Value != tt.want {
				t.Errorf("%s = %s %v, want %s %v", tt.name, g.Type, g.Value, tt.want.Type, tt.want)
			}
		})
	}
}

func TestAnalysisErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		codes []report.Code
	}{
		{"type mismatch", "const x: int = 1.5;", []report.Code{report.TypeMismatch}},
		{"uninferable const", "const x;", []report.Code{report.CannotInferType}},
		{"uninferable var", "var v;", []report.Code{report.CannotInferType}},
		{"undefined", "const x = y;", []report.Code{report.UndefinedIdentifier}},
		{"undefined operands", "var x = y + z;", []report.Code{report.UndefinedIdentifier}},
		{"missing const value", "const c: int;", []report.Code{report.MissingValue}},
		{"redeclared", "const a = 1; const a = 2;", []report.Code{report.AlreadyDeclared}},
		{"division by zero", "const a = 1 / (2 - 2);", []report.Code{report.DivisionByZero}},
		{"negative exponent", "const a = 2 ** -1;", []report.Code{report.NegativeExponent}},
		{"overflow", "const a = 9223372036854775807 + 1;", []report.Code{report.ConstantOverflow}},
		{"negation overflow", "const a = -(-9223372036854775807 - 1);", []report.Code{report.ConstantOverflow}},
		{"type as value", "const a = int;", []report.Code{report.TypeAsValue}},
		{"not a type", "const a: 5 = 5;", []report.Code{report.NotAType}},
		{"failure is reported once", "const a = b; const b: int = 1.5; const c = a + b;", []report.Code{report.TypeMismatch}},
		{"cycle", "const a = b; const b = a;", []report.Code{report.CyclicDeclaration}},
		{"self reference", "var s = s + 1;", []report.Code{report.CyclicDeclaration}},
		{"independent failures", "const a = x; const b: float = 1; const c = 2;", []report.Code{report.UndefinedIdentifier, report.TypeMismatch}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, ok := check(t, tt.src)
			if ok {
				t.Fatal("expected analysis to fail")
			}

			if diff := pretty.Diff(c.Codes(), tt.codes); len(diff) > 0 {
				t.Errorf("got %v, want %v", c.Codes(), tt.codes)
			}
		})
	}
}

func TestTypeMismatchSpan(t *testing.T) {
	_, c, _ := check(t, "const x: int = 1.5;")

	diag := c.Diagnostics()[0]
	if diag.Span != report.NewSpan(6, 7) {
		t.Errorf("primary span = %s, want the identifier x", diag.Span)
	}

	if len(diag.Labels) != 1 || diag.Labels[0].Span != report.NewSpan(15, 18) {
		t.Errorf("labels = %v", diag.Labels)
	}
}

func TestCycleDiagnostic(t *testing.T) {
	prog, c, _ := check(t, "const a = b; const b = c; const c = a; const d = 1;")

	diags := c.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("got %v, want a single cycle error", c.Codes())
	}

	if !strings.Contains(diags[0].Message, "a -> b -> c -> a") {
		t.Errorf("message = %q", diags[0].Message)
	}

	if len(diags[0].Labels) != 3 {
		t.Errorf("labels = %v", diags[0].Labels)
	}

	if len(prog.Globals) != 1 || prog.Globals[0].Name != "d" {
		t.Errorf("globals = %v", prog.Globals)
	}
}

func TestDuplicateResolvesPrimary(t *testing.T) {
	prog, c, _ := check(t, "const b = a; const a = 1; const a = 2.5;")

	diags := c.Diagnostics()
	if len(diags) != 1 || diags[0].Code != report.AlreadyDeclared {
		t.Fatalf("got %v", c.Codes())
	}

	if diags[0].Span != report.NewSpan(32, 33) || diags[0].Labels[0].Span != report.NewSpan(19, 20) {
		t.Errorf("span = %s, labels = %v", diags[0].Span, diags[0].Labels)
	}

	if b, _ := prog.Lookup("b"); b == nil || b.Value != types.IntValue(1) {
		t.Errorf("b should resolve to the first declaration of a: %v", b)
	}
}

func TestIdempotence(t *testing.T) {
	for _, src := range []string{
		"const a = b + 1; var c: float; const b = 2;",
		"const a = y; const a = 2; const b = b;",
	} {
		w, c := newWalker(t, src, Options{WarnUnused: true})
		_, firstOk := w.Analyze()

		before := snapshot(w)
		count := len(c.Diagnostics())

		_, secondOk := w.Analyze()

		if diff := pretty.Diff(snapshot(w), before); len(diff) > 0 {
			t.Errorf("%q: second analysis mutated symbols: %v", src, diff)
		}

		if len(c.Diagnostics()) != count {
			t.Errorf("%q: second analysis reported %v", src, c.Codes()[count:])
		}

		if firstOk != secondOk {
			t.Errorf("%q: result changed from %v to %v", src, firstOk, secondOk)
		}
	}
}

func TestMixedArithmeticDisallowed(t *testing.T) {
	w, c := newWalker(t, "const z = 1 + 2.5; const y = 1.5 * 2.0;", Options{MaxReferenceDepth: 16})

	prog, ok := w.Analyze()
	if ok {
		t.Fatal("expected mixed arithmetic to fail")
	}

	if codes := c.Codes(); len(codes) != 1 || codes[0] != report.TypeMismatch {
		t.Errorf("got %v", codes)
	}

	if diag := c.Diagnostics()[0]; diag.Span != report.NewSpan(12, 13) || len(diag.Labels) != 2 {
		t.Errorf("diagnostic = %# v", pretty.Formatter(diag))
	}

	if _, found := prog.Lookup("y"); !found {
		t.Error("y should still be analyzed")
	}
}

func TestWarnUnused(t *testing.T) {
	w, c := newWalker(t, "const a = 1; var b = a;", Options{WarnUnused: true})

	if _, ok := w.Analyze(); !ok {
		t.Fatalf("warnings must not fail analysis: %v", c.Codes())
	}

	diags := c.Diagnostics()
	if len(diags) != 1 || diags[0].Kind != report.KindWarning || diags[0].Code != report.UnusedDeclaration {
		t.Fatalf("got %v", c.Codes())
	}

	if !strings.Contains(diags[0].Message, "var `b`") {
		t.Errorf("message = %q", diags[0].Message)
	}
}

func TestMaxReferenceDepth(t *testing.T) {
	w, c := newWalker(t, "const a = b; const b = c; const c = d; const d = 1;", Options{AllowMixedArithmetic: true, MaxReferenceDepth: 3})

	prog, ok := w.Analyze()
	if ok {
		t.Fatal("expected the reference chain to be too deep")
	}

	if codes := c.Codes(); len(codes) != 1 || codes[0] != report.ReferenceTooDeep {
		t.Errorf("got %v", codes)
	}

	if len(prog.Globals) != 1 || prog.Globals[0].Name != "d" {
		t.Errorf("globals = %v", prog.Globals)
	}
}

func TestExpressionTypes(t *testing.T) {
	c := &report.Collector{}
	file, _ := syntax.Parse("const a = (1 + 2.5) * b; const b = 2;", c)

	prog, ok := Check(file, c, DefaultOptions())
	if !ok {
		t.Fatalf("unexpected errors: %v", c.Codes())
	}

	value := file.Decls[0].Value
	if prog.Types[value] != types.Float {
		t.Errorf("type of %s = %s", value, prog.Types[value])
	}

	if rhs := file.Decls[1].Value; prog.Types[rhs] != types.Int {
		t.Errorf("type of %s = %s", rhs, prog.Types[rhs])
	}
}
