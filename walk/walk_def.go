package walk

import (
	"hastec/ast"
	"hastec/depm"
	"hastec/report"
	"hastec/types"
	"strings"
)

// analyseDeclaration determines the type and value of a white symbol's
// declaration and colors the symbol accordingly.  It returns false if analysis
// failed: the error has always been reported by the time it returns.
func (w *Walker) analyseDeclaration(sym *depm.Symbol) bool {
	if w.res.Depth() >= w.opts.MaxReferenceDepth {
		w.error(
			report.ReferenceTooDeep,
			sym.Decl.NameSpan,
			"resolving `%s` requires more than %d nested declarations",
			sym.Name,
			w.opts.MaxReferenceDepth,
		)

		return false
	}

	w.res.Begin(sym)

	typ, value, ok := w.resolveDeclaration(sym.Decl)
	if ok {
		sym.SetTyped(typ, value)
	}

	w.res.Finish(sym, ok)
	return ok
}

// resolveDeclaration computes the final type and value of a declaration.
func (w *Walker) resolveDeclaration(decl *ast.Decl) (types.Type, types.Value, bool) {
	expected := types.Auto
	if decl.TypeExpr != nil {
		var ok bool
		if expected, ok = w.walkTypeExpr(decl.TypeExpr); !ok {
			return types.Invalid, types.Value{}, false
		}
	}

	var value types.Value
	if decl.Value != nil {
		var ok bool
		if value, ok = w.walkExpr(decl.Value); !ok {
			return types.Invalid, types.Value{}, false
		}
	}

	switch {
	case expected == types.Auto && decl.Value == nil:
		w.submit(
			report.NewError(report.CannotInferType, decl.NameSpan, "cannot infer the type of `%s`", decl.Name).
				WithLabel(decl.Span(), "add a type annotation or an initializer"),
		)

		return types.Invalid, types.Value{}, false
	case expected == types.Auto:
		return value.Type, value, true
	case decl.Value == nil && decl.Constant:
		w.error(report.MissingValue, decl.NameSpan, "constant `%s` must be initialized", decl.Name)
		return types.Invalid, types.Value{}, false
	case decl.Value == nil:
		return expected, types.ZeroValue(expected), true
	case !types.Matches(expected, value.Type):
		w.submit(
			report.NewError(
				report.TypeMismatch,
				decl.NameSpan,
				"type mismatch: `%s` is declared as `%s` but initialized with `%s`",
				decl.Name,
				expected,
				value.Type,
			).WithLabel(decl.Value.Span(), "expected `%s`, found `%s`", expected, value.Type),
		)

		return types.Invalid, types.Value{}, false
	default:
		return expected, value, true
	}
}

// checkDuplicate reports a declaration of a name which was already declared.
// The primary declaration is analyzed first if it hasn't been.
func (w *Walker) checkDuplicate(dup, primary *ast.Decl) {
	if _, ok := w.reported[dup]; ok {
		return
	}

	if sym := w.syms[primary]; w.res.Color(sym) == depm.ColorWhite {
		w.analyseDeclaration(sym)
	}

	w.submit(
		report.NewError(report.AlreadyDeclared, dup.NameSpan, "`%s` is already declared", dup.Name).
			WithLabel(primary.NameSpan, "first declared here"),
	)

	w.reported[dup] = struct{}{}
}

// reportCycle reports a reference to a symbol whose declaration is currently
// being analyzed.
func (w *Walker) reportCycle(ref *ast.Ident, sym *depm.Symbol) {
	cycle := w.res.Cycle(sym)

	names := make([]string, len(cycle)+1)
	for i, s := range cycle {
		names[i] = s.Name
	}
	names[len(cycle)] = sym.Name

	diag := report.NewError(
		report.CyclicDeclaration,
		ref.Span(),
		"declaration of `%s` depends on itself: %s",
		sym.Name,
		strings.Join(names, " -> "),
	)

	for i, s := range cycle {
		diag.WithLabel(s.Decl.NameSpan, "`%s` depends on `%s`", s.Name, names[i+1])
	}

	w.submit(diag)
}

// checkUnused warns about every declaration which is never referenced.
func (w *Walker) checkUnused() {
	w.checkedUnused = true

	for _, decl := range w.index.Primaries() {
		if sym := w.syms[decl]; !sym.Used {
			w.submit(report.NewWarning(
				report.UnusedDeclaration,
				decl.NameSpan,
				"%s `%s` is declared but never used",
				decl.Keyword(),
				decl.Name,
			))
		}
	}
}
