package walk

import (
	"hastec/ast"
	"hastec/depm"
	"hastec/report"
	"hastec/types"
)

// Options configures the semantic analysis of a file.
type Options struct {
	// Whether arithmetic between ints and floats is allowed.  The result of
	// such an operation is a float.
	AllowMixedArithmetic bool

	// Whether to warn about declarations that are never referenced.
	WarnUnused bool

	// The maximum length of a chain of declarations resolved on demand.
	MaxReferenceDepth int
}

// DefaultOptions returns the default analysis options.
func DefaultOptions() Options {
	return Options{
		AllowMixedArithmetic: true,
		MaxReferenceDepth:    512,
	}
}

// OptionsFromProject returns the analysis options configured by a project.
func OptionsFromProject(proj *depm.Project) Options {
	return Options{
		AllowMixedArithmetic: proj.AllowMixedArithmetic,
		WarnUnused:           proj.WarnUnused,
		MaxReferenceDepth:    proj.MaxReferenceDepth,
	}
}

// Walker is responsible for the semantic analysis of a file: it resolves every
// identifier, determines the type of every declaration, and computes the value
// of every initializer.  Declarations can reference declarations that occur
// later in the file: all names are hoisted before any declaration is analyzed,
// and referenced declarations are analyzed on demand.
type Walker struct {
	rep  report.Reporter
	opts Options

	// The index of declarations built by hoisting.
	index *depm.DeclIndex

	// The symbol table of the file.  Only the global scope is used.
	table *depm.SymbolTable

	// The resolution state of the symbols in the table.
	res *depm.Resolution

	// syms maps primary declarations to their symbols.
	syms map[*ast.Decl]*depm.Symbol

	// exprTypes records the type of every analyzed value expression.
	exprTypes map[ast.ASTExpr]types.Type

	// reported is the set of duplicate declarations which have already been
	// reported.
	reported map[*ast.Decl]struct{}

	// Whether unused declarations have already been checked for.
	checkedUnused bool

	// Whether or not any errors were reported.
	isErr bool
}

// NewWalker creates a new walker for a file and hoists its declarations.
func NewWalker(file *ast.File, rep report.Reporter, opts Options) *Walker {
	if opts.MaxReferenceDepth < 1 {
		opts.MaxReferenceDepth = DefaultOptions().MaxReferenceDepth
	}

	w := &Walker{
		rep:       rep,
		opts:      opts,
		table:     depm.NewSymbolTable(),
		res:       depm.NewResolution(),
		syms:      make(map[*ast.Decl]*depm.Symbol),
		exprTypes: make(map[ast.ASTExpr]types.Type),
		reported:  make(map[*ast.Decl]struct{}),
	}

	w.hoist(file)
	return w
}

// Check analyzes a file using a new walker.
func Check(file *ast.File, rep report.Reporter, opts Options) (*Program, bool) {
	return NewWalker(file, rep, opts).Analyze()
}

// hoist defines an untyped symbol for every distinct declared name so that all
// names are resolvable before any declaration is analyzed.
func (w *Walker) hoist(file *ast.File) {
	w.index = depm.BuildDeclIndex(file)

	for _, decl := range w.index.Primaries() {
		sym := depm.NewSymbol(decl)
		w.syms[decl] = sym
		w.table.Define(decl.Name, sym)
	}
}

// Analyze analyzes every declaration in source order.  Declarations which have
// already been analyzed (possibly by an earlier call to Analyze) are skipped so
// calling Analyze again does nothing.  The boolean is false if any error was
// ever reported by the walker.
func (w *Walker) Analyze() (*Program, bool) {
	for _, decl := range w.index.Decls() {
		if primary, isDup := w.index.PrimaryOf(decl); isDup {
			w.checkDuplicate(decl, primary)
		} else if sym := w.syms[decl]; w.res.Color(sym) == depm.ColorWhite {
			w.analyseDeclaration(sym)
		}
	}

	syms := make([]*depm.Symbol, 0, len(w.syms))
	for _, sym := range w.syms {
		syms = append(syms, sym)
	}

	if !w.res.Done(syms) {
		report.ReportICE("analysis finished with unresolved declarations")
	}

	if w.opts.WarnUnused && !w.checkedUnused {
		w.checkUnused()
	}

	return w.program(), !w.isErr
}

// Table returns the walker's symbol table.
func (w *Walker) Table() *depm.SymbolTable {
	return w.table
}

// Resolution returns the resolution state of the walker's symbols.
func (w *Walker) Resolution() *depm.Resolution {
	return w.res
}

// program builds the typed program from the symbols that have been resolved.
func (w *Walker) program() *Program {
	prog := &Program{Types: make(map[ast.ASTExpr]types.Type, len(w.exprTypes))}

	for _, decl := range w.index.Primaries() {
		if sym := w.syms[decl]; sym.IsTyped() {
			prog.Globals = append(prog.Globals, &Global{
				Name:     sym.Name,
				Constant: sym.Constant,
				Type:     sym.Type,
				Value:    sym.Value,
				Decl:     decl,
			})
		}
	}

	for expr, typ := range w.exprTypes {
		prog.Types[expr] = typ
	}

	return prog
}

// -----------------------------------------------------------------------------

// error reports an error over the given span.
func (w *Walker) error(code report.Code, span report.Span, msg string, args ...interface{}) {
	w.submit(report.NewError(code, span, msg, args...))
}

// submit reports a fully constructed diagnostic.
func (w *Walker) submit(diag *report.Diagnostic) {
	if diag.IsError() {
		w.isErr = true
	}

	w.rep.Report(diag)
}
