package depm

import (
	"hastec/ast"
	"hastec/report"
	"hastec/types"
)

// Symbol represents a named declaration.
type Symbol struct {
	// The name of the symbol.
	Name string

	// The declaration the symbol was hoisted from.  The declaration is owned by
	// the syntax tree and is never modified through the symbol.
	Decl *ast.Decl

	// Whether the symbol was declared with `const`.
	Constant bool

	// Whether the symbol's declaration has been fully analyzed.
	Visited bool

	// The type of the symbol.  This is types.Invalid until the symbol's
	// declaration has been analyzed.
	Type types.Type

	// The compile time value of the symbol's initializer.
	Value types.Value

	// Whether the symbol is referenced by any other declaration.
	Used bool
}

// NewSymbol creates a new untyped symbol for a declaration.
func NewSymbol(decl *ast.Decl) *Symbol {
	return &Symbol{
		Name:     decl.Name,
		Decl:     decl,
		Constant: decl.Constant,
	}
}

// IsTyped returns whether the symbol has been assigned its final type.
func (s *Symbol) IsTyped() bool {
	return s.Type != types.Invalid
}

// SetTyped assigns the symbol its final type and value.  A symbol can only be
// typed once.
func (s *Symbol) SetTyped(typ types.Type, value types.Value) {
	if s.IsTyped() {
		report.ReportICE("symbol `%s` typed twice", s.Name)
	}

	if typ == types.Invalid || typ == types.Auto {
		report.ReportICE("symbol `%s` typed as %s", s.Name, typ)
	}

	s.Type = typ
	s.Value = value
	s.Visited = true
}
