package ast

import (
	"hastec/report"
	"strings"
)

// Decl is a top level `const` or `var` declaration.
type Decl struct {
	ASTBase

	// Whether the declaration is a `const` declaration.  Otherwise, it is a
	// mutable `var` declaration.
	Constant bool

	Name     string
	NameSpan report.Span

	// The type annotation.  This may be nil if no type was given.
	TypeExpr ASTExpr

	// The initializer.  This may be nil if no value was given.
	Value ASTExpr
}

// Keyword returns the keyword the declaration was introduced by.
func (d *Decl) Keyword() string {
	if d.Constant {
		return "const"
	}

	return "var"
}

func (d *Decl) String() string {
	sb := strings.Builder{}
	sb.WriteString(d.Keyword() + " " + d.Name)

	if d.TypeExpr != nil {
		sb.WriteString(": " + d.TypeExpr.String())
	}

	if d.Value != nil {
		sb.WriteString(" = " + d.Value.String())
	}

	sb.WriteString(";")
	return sb.String()
}

// File is the syntax tree of a single source file.
type File struct {
	// The declarations of the file in source order.
	Decls []*Decl
}
