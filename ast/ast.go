package ast

import "hastec/report"

// The abstract interface for all AST nodes.
type ASTNode interface {
	// The text span of the AST.
	Span() report.Span
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span report.Span
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span report.Span) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end report.Span) ASTBase {
	return ASTBase{span: report.Conjoin(start, end)}
}

func (ab ASTBase) Span() report.Span {
	return ab.span
}
