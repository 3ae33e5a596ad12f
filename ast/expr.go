package ast

import (
	"fmt"
	"hastec/report"
	"hastec/types"
	"strconv"
)

// ASTExpr is the interface for all expression nodes.  The set of expressions is
// closed: consumers switch over the concrete node types below.
type ASTExpr interface {
	ASTNode
	fmt.Stringer

	exprNode()
}

// -----------------------------------------------------------------------------

// IntLit is an integer literal.
type IntLit struct {
	ASTBase

	Value int64
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	ASTBase

	Value float64
}

// Ident is a reference to a named declaration.
type Ident struct {
	ASTBase

	Name string
}

// TypeKeyword is one of the builtin type names: `int`, `float`, or `auto`.
type TypeKeyword struct {
	ASTBase

	Type types.Type
}

// -----------------------------------------------------------------------------

// Oper is an operator used in the AST.
type Oper struct {
	// Kind is one of the arithmetic operators enumerated in package types.
	Kind int

	// The source text of the operator.
	Name string

	Span report.Span
}

// Unary is a prefix operator application.
type Unary struct {
	ASTBase

	Op      *Oper
	Operand ASTExpr
}

// Binary is an infix operator application.
type Binary struct {
	ASTBase

	Op       *Oper
	Lhs, Rhs ASTExpr
}

// Grouping is a parenthesized expression.
type Grouping struct {
	ASTBase

	Inner ASTExpr
}

// -----------------------------------------------------------------------------

func (*IntLit) exprNode()      {}
func (*FloatLit) exprNode()    {}
func (*Ident) exprNode()       {}
func (*TypeKeyword) exprNode() {}
func (*Unary) exprNode()       {}
func (*Binary) exprNode()      {}
func (*Grouping) exprNode()    {}

func (il *IntLit) String() string {
	return strconv.FormatInt(il.Value, 10)
}

func (fl *FloatLit) String() string {
	return strconv.FormatFloat(fl.Value, 'g', -1, 64)
}

func (id *Ident) String() string {
	return id.Name
}

func (tk *TypeKeyword) String() string {
	return tk.Type.String()
}

func (u *Unary) String() string {
	return fmt.Sprintf("(%s%s)", u.Op.Name, u.Operand)
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Lhs, b.Op.Name, b.Rhs)
}

func (g *Grouping) String() string {
	return fmt.Sprintf("(group %s)", g.Inner)
}
