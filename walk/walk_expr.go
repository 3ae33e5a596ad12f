package walk

import (
	"hastec/ast"
	"hastec/depm"
	"hastec/report"
	"hastec/types"
)

// walkExpr determines the type and value of a value expression.
func (w *Walker) walkExpr(expr ast.ASTExpr) (types.Value, bool) {
	value, ok := w.walkExprInner(expr)
	if ok {
		w.exprTypes[expr] = value.Type
	}

	return value, ok
}

func (w *Walker) walkExprInner(expr ast.ASTExpr) (types.Value, bool) {
	switch v := expr.(type) {
	case *ast.IntLit:
		return types.IntValue(v.Value), true
	case *ast.FloatLit:
		return types.FloatValue(v.Value), true
	case *ast.Ident:
		return w.walkIdent(v)
	case *ast.TypeKeyword:
		w.error(report.TypeAsValue, v.Span(), "type `%s` cannot be used as a value", v.Type)
		return types.Value{}, false
	case *ast.Grouping:
		return w.walkExpr(v.Inner)
	case *ast.Unary:
		operand, ok := w.walkExpr(v.Operand)
		if !ok {
			return types.Value{}, false
		}

		return w.checkUnary(v, operand)
	case *ast.Binary:
		lhs, ok := w.walkExpr(v.Lhs)
		if !ok {
			return types.Value{}, false
		}

		rhs, ok := w.walkExpr(v.Rhs)
		if !ok {
			return types.Value{}, false
		}

		return w.checkBinary(v, lhs, rhs)
	default:
		report.ReportICE("unknown expression node: %T", expr)
		return types.Value{}, false
	}
}

// walkIdent resolves an identifier.  If the identifier refers to a declaration
// that hasn't been analyzed yet, it is analyzed now.
func (w *Walker) walkIdent(id *ast.Ident) (types.Value, bool) {
	sym, ok := w.table.Find(id.Name)
	if !ok {
		w.error(report.UndefinedIdentifier, id.Span(), "undefined symbol: `%s`", id.Name)
		return types.Value{}, false
	}

	sym.Used = true

	switch w.res.Color(sym) {
	case depm.ColorBlack:
		return sym.Value, true
	case depm.ColorWhite:
		if !w.analyseDeclaration(sym) {
			return types.Value{}, false
		}

		return sym.Value, true
	case depm.ColorGrey:
		w.reportCycle(id, sym)
		return types.Value{}, false
	default:
		// The failure has already been reported.
		return types.Value{}, false
	}
}

// walkTypeExpr resolves a type annotation.
func (w *Walker) walkTypeExpr(expr ast.ASTExpr) (types.Type, bool) {
	switch v := expr.(type) {
	case *ast.TypeKeyword:
		return v.Type, true
	case *ast.Grouping:
		return w.walkTypeExpr(v.Inner)
	default:
		w.error(report.NotAType, expr.Span(), "expected a type but got `%s`", expr)
		return types.Invalid, false
	}
}
