package walk

import (
	"errors"
	"hastec/ast"
	"hastec/report"
	"hastec/types"
)

// checkUnary type checks and folds a unary operator application.
func (w *Walker) checkUnary(u *ast.Unary, operand types.Value) (types.Value, bool) {
	if !types.IsNumeric(operand.Type) {
		w.error(report.TypeMismatch, u.Span(), "cannot apply `%s` to `%s`", u.Op.Name, operand.Type)
		return types.Value{}, false
	}

	if u.Op.Kind != types.OpSub {
		return operand, true
	}

	result, err := types.Negate(operand)
	if err != nil {
		w.foldError(err, u.Span())
		return types.Value{}, false
	}

	return result, true
}

// checkBinary type checks and folds a binary operator application.
func (w *Walker) checkBinary(b *ast.Binary, lhs, rhs types.Value) (types.Value, bool) {
	resultType, ok := types.Promote(lhs.Type, rhs.Type, w.opts.AllowMixedArithmetic)
	if !ok {
		w.submit(
			report.NewError(
				report.TypeMismatch,
				b.Op.Span,
				"cannot apply `%s` to `%s` and `%s`",
				b.Op.Name,
				lhs.Type,
				rhs.Type,
			).WithLabel(b.Lhs.Span(), "`%s`", lhs.Type).WithLabel(b.Rhs.Span(), "`%s`", rhs.Type),
		)

		return types.Value{}, false
	}

	result, err := types.Fold(b.Op.Kind, lhs, rhs)
	if err != nil {
		w.foldError(err, b.Span())
		return types.Value{}, false
	}

	if result.Type != resultType {
		report.ReportICE("folded `%s` to %s but expected %s", b, result.Type, resultType)
	}

	return result, true
}

// foldError reports an error produced while computing a constant value.
func (w *Walker) foldError(err error, span report.Span) {
	switch {
	case errors.Is(err, types.ErrDivisionByZero):
		w.error(report.DivisionByZero, span, "%s", err)
	case errors.Is(err, types.ErrOverflow):
		w.error(report.ConstantOverflow, span, "%s", err)
	case errors.Is(err, types.ErrNegativeExponent):
		w.error(report.NegativeExponent, span, "%s", err)
	default:
		report.ReportICE("unexpected error folding constant: %s", err)
	}
}
