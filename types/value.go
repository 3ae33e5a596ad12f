package types

import (
	"errors"
	"math"
	"strconv"
)

// Value is a constant value computed at compile time.
type Value struct {
	Type Type

	// Only the field corresponding to the value's type is meaningful.
	Int   int64
	Float float64
}

// IntValue returns a new integer value.
func IntValue(n int64) Value {
	return Value{Type: Int, Int: n}
}

// FloatValue returns a new float value.
func FloatValue(f float64) Value {
	return Value{Type: Float, Float: f}
}

// ZeroValue returns the zero value of a type.
func ZeroValue(t Type) Value {
	return Value{Type: t}
}

// AsFloat returns the value converted to a float.
func (v Value) AsFloat() float64 {
	if v.Type == Int {
		return float64(v.Int)
	}

	return v.Float
}

func (v Value) String() string {
	switch v.Type {
	case Int:
		return strconv.FormatInt(v.Int, 10)
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		return "<none>"
	}
}

// -----------------------------------------------------------------------------

// Errors returned when folding an operation is not possible.
var (
	ErrDivisionByZero   = errors.New("integer division by zero")
	ErrOverflow         = errors.New("constant overflows int")
	ErrNegativeExponent = errors.New("integer raised to a negative power")
	ErrNotNumeric       = errors.New("operand is not numeric")
)

// Enumeration of arithmetic operators.
const (
	OpAdd = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// Fold computes `a op b` where op is one of the enumerated arithmetic
// operators.  If either operand is a float, the integer operand is converted
// and the operation is performed on floats.  Integer division truncates toward
// zero.
func Fold(op int, a, b Value) (Value, error) {
	if !IsNumeric(a.Type) || !IsNumeric(b.Type) {
		return Value{}, ErrNotNumeric
	}

	if a.Type == Float || b.Type == Float {
		return FloatValue(foldFloat(op, a.AsFloat(), b.AsFloat())), nil
	}

	n, err := foldInt(op, a.Int, b.Int)
	if err != nil {
		return Value{}, err
	}

	return IntValue(n), nil
}

// Negate computes `-v`.
func Negate(v Value) (Value, error) {
	switch v.Type {
	case Int:
		if v.Int == math.MinInt64 {
			return Value{}, ErrOverflow
		}

		return IntValue(-v.Int), nil
	case Float:
		return FloatValue(-v.Float), nil
	default:
		return Value{}, ErrNotNumeric
	}
}

func foldFloat(op int, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return math.Pow(a, b)
	}
}

func foldInt(op int, a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		c := a + b
		if (c > a) != (b > 0) {
			return 0, ErrOverflow
		}

		return c, nil
	case OpSub:
		c := a - b
		if (c < a) != (b > 0) {
			return 0, ErrOverflow
		}

		return c, nil
	case OpMul:
		return mulInt(a, b)
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		} else if a == math.MinInt64 && b == -1 {
			return 0, ErrOverflow
		}

		return a / b, nil
	default:
		return powInt(a, b)
	}
}

func mulInt(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}

	return c, nil
}

// powInt computes a**b by repeated squaring.
func powInt(a, b int64) (int64, error) {
	if b < 0 {
		return 0, ErrNegativeExponent
	}

	result := int64(1)
	for b > 0 {
		var err error
		if b&1 == 1 {
			if result, err = mulInt(result, a); err != nil {
				return 0, err
			}
		}

		b >>= 1
		if b > 0 {
			if a, err = mulInt(a, a); err != nil {
				return 0, err
			}
		}
	}

	return result, nil
}
