package types

// Type is a Haste data type.
type Type int

// Enumeration of types.  Auto is only ever a request to infer a type: it is
// never the final type of a successfully analyzed declaration.
const (
	Invalid Type = iota // No type has been determined yet.
	Int
	Float
	Auto
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Auto:
		return "auto"
	default:
		return "<invalid>"
	}
}

// Matches returns whether two types are equivalent.  There are currently no
// implicit coercions so this is structural equality.
func Matches(a, b Type) bool {
	return a == b
}

// IsNumeric returns whether t is an arithmetic type.
func IsNumeric(t Type) bool {
	return t == Int || t == Float
}

// Promote returns the result type of an arithmetic operation applied to
// operands of types a and b:
//
//	int   op int   -> int
//	float op float -> float
//	int   op float -> float (only if allowMixed)
//	float op int   -> float (only if allowMixed)
//
// The returned boolean is false if the operation is not defined.
func Promote(a, b Type, allowMixed bool) (Type, bool) {
	switch {
	case !IsNumeric(a) || !IsNumeric(b):
		return Invalid, false
	case a == b:
		return a, true
	case allowMixed:
		return Float, true
	default:
		return Invalid, false
	}
}
