package types

import (
	"math"
	"testing"
)

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b       Type
		allowMixed bool
		want       Type
		ok         bool
	}{
		{Int, Int, true, Int, true},
		{Float, Float, false, Float, true},
		{Int, Float, true, Float, true},
		{Float, Int, true, Float, true},
		{Int, Float, false, Invalid, false},
		{Auto, Int, true, Invalid, false},
		{Invalid, Float, true, Invalid, false},
	}

	for _, tt := range tests {
		got, ok := Promote(tt.a, tt.b, tt.allowMixed)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Promote(%s, %s, %v) = (%s, %v), want (%s, %v)", tt.a, tt.b, tt.allowMixed, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		op   int
		a, b Value
		want Value
		err  error
	}{
		{"add", OpAdd, IntValue(2), IntValue(3), IntValue(5), nil},
		{"sub", OpSub, IntValue(2), IntValue(3), IntValue(-1), nil},
		{"mul", OpMul, IntValue(-4), IntValue(3), IntValue(-12), nil},
		{"truncating div", OpDiv, IntValue(7), IntValue(2), IntValue(3), nil},
		{"negative div", OpDiv, IntValue(-7), IntValue(2), IntValue(-3), nil},
		{"pow", OpPow, IntValue(2), IntValue(9), IntValue(512), nil},
		{"pow zero", OpPow, IntValue(5), IntValue(0), IntValue(1), nil},
		{"float add", OpAdd, FloatValue(1.5), FloatValue(2.25), FloatValue(3.75), nil},
		{"mixed add", OpAdd, IntValue(1), FloatValue(2.5), FloatValue(3.5), nil},
		{"mixed div", OpDiv, FloatValue(7), IntValue(2), FloatValue(3.5), nil},
		{"float pow", OpPow, FloatValue(2), FloatValue(0.5), FloatValue(math.Sqrt2), nil},
		{"div by zero", OpDiv, IntValue(1), IntValue(0), Value{}, ErrDivisionByZero},
		{"add overflow", OpAdd, IntValue(math.MaxInt64), IntValue(1), Value{}, ErrOverflow},
		{"sub overflow", OpSub, IntValue(math.MinInt64), IntValue(1), Value{}, ErrOverflow},
		{"mul overflow", OpMul, IntValue(math.MaxInt64 / 2), IntValue(3), Value{}, ErrOverflow},
		{"div overflow", OpDiv, IntValue(math.MinInt64), IntValue(-1), Value{}, ErrOverflow},
		{"pow overflow", OpPow, IntValue(2), IntValue(63), Value{}, ErrOverflow},
		{"negative exponent", OpPow, IntValue(2), IntValue(-1), Value{}, ErrNegativeExponent},
		{"not numeric", OpAdd, Value{}, IntValue(1), Value{}, ErrNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fold(tt.op, tt.a, tt.b)
			if err != tt.err {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}

			if got != tt.want {
				t.Errorf("got %v (%s), want %v (%s)", got, got.Type, tt.want, tt.want.Type)
			}
		})
	}
}

func TestNegate(t *testing.T) {
	if v, err := Negate(IntValue(4)); err != nil || v != IntValue(-4) {
		t.Errorf("Negate(4) = %v, %v", v, err)
	}

	if v, err := Negate(FloatValue(1.5)); err != nil || v != FloatValue(-1.5) {
		t.Errorf("Negate(1.5) = %v, %v", v, err)
	}

	if _, err := Negate(IntValue(math.MinInt64)); err != ErrOverflow {
		t.Errorf("Negate(MinInt64) error = %v", err)
	}
}

func TestZeroValue(t *testing.T) {
	if v := ZeroValue(Float); v.Type != Float || v.AsFloat() != 0 || v.String() != "0" {
		t.Errorf("ZeroValue(float) = %#v", v)
	}
}
