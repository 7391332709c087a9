package functional

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Real is the set of numeric types that MinCommon can convert between.
type Real interface {
	constraints.Integer | constraints.Float
}

// BinaryOp is a stateless operation over two operands of the same type.
type BinaryOp[T any] interface {
	// Apply evaluates the operation. It must not retain or modify its operands.
	Apply(lhs, rhs T) T
}

// Minimum is the fixed-type form of the minimum operation. The zero value is
// ready to use and carries no state, so a single value may be shared freely
// between goroutines.
type Minimum[T constraints.Ordered] struct{}

// Apply returns lhs if lhs is not greater than rhs, otherwise rhs.
func (Minimum[T]) Apply(lhs, rhs T) T {
	return Min(lhs, rhs)
}

// Min returns the smaller of the two provided values, with the type deduced
// from the arguments. On a tie lhs is returned. The result for unordered
// values such as NaN is unspecified.
func Min[T constraints.Ordered](lhs, rhs T) T {
	if lhs <= rhs {
		return lhs
	}
	return rhs
}

// MinCommon returns the smaller of two operands whose types may differ,
// converted to the type C named by the caller. L and R are inferred:
//
//	MinCommon[int64](int32(-1), uint8(1)) // -1
//
// The operands are compared exactly in their own types, signed against
// unsigned and float against integer, and only the smaller one is
// converted. MinCommon panics if that operand is not representable in C;
// use TryMinCommon to check instead.
func MinCommon[C, L, R Real](lhs L, rhs R) C {
	value, ok := TryMinCommon[C](lhs, rhs)
	if !ok {
		panic(fmt.Sprintf("functional: minimum of %v and %v is not representable as %T", lhs, rhs, value))
	}
	return value
}

// TryMinCommon is like MinCommon but reports false instead of panicking
// when the smaller operand does not convert to C without loss.
func TryMinCommon[C, L, R Real](lhs L, rhs R) (C, bool) {
	l, r := toNumber(lhs), toNumber(rhs)
	if c, ok := compare(l, r); ok && c <= 0 {
		return convertExact[C](lhs, l)
	}
	return convertExact[C](rhs, r)
}
