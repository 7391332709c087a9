package functional

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/jmsadair/functional/internal/random"
)

// checkMinimum checks the expected value and commutativity of every form that
// accepts operands of type T.
func checkMinimum[T constraints.Ordered](t *testing.T, lhs, rhs, expected T) {
	t.Helper()

	require.Equal(t, expected, Minimum[T]{}.Apply(lhs, rhs), "fixed form: incorrect minimum")
	require.Equal(t, Minimum[T]{}.Apply(lhs, rhs), Minimum[T]{}.Apply(rhs, lhs), "fixed form: not commutative")

	require.Equal(t, expected, Min(lhs, rhs), "deduced form: incorrect minimum")
	require.Equal(t, Min(lhs, rhs), Min(rhs, lhs), "deduced form: not commutative")
}

// TestMinimumInt checks the integer scenarios in every form.
func TestMinimumInt(t *testing.T) {
	tests := []struct {
		lhs, rhs, expected int
	}{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
		{-1, 1, -1},
	}

	for _, test := range tests {
		checkMinimum(t, test.lhs, test.rhs, test.expected)
		require.Equal(t, test.expected, MinCommon[int](test.lhs, test.rhs), "common form: incorrect minimum")
		require.Equal(t, MinCommon[int](test.lhs, test.rhs), MinCommon[int](test.rhs, test.lhs), "common form: not commutative")
	}
}

// TestMinimumChar checks the character scenario for runes and bytes.
func TestMinimumChar(t *testing.T) {
	checkMinimum[rune](t, 'a', 'b', 'a')
	checkMinimum[byte](t, 'a', 'b', 'a')
	require.Equal(t, rune('a'), MinCommon[rune]('b', 'a'))
}

// TestMinimumOtherOrderedTypes checks that types outside the built-in scenarios
// are also supported.
func TestMinimumOtherOrderedTypes(t *testing.T) {
	checkMinimum(t, "apple", "pear", "apple")
	checkMinimum(t, "", "a", "")
	checkMinimum(t, -0.5, 0.25, -0.5)
	checkMinimum(t, float32(3), float32(2), float32(2))
	checkMinimum(t, uint64(math.MaxUint64), uint64(0), uint64(0))
	checkMinimum(t, int8(math.MinInt8), int8(math.MaxInt8), int8(math.MinInt8))
	checkMinimum(t, math.Inf(-1), math.Inf(1), math.Inf(-1))
}

// TestMinimumNamedType checks that named types with an ordered underlying type
// keep their type through the operation.
func TestMinimumNamedType(t *testing.T) {
	type priority int
	var got priority = Min(priority(3), priority(2))
	require.Equal(t, priority(2), got)
}

// TestMinCommonHeterogeneous checks that operands of different types are
// compared in the common type.
func TestMinCommonHeterogeneous(t *testing.T) {
	require.Equal(t, int64(-1), MinCommon[int64](int32(-1), uint8(1)))
	require.Equal(t, int64(-1), MinCommon[int64](uint8(1), int32(-1)))
	require.Equal(t, 0.5, MinCommon[float64](0.5, int16(1)))
	require.Equal(t, float64(-3), MinCommon[float64](uint32(7), int8(-3)))

	// A signed common type orders operands that the unsigned type would not.
	require.Equal(t, int64(-1), MinCommon[int64](int8(-1), uint64(1)))
}

// TestMinCommonExactComparison checks that the operands are compared in their
// own types, so the result is always one of them and never a value produced
// by converting the operands first.
func TestMinCommonExactComparison(t *testing.T) {
	// Signed against unsigned.
	require.Equal(t, int64(0), MinCommon[int64](uint64(math.MaxUint64), int64(0)))
	require.Equal(t, int64(0), MinCommon[int64](int64(0), uint64(math.MaxUint64)))
	require.Equal(t, int64(-1), MinCommon[int64](int64(-1), uint64(0)))

	// A narrow common type only has to hold the smaller operand.
	require.Equal(t, int8(-1), MinCommon[int8](int(-1), int(300)))
	require.Equal(t, uint8(1), MinCommon[uint8](uint64(math.MaxUint64), int(1)))

	// Float against integer, including values that float64 cannot hold.
	require.Equal(t, int64(math.MaxInt64-1), MinCommon[int64](int64(math.MaxInt64-1), float64(math.MaxInt64)))
	require.Equal(t, 1.5, MinCommon[float64](1.5, int8(2)))
	require.Equal(t, int64(1), MinCommon[int64](1.5, int8(1)))
	require.Equal(t, -0.5, MinCommon[float64](uint8(0), -0.5))
	require.Equal(t, uint64(0), MinCommon[uint64](math.Inf(1), uint64(0)))
}

// TestMinCommonNotRepresentable checks that a minimum that does not fit the
// common type is reported rather than converted.
func TestMinCommonNotRepresentable(t *testing.T) {
	tests := []struct {
		name string
		try  func() bool
		call func()
	}{
		{
			name: "narrow",
			try:  func() bool { _, ok := TryMinCommon[int8](300, 400); return ok },
			call: func() { MinCommon[int8](300, 400) },
		},
		{
			name: "sign",
			try:  func() bool { _, ok := TryMinCommon[uint8](int(-1), int(1)); return ok },
			call: func() { MinCommon[uint8](int(-1), int(1)) },
		},
		{
			name: "fraction",
			try:  func() bool { _, ok := TryMinCommon[int](0.5, 1); return ok },
			call: func() { MinCommon[int](0.5, 1) },
		},
		{
			name: "precision",
			try:  func() bool { _, ok := TryMinCommon[float32](int64(1<<24+1), int64(1<<25)); return ok },
			call: func() { MinCommon[float32](int64(1<<24+1), int64(1<<25)) },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.False(t, test.try())
			require.Panics(t, test.call)
		})
	}

	value, ok := TryMinCommon[int16](300, int8(-3))
	require.True(t, ok)
	require.Equal(t, int16(-3), value)
}

// TestMinCommonProperties checks on random mixed operands that the result is
// the true minimum whenever it is representable.
func TestMinCommonProperties(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, b := int8(random.Int(math.MinInt8, math.MaxInt8+1)), uint16(random.Int(0, math.MaxUint16+1))

		want := int64(a)
		if int64(b) < want {
			want = int64(b)
		}
		require.Equal(t, want, MinCommon[int64](a, b))
		require.Equal(t, want, MinCommon[int64](b, a))

		got, ok := TryMinCommon[int8](a, b)
		if want == int64(a) {
			require.True(t, ok)
			require.Equal(t, a, got)
		} else {
			require.Equal(t, int64(b) <= math.MaxInt8, ok)
		}
	}
}

// TestMinimumTieReturnsLHS checks that the left operand is returned when the
// operands compare equal. Negative and positive zero compare equal but are
// distinguishable by their sign.
func TestMinimumTieReturnsLHS(t *testing.T) {
	negativeZero := math.Copysign(0, -1)
	require.True(t, math.Signbit(Min(negativeZero, 0)))
	require.False(t, math.Signbit(Min(0, negativeZero)))
	require.True(t, math.Signbit(Minimum[float64]{}.Apply(negativeZero, 0)))
}

// TestMinimumAgreesWithBuiltin checks that the library forms agree with the
// predeclared min used by the compile-time checks.
func TestMinimumAgreesWithBuiltin(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 0}, {0, 0}, {-1, 1}}
	for _, pair := range pairs {
		require.Equal(t, min(pair[0], pair[1]), Min(pair[0], pair[1]))
		require.Equal(t, min(pair[0], pair[1]), Minimum[int]{}.Apply(pair[0], pair[1]))
		require.Equal(t, min(pair[0], pair[1]), MinCommon[int](pair[0], pair[1]))
	}
	require.Equal(t, min('a', 'b'), Min('a', 'b'))
}

// TestMinimumProperties checks the selection rule, commutativity, idempotence,
// and agreement of the forms on random operands.
func TestMinimumProperties(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, b := random.Int(-1000, 1000), random.Int(-1000, 1000)

		got := Min(a, b)
		if a <= b {
			require.Equal(t, a, got)
		} else {
			require.Equal(t, b, got)
		}
		require.Equal(t, got, Min(b, a))
		require.Equal(t, a, Min(a, a))
		require.Equal(t, got, Minimum[int]{}.Apply(a, b))
		require.Equal(t, got, MinCommon[int](a, b))

		x, y := random.Float(-1, 1), random.Float(-1, 1)
		require.Equal(t, Min(x, y), Min(y, x))
		require.Contains(t, []float64{x, y}, Min(x, y))

		s, u := random.String(8), random.String(8)
		require.Equal(t, Min(s, u), Min(u, s))
		require.Contains(t, []string{s, u}, Min(s, u))
	}
}

// TestMinimumDoesNotAllocate checks that no form allocates.
func TestMinimumDoesNotAllocate(t *testing.T) {
	var op BinaryOp[int] = Minimum[int]{}
	allocs := testing.AllocsPerRun(100, func() {
		_ = Min(1, 0)
		_ = op.Apply(1, 0)
		_ = MinCommon[int64](int32(1), uint8(0))
	})
	require.Zero(t, allocs)
}
