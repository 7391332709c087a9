package functional

import (
	"cmp"
	"math"
)

type numberKind uint8

const (
	signedKind numberKind = iota
	unsignedKind
	floatKind
)

// number holds a value of any Real type without loss: signed integers widen
// to int64, unsigned integers to uint64 and floats to float64.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

func toNumber[T Real](v T) number {
	var half T = 1
	half /= 2
	if half != 0 {
		return number{kind: floatKind, f: float64(v)}
	}
	var zero T
	if zero-1 < zero {
		return number{kind: signedKind, i: int64(v)}
	}
	return number{kind: unsignedKind, u: uint64(v)}
}

func (n number) isNaN() bool {
	return n.kind == floatKind && math.IsNaN(n.f)
}

// compare orders a against b exactly. It reports false if either is NaN.
func compare(a, b number) (int, bool) {
	switch {
	case a.isNaN() || b.isNaN():
		return 0, false
	case a.kind == floatKind && b.kind == floatKind:
		return cmp.Compare(a.f, b.f), true
	case a.kind == floatKind:
		return compareFloatInt(a.f, b), true
	case b.kind == floatKind:
		return -compareFloatInt(b.f, a), true
	default:
		return compareInts(a, b), true
	}
}

func compareInts(a, b number) int {
	switch {
	case a.kind == signedKind && b.kind == signedKind:
		return cmp.Compare(a.i, b.i)
	case a.kind == unsignedKind && b.kind == unsignedKind:
		return cmp.Compare(a.u, b.u)
	case a.kind == signedKind:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	default:
		return -compareInts(b, a)
	}
}

// compareFloatInt orders a non-NaN float against an integer. The integer
// part is compared in the integer's own width; the fraction breaks ties.
func compareFloatInt(f float64, n number) int {
	t := math.Trunc(f)
	var c int
	if n.kind == signedKind {
		switch {
		case t < -(1 << 63):
			return -1
		case t >= 1<<63:
			return 1
		}
		c = cmp.Compare(int64(t), n.i)
	} else {
		switch {
		case t < 0:
			return -1
		case t >= 1<<64:
			return 1
		}
		c = cmp.Compare(uint64(t), n.u)
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(f-t, 0)
}

// convertExact converts v to C and reports whether the conversion kept its value.
func convertExact[C, T Real](v T, n number) (C, bool) {
	converted := C(v)
	back := toNumber(converted)
	if c, ok := compare(back, n); ok {
		return converted, c == 0
	}
	return converted, n.isNaN() && back.isNaN()
}
