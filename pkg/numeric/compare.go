package numeric

import (
	"math"

	"github.com/rhino1998/basics/pkg/operators"
	"golang.org/x/exp/constraints"
)

// Ordered applies a comparison operator to two values of the same type.
// ok is false when op is not a known comparison.
func Ordered[T constraints.Ordered](op operators.Comparison, a, b T) (result bool, ok bool) {
	switch op {
	case operators.EqualTo:
		return a == b, true
	case operators.NotEqualTo:
		return a != b, true
	case operators.LessThan:
		return a < b, true
	case operators.LessThanOrEqualTo:
		return a <= b, true
	case operators.GreaterThan:
		return a > b, true
	case operators.GreaterThanOrEqualTo:
		return a >= b, true
	default:
		return false, false
	}
}

// Compare evaluates op on a and b in the highest precision of their kinds.
// Floating point equality is exact.
func Compare(op operators.Comparison, a, b Number) (result bool, ok bool) {
	switch Highest(a.Kind(), b.Kind()) {
	case Float64:
		return Ordered(op, a.Float64(), b.Float64())
	case Float32:
		return Ordered(op, a.Float32(), b.Float32())
	default:
		return Ordered(op, a.Int32(), b.Int32())
	}
}

// Clamp limits v to the optional lo and hi bounds. Bounds are converted
// into v's kind before comparing.
func Clamp(v Number, lo, hi *Number) Number {
	switch v.Kind() {
	case Int32:
		return Int(clamp(v.Int32(), bound(lo, Number.Int32), bound(hi, Number.Int32)))
	case Float32:
		return Float(clamp(v.Float32(), bound(lo, Number.Float32), bound(hi, Number.Float32)))
	default:
		return Double(clamp(v.Float64(), bound(lo, Number.Float64), bound(hi, Number.Float64)))
	}
}

func bound[T any](n *Number, conv func(Number) T) *T {
	if n == nil {
		return nil
	}

	v := conv(*n)
	return &v
}

func clamp[T constraints.Ordered](v T, lo, hi *T) T {
	if lo != nil && v < *lo {
		v = *lo
	}

	if hi != nil && v > *hi {
		v = *hi
	}

	return v
}

// Round converts f to an int32 using the given rounding policy. Halfway
// values round to the nearest even integer.
func Round(f float64, rounding operators.Rounding) int32 {
	switch rounding.OrDefault() {
	case operators.FloorToInt:
		f = math.Floor(f)
	case operators.CeilToInt:
		f = math.Ceil(f)
	default:
		f = math.RoundToEven(f)
	}

	return Truncate(f)
}
