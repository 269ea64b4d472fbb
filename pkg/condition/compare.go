package condition

import (
	"github.com/rhino1998/basics/pkg/numeric"
	"github.com/rhino1998/basics/pkg/operators"
	"github.com/rhino1998/basics/pkg/vector"
)

// CompareBool orders false before true. LessThanOrEqualTo and
// GreaterThanOrEqualTo always hold for bools.
func CompareBool(op operators.Comparison, a, b bool) (result bool, ok bool) {
	switch op {
	case operators.EqualTo:
		return a == b, true
	case operators.NotEqualTo:
		return a != b, true
	case operators.LessThan:
		return boolToInt(a) < boolToInt(b), true
	case operators.GreaterThan:
		return boolToInt(a) > boolToInt(b), true
	case operators.LessThanOrEqualTo, operators.GreaterThanOrEqualTo:
		return true, true
	default:
		return false, false
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// CompareNumber compares a and b in the more precise of their two kinds.
func CompareNumber(op operators.Comparison, a, b numeric.Number) (result bool, ok bool) {
	return numeric.Compare(op, a, b)
}

// CompareVector tests equality component-wise at the longer length and
// orders vectors by magnitude, each over its own length.
func CompareVector(op operators.Comparison, a, b vector.Vector) (result bool, ok bool) {
	switch op {
	case operators.EqualTo:
		return vector.Equal(a, b), true
	case operators.NotEqualTo:
		return !vector.Equal(a, b), true
	default:
		return numeric.Ordered(op, a.Magnitude(), b.Magnitude())
	}
}
