package numeric

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the representation a Number is stored in. Kinds are ordered by
// precision, so the larger of two kinds is the one to compute in.
type Kind int

const (
	Int32 Kind = iota
	Float32
	Float64
)

func (k Kind) Valid() bool {
	return k >= Int32 && k <= Float64
}

func (k Kind) String() string {
	switch k {
	case Int32:
		return "int"
	case Float32:
		return "float"
	case Float64:
		return "double"
	default:
		return "<unknown>"
	}
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "int":
		return Int32, nil
	case "float":
		return Float32, nil
	case "double":
		return Float64, nil
	default:
		return 0, fmt.Errorf("unknown number kind %q", s)
	}
}

// Highest returns the kind with the most precision of a and b.
func Highest(a, b Kind) Kind {
	return max(a, b)
}

// Number holds a single value in one of the three numeric kinds.
type Number struct {
	kind Kind
	i    int32
	f    float32
	d    float64
}

func Int(v int32) Number {
	return Number{kind: Int32, i: v}
}

func Float(v float32) Number {
	return Number{kind: Float32, f: v}
}

func Double(v float64) Number {
	return Number{kind: Float64, d: v}
}

func Zero(kind Kind) Number {
	return Number{kind: kind}
}

func (n Number) Kind() Kind {
	return n.kind
}

// Int32 converts n, truncating toward zero for fractional kinds.
func (n Number) Int32() int32 {
	switch n.kind {
	case Float32:
		return Truncate(float64(n.f))
	case Float64:
		return Truncate(n.d)
	default:
		return n.i
	}
}

func (n Number) Float32() float32 {
	switch n.kind {
	case Int32:
		return float32(n.i)
	case Float64:
		return float32(n.d)
	default:
		return n.f
	}
}

func (n Number) Float64() float64 {
	switch n.kind {
	case Int32:
		return float64(n.i)
	case Float32:
		return float64(n.f)
	default:
		return n.d
	}
}

// As converts n into kind.
func (n Number) As(kind Kind) Number {
	switch kind {
	case Int32:
		return Int(n.Int32())
	case Float32:
		return Float(n.Float32())
	case Float64:
		return Double(n.Float64())
	default:
		return n
	}
}

func (n Number) IsZero() bool {
	switch n.kind {
	case Int32:
		return n.i == 0
	case Float32:
		return n.f == 0
	default:
		return n.d == 0
	}
}

func (n Number) String() string {
	switch n.kind {
	case Int32:
		return strconv.FormatInt(int64(n.i), 10)
	case Float32:
		return strconv.FormatFloat(float64(n.f), 'g', -1, 32)
	default:
		return strconv.FormatFloat(n.d, 'g', -1, 64)
	}
}

// Truncate casts f to an int32, dropping the fractional part. Values
// outside the int32 range saturate and NaN becomes 0.
func Truncate(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}
