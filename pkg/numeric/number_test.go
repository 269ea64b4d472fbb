package numeric_test

import (
	"math"
	"testing"

	"github.com/rhino1998/basics/pkg/numeric"
	"github.com/rhino1998/basics/pkg/operators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighest(t *testing.T) {
	r := require.New(t)

	r.Equal(numeric.Int32, numeric.Highest(numeric.Int32, numeric.Int32))
	r.Equal(numeric.Float32, numeric.Highest(numeric.Int32, numeric.Float32))
	r.Equal(numeric.Float32, numeric.Highest(numeric.Float32, numeric.Int32))
	r.Equal(numeric.Float64, numeric.Highest(numeric.Float32, numeric.Float64))
	r.Equal(numeric.Float64, numeric.Highest(numeric.Float64, numeric.Int32))
}

func TestConversions(t *testing.T) {
	r := require.New(t)

	n := numeric.Float(2.75)
	r.Equal(int32(2), n.Int32())
	r.Equal(float32(2.75), n.Float32())
	r.Equal(2.75, n.Float64())

	n = numeric.Double(-3.9)
	r.Equal(int32(-3), n.Int32())
	r.Equal(numeric.Int32, n.As(numeric.Int32).Kind())

	n = numeric.Int(7)
	r.Equal(float32(7), n.Float32())
	r.Equal(7.0, n.Float64())
	r.Equal("7", n.String())
}

func TestTruncateSaturates(t *testing.T) {
	r := require.New(t)

	r.Equal(int32(math.MaxInt32), numeric.Truncate(math.Inf(1)))
	r.Equal(int32(math.MinInt32), numeric.Truncate(math.Inf(-1)))
	r.Equal(int32(0), numeric.Truncate(math.NaN()))
}

func TestCompareMixedKinds(t *testing.T) {
	tests := []struct {
		name string
		op   operators.Comparison
		a, b numeric.Number
		want bool
	}{
		{"int float equal", operators.EqualTo, numeric.Int(2), numeric.Float(2), true},
		{"int float fraction", operators.EqualTo, numeric.Int(2), numeric.Float(2.5), false},
		{"int float less", operators.LessThan, numeric.Int(2), numeric.Float(2.5), true},
		{"float double exact", operators.EqualTo, numeric.Float(0.1), numeric.Double(0.1), false},
		{"double ge", operators.GreaterThanOrEqualTo, numeric.Double(3), numeric.Int(3), true},
		{"int le", operators.LessThanOrEqualTo, numeric.Int(4), numeric.Int(3), false},
		{"not equal", operators.NotEqualTo, numeric.Float(1), numeric.Int(1), false},
		{"greater", operators.GreaterThan, numeric.Double(-1), numeric.Float(-2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := numeric.Compare(tt.op, tt.a, tt.b)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareEqualitySymmetry(t *testing.T) {
	values := []numeric.Number{
		numeric.Int(1), numeric.Int(-4), numeric.Float(1), numeric.Float(1.5),
		numeric.Double(1), numeric.Double(1.5), numeric.Double(0.1), numeric.Float(0.1),
	}

	for _, a := range values {
		for _, b := range values {
			ab, _ := numeric.Compare(operators.EqualTo, a, b)
			ba, _ := numeric.Compare(operators.EqualTo, b, a)
			ne, _ := numeric.Compare(operators.NotEqualTo, a, b)
			assert.Equal(t, ab, ba, "%v == %v", a, b)
			assert.Equal(t, !ab, ne, "%v != %v", a, b)
		}
	}
}

func TestCompareUnknownOperator(t *testing.T) {
	_, ok := numeric.Compare("<>", numeric.Int(1), numeric.Int(2))
	require.False(t, ok)
}

func TestClamp(t *testing.T) {
	r := require.New(t)

	lo := numeric.Float(1.5)
	hi := numeric.Int(10)

	r.Equal(numeric.Int(1), numeric.Clamp(numeric.Int(-5), &lo, &hi))
	r.Equal(numeric.Int(10), numeric.Clamp(numeric.Int(50), &lo, &hi))
	r.Equal(numeric.Float(1.5), numeric.Clamp(numeric.Float(0), &lo, nil))
	r.Equal(numeric.Double(100), numeric.Clamp(numeric.Double(100), &lo, nil))
	r.Equal(numeric.Double(-100), numeric.Clamp(numeric.Double(-100), nil, &hi))
}

func TestRound(t *testing.T) {
	r := require.New(t)

	r.Equal(int32(2), numeric.Round(2.5, operators.RoundToInt))
	r.Equal(int32(4), numeric.Round(3.5, operators.RoundToInt))
	r.Equal(int32(3), numeric.Round(2.6, ""))
	r.Equal(int32(2), numeric.Round(2.9, operators.FloorToInt))
	r.Equal(int32(-3), numeric.Round(-2.1, operators.FloorToInt))
	r.Equal(int32(3), numeric.Round(2.1, operators.CeilToInt))
	r.Equal(int32(math.MaxInt32), numeric.Round(math.Inf(1), operators.CeilToInt))
}
