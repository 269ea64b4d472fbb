package vector_test

import (
	"testing"

	"github.com/rhino1998/basics/pkg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	r := require.New(t)

	r.Equal(2, vector.Vector2Int.Len())
	r.Equal(4, vector.Vector4.Len())
	r.True(vector.Vector3Int.IsInteger())
	r.False(vector.Vector4.IsInteger())

	r.Equal(vector.Vector3Int, vector.KindOf(4, true))
	r.Equal(vector.Vector4, vector.KindOf(4, false))
	r.Equal(vector.Vector2, vector.KindOf(2, false))

	k, err := vector.ParseKind("vector3int")
	r.NoError(err)
	r.Equal(vector.Vector3Int, k)

	_, err = vector.ParseKind("vector4int")
	r.Error(err)
}

func TestResize(t *testing.T) {
	r := require.New(t)

	v := vector.New4(1, 2, 3, 4)
	r.Equal(vector.New2(1, 2), v.As(vector.Vector2))
	r.Equal(vector.New3Int(1, 2, 3), v.As(vector.Vector3Int))

	w := vector.New2Int(5, -6)
	r.Equal(vector.New4(5, -6, 0, 0), w.As(vector.Vector4))
	r.Equal(vector.New3Int(5, -6, 0), w.As(vector.Vector3Int))

	f := vector.New2(1.9, -1.9)
	r.Equal(vector.New2Int(1, -1), f.As(vector.Vector2Int))
}

func TestFromComponents(t *testing.T) {
	r := require.New(t)

	r.Equal(vector.New3(1, 2, 0), vector.FromComponents(vector.Vector3, []float64{1, 2}))
	r.Equal(vector.New2Int(1, 2), vector.FromComponents(vector.Vector2Int, []float64{1, 2, 3, 4, 5}))
}

func TestMagnitudeNativeLength(t *testing.T) {
	r := require.New(t)

	r.InDelta(5.0, vector.New2(3, 4).Magnitude(), 1e-6)
	r.InDelta(5.0, vector.New2Int(3, 4).Magnitude(), 1e-6)
	r.InDelta(2.0, vector.New4(1, 1, 1, 1).Magnitude(), 1e-6)
	r.InDelta(3.0, vector.New3Int(1, 2, 2).Magnitude(), 1e-6)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b vector.Vector
		want bool
	}{
		{"same", vector.New2(1, 1), vector.New2(1, 1), true},
		{"differ", vector.New2(1, 1), vector.New2(1, 2), false},
		{"padded", vector.New2(1, 2), vector.New3(1, 2, 0), true},
		{"padded nonzero", vector.New2(1, 2), vector.New3(1, 2, 3), false},
		{"int float", vector.New2Int(1, 2), vector.New2(1, 2), true},
		{"int float fraction", vector.New2Int(1, 2), vector.New2(1, 2.5), false},
		{"ints", vector.New3Int(1, 2, 0), vector.New2Int(1, 2), true},
		{"vector4", vector.New4(0, 0, 0, 1), vector.New3(0, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vector.Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, vector.Equal(tt.b, tt.a))
		})
	}
}

func TestArithmetic(t *testing.T) {
	r := require.New(t)

	a := vector.Float4{1, 2, 3, 4}
	r.Equal(vector.Float4{2, 4, 6, 8}, a.Add(a))
	r.Equal(vector.Float4{}, a.Sub(a))
	r.Equal(vector.Float4{0.5, 1, 1.5, 2}, a.Quo(2))

	b := vector.Int3{7, -7, 3}
	r.Equal(vector.Int3{3, -3, 1}, b.Quo(2))
	r.Equal(vector.Int3{14, -14, 6}, b.Scale(2))
	r.Panics(func() { b.Quo(0) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2.5)", vector.New2(1, 2.5).String())
	assert.Equal(t, "(1, 2, 3)", vector.New3Int(1, 2, 3).String())
}
