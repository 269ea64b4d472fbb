package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rhino1998/basics/pkg/numeric"
)

// Kind is one of the vector shapes a variable can hold. There is no
// four component integer vector.
type Kind int

const (
	Vector2 Kind = iota
	Vector3
	Vector4
	Vector2Int
	Vector3Int
)

func (k Kind) Valid() bool {
	return k >= Vector2 && k <= Vector3Int
}

func (k Kind) Len() int {
	switch k {
	case Vector2, Vector2Int:
		return 2
	case Vector3, Vector3Int:
		return 3
	default:
		return 4
	}
}

func (k Kind) IsInteger() bool {
	return k == Vector2Int || k == Vector3Int
}

func (k Kind) String() string {
	switch k {
	case Vector2:
		return "vector2"
	case Vector3:
		return "vector3"
	case Vector4:
		return "vector4"
	case Vector2Int:
		return "vector2int"
	case Vector3Int:
		return "vector3int"
	default:
		return "<unknown>"
	}
}

func ParseKind(s string) (Kind, error) {
	for k := Vector2; k <= Vector3Int; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown vector kind %q", s)
}

// KindOf returns the kind for a length and integer flag, capping the
// length to the largest shape available.
func KindOf(length int, integer bool) Kind {
	if integer {
		if length <= 2 {
			return Vector2Int
		}
		return Vector3Int
	}

	switch {
	case length <= 2:
		return Vector2
	case length == 3:
		return Vector3
	default:
		return Vector4
	}
}

// Float4 is the working form of floating point vector arithmetic.
type Float4 [4]float32

func (a Float4) Add(b Float4) Float4 {
	return Float4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Float4) Sub(b Float4) Float4 {
	return Float4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a Float4) Scale(s float32) Float4 {
	return Float4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

func (a Float4) Quo(s float32) Float4 {
	return Float4{a[0] / s, a[1] / s, a[2] / s, a[3] / s}
}

// Int3 is the working form of integer vector arithmetic.
type Int3 [3]int32

func (a Int3) Add(b Int3) Int3 {
	return Int3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Int3) Sub(b Int3) Int3 {
	return Int3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a Int3) Scale(s int32) Int3 {
	return Int3{a[0] * s, a[1] * s, a[2] * s}
}

// Quo divides each component by s, truncating toward zero. It panics if s
// is zero.
func (a Int3) Quo(s int32) Int3 {
	return Int3{a[0] / s, a[1] / s, a[2] / s}
}

// Vector is a 2, 3 or 4 component vector in floating point or integer
// form. Components past its length are always zero.
type Vector struct {
	kind Kind
	f    Float4
	i    Int3
}

func New2(x, y float32) Vector {
	return Vector{kind: Vector2, f: Float4{x, y}}
}

func New3(x, y, z float32) Vector {
	return Vector{kind: Vector3, f: Float4{x, y, z}}
}

func New4(x, y, z, w float32) Vector {
	return Vector{kind: Vector4, f: Float4{x, y, z, w}}
}

func New2Int(x, y int32) Vector {
	return Vector{kind: Vector2Int, i: Int3{x, y}}
}

func New3Int(x, y, z int32) Vector {
	return Vector{kind: Vector3Int, i: Int3{x, y, z}}
}

func Zero(kind Kind) Vector {
	return Vector{kind: kind}
}

// FromFloat4 narrows or converts c into kind. Integer kinds truncate each
// component toward zero.
func FromFloat4(kind Kind, c Float4) Vector {
	if kind.IsInteger() {
		return FromInt3(kind, Int3{
			numeric.Truncate(float64(c[0])),
			numeric.Truncate(float64(c[1])),
			numeric.Truncate(float64(c[2])),
		})
	}

	v := Vector{kind: kind}
	copy(v.f[:kind.Len()], c[:kind.Len()])
	return v
}

// FromInt3 narrows or converts c into kind, padding missing components
// with zero.
func FromInt3(kind Kind, c Int3) Vector {
	if !kind.IsInteger() {
		return FromFloat4(kind, Float4{float32(c[0]), float32(c[1]), float32(c[2])})
	}

	v := Vector{kind: kind}
	copy(v.i[:kind.Len()], c[:kind.Len()])
	return v
}

// FromComponents builds a vector of kind from up to four components.
// Missing components are zero and extra ones are dropped.
func FromComponents(kind Kind, c []float64) Vector {
	var f Float4
	for i := 0; i < len(c) && i < len(f); i++ {
		f[i] = float32(c[i])
	}

	return FromFloat4(kind, f)
}

func (v Vector) Kind() Kind {
	return v.kind
}

func (v Vector) Len() int {
	return v.kind.Len()
}

func (v Vector) IsInteger() bool {
	return v.kind.IsInteger()
}

func (v Vector) Float4() Float4 {
	if v.IsInteger() {
		return Float4{float32(v.i[0]), float32(v.i[1]), float32(v.i[2])}
	}

	return v.f
}

func (v Vector) Int3() Int3 {
	if v.IsInteger() {
		return v.i
	}

	return Int3{
		numeric.Truncate(float64(v.f[0])),
		numeric.Truncate(float64(v.f[1])),
		numeric.Truncate(float64(v.f[2])),
	}
}

// As converts v into kind.
func (v Vector) As(kind Kind) Vector {
	if v.IsInteger() {
		return FromInt3(kind, v.i)
	}

	return FromFloat4(kind, v.f)
}

// Magnitude is the euclidean length of v over its own components.
func (v Vector) Magnitude() float32 {
	var sum float32
	if v.IsInteger() {
		for _, c := range v.i[:v.Len()] {
			sum += float32(c) * float32(c)
		}
	} else {
		for _, c := range v.f[:v.Len()] {
			sum += c * c
		}
	}

	return float32(math.Sqrt(float64(sum)))
}

// Equal compares a and b component-wise at the longer of their two lengths,
// as integers only when both are integer vectors.
func Equal(a, b Vector) bool {
	length := max(a.Len(), b.Len())

	if a.IsInteger() && b.IsInteger() {
		ai, bi := a.Int3(), b.Int3()
		return ai == bi
	}

	af, bf := a.Float4(), b.Float4()
	for i := 0; i < length; i++ {
		if af[i] != bf[i] {
			return false
		}
	}

	return true
}

func (v Vector) String() string {
	parts := make([]string, v.Len())
	for i := range parts {
		if v.IsInteger() {
			parts[i] = strconv.FormatInt(int64(v.i[i]), 10)
		} else {
			parts[i] = strconv.FormatFloat(float64(v.f[i]), 'g', -1, 32)
		}
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
