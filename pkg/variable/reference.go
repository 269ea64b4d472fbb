package variable

import (
	"github.com/rhino1998/basics/pkg/numeric"
	"github.com/rhino1998/basics/pkg/vector"
)

// References resolve to either an embedded constant or the current value
// of a variable. They are resolved on every use and never cache. A
// reference that uses a variable without one resolves to the zero value;
// ValidateIntegrity reports it.

type BoolReference struct {
	UseVariable bool
	Constant    bool
	Variable    *Bool
}

func BoolConstant(v bool) BoolReference {
	return BoolReference{Constant: v}
}

func BoolVariable(v *Bool) BoolReference {
	return BoolReference{UseVariable: true, Variable: v}
}

func (r BoolReference) Value() bool {
	if !r.UseVariable {
		return r.Constant
	}
	if r.Variable == nil {
		return false
	}

	return r.Variable.Value()
}

func (r BoolReference) ValidateIntegrity() error {
	if r.UseVariable && r.Variable == nil {
		return ErrMissingVariable
	}

	return nil
}

type NumberReference struct {
	UseVariable bool
	Constant    numeric.Number
	Variable    *Number
}

func NumberConstant(v numeric.Number) NumberReference {
	return NumberReference{Constant: v}
}

func NumberVariable(v *Number) NumberReference {
	return NumberReference{UseVariable: true, Variable: v}
}

func (r NumberReference) Value() numeric.Number {
	if !r.UseVariable {
		return r.Constant
	}
	if r.Variable == nil {
		return numeric.Int(0)
	}

	return r.Variable.Value()
}

func (r NumberReference) ValidateIntegrity() error {
	if r.UseVariable && r.Variable == nil {
		return ErrMissingVariable
	}

	return nil
}

type VectorReference struct {
	UseVariable bool
	Constant    vector.Vector
	Variable    *Vector
}

func VectorConstant(v vector.Vector) VectorReference {
	return VectorReference{Constant: v}
}

func VectorVariable(v *Vector) VectorReference {
	return VectorReference{UseVariable: true, Variable: v}
}

func (r VectorReference) Value() vector.Vector {
	if !r.UseVariable {
		return r.Constant
	}
	if r.Variable == nil {
		return vector.Zero(vector.Vector2)
	}

	return r.Variable.Value()
}

func (r VectorReference) ValidateIntegrity() error {
	if r.UseVariable && r.Variable == nil {
		return ErrMissingVariable
	}

	return nil
}

// Dangling reports whether the reference points at a missing variable.
func (r BoolReference) Dangling() bool   { return r.UseVariable && r.Variable == nil }
func (r NumberReference) Dangling() bool { return r.UseVariable && r.Variable == nil }
func (r VectorReference) Dangling() bool { return r.UseVariable && r.Variable == nil }
