package variable

import (
	"github.com/rhino1998/basics/pkg/vector"
)

type Vector struct {
	cell[vector.Vector]
}

// NewVector creates a cell whose kind is the kind of def.
func NewVector(name string, def vector.Vector) *Vector {
	return &Vector{cell[vector.Vector]{name: name, value: def, def: def}}
}

func (v *Vector) Kind() vector.Kind {
	return v.def.Kind()
}

// SetValue widens or narrows val into the cell's kind.
func (v *Vector) SetValue(val vector.Vector) {
	v.value = val.As(v.Kind())
}

func (v *Vector) SetValueAndRaise(val vector.Vector) {
	v.SetValue(val)
	v.Raise()
}

func (v *Vector) Reset() {
	v.SetValue(v.def)
}

func (v *Vector) Dependencies() []Cell {
	return nil
}

func (v *Vector) ValidateIntegrity() error {
	return nil
}

func (v *Vector) String() string {
	return v.value.String()
}
