package variable

import (
	"github.com/rhino1998/basics/pkg/integrity"
	"github.com/rhino1998/basics/pkg/numeric"
)

// Number stores a value of a fixed numeric kind. When ClampMin or ClampMax
// is set, every write is limited by the current value of Min or Max.
type Number struct {
	cell[numeric.Number]

	ClampMin bool
	Min      NumberReference
	ClampMax bool
	Max      NumberReference
}

// NewNumber creates a cell whose kind is the kind of def.
func NewNumber(name string, def numeric.Number) *Number {
	return &Number{cell: cell[numeric.Number]{name: name, value: def, def: def}}
}

func (n *Number) Kind() numeric.Kind {
	return n.def.Kind()
}

// SetValue converts v into the cell's kind and applies the clamp bounds.
func (n *Number) SetValue(v numeric.Number) {
	var lo, hi *numeric.Number
	if n.ClampMin {
		bound := n.Min.Value()
		lo = &bound
	}
	if n.ClampMax {
		bound := n.Max.Value()
		hi = &bound
	}

	n.value = numeric.Clamp(v.As(n.Kind()), lo, hi)
}

func (n *Number) SetValueAndRaise(v numeric.Number) {
	n.SetValue(v)
	n.Raise()
}

func (n *Number) Reset() {
	n.SetValue(n.def)
}

func (n *Number) Dependencies() []Cell {
	var deps []Cell
	if n.ClampMin && n.Min.UseVariable && n.Min.Variable != nil {
		deps = append(deps, n.Min.Variable)
	}
	if n.ClampMax && n.Max.UseVariable && n.Max.Variable != nil {
		deps = append(deps, n.Max.Variable)
	}

	return deps
}

func (n *Number) ValidateIntegrity() error {
	errs := integrity.NewErrorSet()
	if n.ClampMin {
		errs.Add(integrity.At("min", n.Min.ValidateIntegrity()))
	}
	if n.ClampMax {
		errs.Add(integrity.At("max", n.Max.ValidateIntegrity()))
	}

	return errs.Defer(nil)
}

func (n *Number) String() string {
	return n.value.String()
}
