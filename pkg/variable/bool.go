package variable

import "strconv"

type Bool struct {
	cell[bool]
}

func NewBool(name string, def bool) *Bool {
	return &Bool{cell[bool]{name: name, value: def, def: def}}
}

func (b *Bool) SetValue(v bool) {
	b.value = v
}

func (b *Bool) SetValueAndRaise(v bool) {
	b.SetValue(v)
	b.Raise()
}

func (b *Bool) Reset() {
	b.SetValue(b.def)
}

func (b *Bool) Dependencies() []Cell {
	return nil
}

func (b *Bool) ValidateIntegrity() error {
	return nil
}

func (b *Bool) String() string {
	return strconv.FormatBool(b.value)
}
