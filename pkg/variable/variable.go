package variable

import (
	"errors"

	"github.com/rhino1998/basics/pkg/event"
)

var (
	ErrMissingVariable = errors.New("reference uses a variable but none is set")
	ErrDuplicateName   = errors.New("variable name already exists")
	ErrNotFound        = errors.New("variable not found")
	ErrWrongType       = errors.New("variable has a different type")
)

// Cell is a named, typed storage location owned by a Store.
type Cell interface {
	Name() string
	// Reset restores the default value without notifying listeners.
	Reset()
	// Raise notifies listeners of the current value.
	Raise()
	// Dependencies lists the cells read while writing to this one.
	Dependencies() []Cell
	ValidateIntegrity() error
	String() string
}

// cell is the state shared by every variable type. Writes never notify;
// callers decide when to Raise.
type cell[T any] struct {
	name  string
	value T
	def   T

	Changed event.Channel[T]
}

func (c *cell[T]) Name() string {
	return c.name
}

func (c *cell[T]) Value() T {
	return c.value
}

func (c *cell[T]) Default() T {
	return c.def
}

func (c *cell[T]) Raise() {
	c.Changed.Raise(c.value)
}
