package variable

import (
	"fmt"

	"github.com/rhino1998/basics/pkg/integrity"
	"github.com/rhino1998/basics/pkg/topological"
)

// Store is a registry of named cells. It is not safe for concurrent use;
// cells are expected to be read and written from one goroutine at a time.
type Store struct {
	cells map[string]Cell
	order []Cell
}

func NewStore() *Store {
	return &Store{
		cells: make(map[string]Cell),
	}
}

func (s *Store) Put(c Cell) error {
	_, ok := s.cells[c.Name()]
	if ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, c.Name())
	}

	s.cells[c.Name()] = c
	s.order = append(s.order, c)
	return nil
}

func (s *Store) Get(name string) (Cell, bool) {
	c, ok := s.cells[name]
	return c, ok
}

// Cells returns every cell in the order it was added.
func (s *Store) Cells() []Cell {
	return s.order
}

func (s *Store) Bool(name string) (*Bool, error) {
	return lookup[*Bool](s, name)
}

func (s *Store) Number(name string) (*Number, error) {
	return lookup[*Number](s, name)
}

func (s *Store) Vector(name string) (*Vector, error) {
	return lookup[*Vector](s, name)
}

func lookup[C Cell](s *Store, name string) (C, error) {
	var zero C

	c, ok := s.cells[name]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	typed, ok := c.(C)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, want %T", ErrWrongType, name, c, zero)
	}

	return typed, nil
}

// ResetAll restores every cell to its default. Cells whose clamp bounds
// read other cells are reset after those cells.
func (s *Store) ResetAll() error {
	ordered, err := topological.SortFunc(s.order, Cell.Name, Cell.Dependencies)
	if err != nil {
		return fmt.Errorf("failed to order variables for reset: %w", err)
	}

	for _, c := range ordered {
		c.Reset()
	}

	return nil
}

// RaiseAll notifies the listeners of every cell in insertion order.
func (s *Store) RaiseAll() {
	for _, c := range s.order {
		c.Raise()
	}
}

func (s *Store) ValidateIntegrity() error {
	errs := integrity.NewErrorSet()
	for _, c := range s.order {
		errs.Add(integrity.At(c.Name(), c.ValidateIntegrity()))
	}

	_, err := topological.SortFunc(s.order, Cell.Name, Cell.Dependencies)
	errs.Add(err)

	return errs.Defer(nil)
}
