package integrity

import (
	"errors"
	"fmt"
)

// PathError locates a problem inside a configuration tree, e.g.
// "rules[0].conditions[1].b".
type PathError struct {
	Path string
	Err  error
}

func (e PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e PathError) Unwrap() error {
	return e.Err
}

// At prefixes err with path. Nested paths are joined with a dot and error
// sets are distributed over their members.
func At(path string, err error) error {
	if err == nil {
		return nil
	}

	var set *ErrorSet
	if errors.As(err, &set) {
		out := NewErrorSet()
		for _, sub := range set.Errs {
			out.Add(At(path, sub))
		}
		return out.Defer(nil)
	}

	var pathErr PathError
	if errors.As(err, &pathErr) {
		if len(pathErr.Path) > 0 && pathErr.Path[0] == '[' {
			return PathError{Path: path + pathErr.Path, Err: pathErr.Err}
		}
		return PathError{Path: path + "." + pathErr.Path, Err: pathErr.Err}
	}

	return PathError{Path: path, Err: err}
}

type ErrorSet struct {
	Errs []error
}

func NewErrorSet() *ErrorSet {
	return new(ErrorSet)
}

func (e *ErrorSet) Add(err error) {
	if err == nil {
		return
	}

	var subErrs *ErrorSet
	if errors.As(err, &subErrs) {
		e.Errs = append(e.Errs, subErrs.Unwrap()...)
	} else {
		e.Errs = append(e.Errs, err)
	}
}

func (e *ErrorSet) Error() string {
	return errors.Join(e.Errs...).Error()
}

func (e *ErrorSet) Unwrap() []error {
	return e.Errs
}

// Defer adds err and returns the set, or nil when nothing was collected.
func (e *ErrorSet) Defer(err error) error {
	if err != nil && e != err {
		e.Add(err)
	}

	if len(e.Errs) == 0 {
		return nil
	}

	return e
}
