// Package integrity implements the development time configuration check.
// None of it runs while conditions or operations are evaluated.
package integrity

import "fmt"

type Validator interface {
	ValidateIntegrity() error
}

// Check validates every element of vs, prefixing problems with
// name[index].
func Check[V Validator](name string, vs []V) error {
	errs := NewErrorSet()
	for i, v := range vs {
		errs.Add(At(fmt.Sprintf("%s[%d]", name, i), v.ValidateIntegrity()))
	}

	return errs.Defer(nil)
}
