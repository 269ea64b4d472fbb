package kinds

import "fmt"

// Kind selects which pair of references a condition compares.
type Kind int

const (
	Unknown Kind = iota
	Bool
	Number
	Vector
)

func (k Kind) Valid() bool {
	return k == Bool || k == Number || k == Vector
}

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Number:
		return "number"
	case Vector:
		return "vector"
	default:
		return "<unknown>"
	}
}

func Parse(s string) (Kind, error) {
	switch s {
	case "bool":
		return Bool, nil
	case "number":
		return Number, nil
	case "vector":
		return Vector, nil
	default:
		return Unknown, fmt.Errorf("unknown kind %q", s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}
