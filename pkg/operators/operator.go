package operators

import (
	"fmt"
)

type Comparison string

const (
	EqualTo              Comparison = "=="
	NotEqualTo           Comparison = "!="
	LessThan             Comparison = "<"
	LessThanOrEqualTo    Comparison = "<="
	GreaterThan          Comparison = ">"
	GreaterThanOrEqualTo Comparison = ">="
)

func (c Comparison) Valid() bool {
	switch c {
	case EqualTo,
		NotEqualTo,
		LessThan,
		LessThanOrEqualTo,
		GreaterThan,
		GreaterThanOrEqualTo:
		return true
	default:
		return false
	}
}

// IsEquality reports whether the comparison only tests for (in)equality
// rather than ordering.
func (c Comparison) IsEquality() bool {
	return c == EqualTo || c == NotEqualTo
}

type Assignment string

const (
	SetTo                    Assignment = "="
	AdditionAssignment       Assignment = "+="
	SubtractionAssignment    Assignment = "-="
	MultiplicationAssignment Assignment = "*="
	DivisionAssignment       Assignment = "/="
	PowAssignment            Assignment = "**="

	Toggle Assignment = "!"
)

func (a Assignment) IsBool() bool {
	return a == SetTo || a == Toggle
}

func (a Assignment) IsNumber() bool {
	switch a {
	case SetTo,
		AdditionAssignment,
		SubtractionAssignment,
		MultiplicationAssignment,
		DivisionAssignment,
		PowAssignment:
		return true
	default:
		return false
	}
}

func (a Assignment) IsVector() bool {
	return a == SetTo || a == AdditionAssignment || a == SubtractionAssignment
}

func (a Assignment) ToArithmetic() (Arithmetic, error) {
	switch a {
	case AdditionAssignment:
		return Addition, nil
	case SubtractionAssignment:
		return Subtraction, nil
	case MultiplicationAssignment:
		return Multiplication, nil
	case DivisionAssignment:
		return Division, nil
	case PowAssignment:
		return Pow, nil
	default:
		return "", fmt.Errorf("operator %q is not an arithmetic assignment operator", a)
	}
}

// Arithmetic combines the second and third operands of an operation
// before the assignment operator is applied.
type Arithmetic string

const (
	None           Arithmetic = ""
	Addition       Arithmetic = "+"
	Subtraction    Arithmetic = "-"
	Multiplication Arithmetic = "*"
	Division       Arithmetic = "/"
	Pow            Arithmetic = "**"

	// Vector operations scale by a number instead of combining two vectors.
	ScalarMultiplication = Multiplication
	ScalarDivision       = Division
)

func (a Arithmetic) IsNumber() bool {
	switch a {
	case None,
		Addition,
		Subtraction,
		Multiplication,
		Division,
		Pow:
		return true
	default:
		return false
	}
}

func (a Arithmetic) IsVector() bool {
	switch a {
	case None,
		Addition,
		Subtraction,
		ScalarMultiplication,
		ScalarDivision:
		return true
	default:
		return false
	}
}

// IsScalar reports whether the vector form of the operator takes a number
// as its second operand.
func (a Arithmetic) IsScalar() bool {
	return a == ScalarMultiplication || a == ScalarDivision
}

// Rounding converts a fractional result into an integer destination.
type Rounding string

const (
	RoundToInt Rounding = "round"
	FloorToInt Rounding = "floor"
	CeilToInt  Rounding = "ceil"
)

func (r Rounding) Valid() bool {
	return r == "" || r == RoundToInt || r == FloorToInt || r == CeilToInt
}

// OrDefault returns RoundToInt for the zero value.
func (r Rounding) OrDefault() Rounding {
	if r == "" {
		return RoundToInt
	}

	return r
}
