package operation

import (
	"fmt"
	"log/slog"

	"github.com/rhino1998/basics/pkg/integrity"
	"github.com/rhino1998/basics/pkg/operators"
	"github.com/rhino1998/basics/pkg/variable"
	"github.com/rhino1998/basics/pkg/vector"
)

// Vector combines B with C (or with Scalar for the scalar operators), then
// applies Operator to A and that value. Float destinations compute with
// four components and integer destinations with three, and the result is
// resized to A's kind.
type Vector struct {
	A          *variable.Vector
	Operator   operators.Assignment
	RightHand  operators.Arithmetic
	B, C       variable.VectorReference
	Scalar     variable.NumberReference
	RaiseEvent bool

	Logger *slog.Logger
}

func NewVector(logger *slog.Logger, a *variable.Vector, op operators.Assignment, rightHand operators.Arithmetic, b, c variable.VectorReference) *Vector {
	return &Vector{A: a, Operator: op, RightHand: rightHand, B: b, C: c, Logger: logger}
}

func NewScalarVector(logger *slog.Logger, a *variable.Vector, op operators.Assignment, rightHand operators.Arithmetic, b variable.VectorReference, scalar variable.NumberReference) *Vector {
	return &Vector{A: a, Operator: op, RightHand: rightHand, B: b, Scalar: scalar, Logger: logger}
}

// Result is the value Execute would assign to A. Integer vectors divided
// by a zero scalar return ErrDivideByZero, and a missing A returns
// variable.ErrMissingVariable.
func (o *Vector) Result() (vector.Vector, error) {
	logger := loggerOrDefault(o.Logger)
	if o.A == nil {
		return vector.Vector{}, variable.ErrMissingVariable
	}

	warnDangling(logger, "vector",
		operand{"b", o.B.Dangling()},
		operand{"c", o.RightHand != operators.None && !o.RightHand.IsScalar() && o.C.Dangling()},
		operand{"scalar", o.RightHand.IsScalar() && o.Scalar.Dangling()},
	)

	kind := o.A.Kind()

	if kind.IsInteger() {
		res, err := o.int3Result(logger)
		if err != nil {
			return vector.Vector{}, err
		}
		return vector.FromInt3(kind, res), nil
	}

	return vector.FromFloat4(kind, o.float4Result(logger)), nil
}

func (o *Vector) float4Result(logger *slog.Logger) vector.Float4 {
	b := o.B.Value().Float4()

	var rhs vector.Float4
	switch o.RightHand {
	case operators.None:
		rhs = b
	case operators.Addition:
		rhs = b.Add(o.C.Value().Float4())
	case operators.Subtraction:
		rhs = b.Sub(o.C.Value().Float4())
	case operators.ScalarMultiplication:
		rhs = b.Scale(o.Scalar.Value().Float32())
	case operators.ScalarDivision:
		rhs = b.Quo(o.Scalar.Value().Float32())
	default:
		logger.Error("unsupported vector right hand arithmetic", slog.String("arithmetic", string(o.RightHand)))
		rhs = b
	}

	a := o.A.Value().Float4()
	switch o.Operator {
	case operators.SetTo:
		return rhs
	case operators.AdditionAssignment:
		return a.Add(rhs)
	case operators.SubtractionAssignment:
		return a.Sub(rhs)
	default:
		logger.Error("unsupported vector operator", slog.String("operator", string(o.Operator)))
		return a
	}
}

func (o *Vector) int3Result(logger *slog.Logger) (vector.Int3, error) {
	b := o.B.Value().Int3()

	var rhs vector.Int3
	switch o.RightHand {
	case operators.None:
		rhs = b
	case operators.Addition:
		rhs = b.Add(o.C.Value().Int3())
	case operators.Subtraction:
		rhs = b.Sub(o.C.Value().Int3())
	case operators.ScalarMultiplication:
		rhs = b.Scale(o.Scalar.Value().Int32())
	case operators.ScalarDivision:
		s := o.Scalar.Value().Int32()
		if s == 0 {
			return vector.Int3{}, fmt.Errorf("%w: %s / 0", ErrDivideByZero, o.B.Value())
		}
		rhs = b.Quo(s)
	default:
		logger.Error("unsupported vector right hand arithmetic", slog.String("arithmetic", string(o.RightHand)))
		rhs = b
	}

	a := o.A.Value().Int3()
	switch o.Operator {
	case operators.SetTo:
		return rhs, nil
	case operators.AdditionAssignment:
		return a.Add(rhs), nil
	case operators.SubtractionAssignment:
		return a.Sub(rhs), nil
	default:
		logger.Error("unsupported vector operator", slog.String("operator", string(o.Operator)))
		return a, nil
	}
}

func (o *Vector) Execute() error {
	if o.A == nil {
		return variable.ErrMissingVariable
	}

	res, err := o.Result()
	if err != nil {
		return fmt.Errorf("failed to compute %s: %w", o.A.Name(), err)
	}

	o.A.SetValue(res)
	loggerOrDefault(o.Logger).Debug("vector operation executed",
		slog.String("variable", o.A.Name()),
		slog.String("operator", string(o.Operator)),
		slog.String("right_hand", string(o.RightHand)),
		slog.String("value", o.A.Value().String()),
	)

	if o.RaiseEvent {
		o.A.Raise()
	}

	return nil
}

func (o *Vector) ValidateIntegrity() error {
	errs := integrity.NewErrorSet()
	if o.A == nil {
		errs.Add(integrity.At("a", variable.ErrMissingVariable))
	}
	if !o.Operator.IsVector() {
		errs.Add(fmt.Errorf("unsupported vector operator %q", o.Operator))
	}
	if !o.RightHand.IsVector() {
		errs.Add(fmt.Errorf("unsupported vector right hand arithmetic %q", o.RightHand))
	}

	errs.Add(integrity.At("b", o.B.ValidateIntegrity()))
	switch {
	case o.RightHand.IsScalar():
		errs.Add(integrity.At("scalar", o.Scalar.ValidateIntegrity()))
	case o.RightHand != operators.None:
		errs.Add(integrity.At("c", o.C.ValidateIntegrity()))
	}

	return errs.Defer(nil)
}
