package operation

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rhino1998/basics/pkg/integrity"
	"github.com/rhino1998/basics/pkg/numeric"
	"github.com/rhino1998/basics/pkg/operators"
	"github.com/rhino1998/basics/pkg/variable"
	"golang.org/x/exp/constraints"
)

// Number combines B and C with RightHand, then applies Operator to A and
// that value. The arithmetic is done in A's kind; integer destinations are
// computed in double precision and converted with Rounding.
//
// Division by zero never fails: it logs a warning and yields +Inf.
type Number struct {
	A          *variable.Number
	Operator   operators.Assignment
	RightHand  operators.Arithmetic
	B, C       variable.NumberReference
	Rounding   operators.Rounding
	RaiseEvent bool

	Logger *slog.Logger
}

func NewNumber(logger *slog.Logger, a *variable.Number, op operators.Assignment, rightHand operators.Arithmetic, b, c variable.NumberReference) *Number {
	return &Number{A: a, Operator: op, RightHand: rightHand, B: b, C: c, Logger: logger}
}

// Result is the value Execute would assign to A, before A's clamping. A
// missing A yields int 0.
func (o *Number) Result() numeric.Number {
	logger := loggerOrDefault(o.Logger)
	if o.A == nil {
		logger.Error("number operation has no variable")
		return numeric.Int(0)
	}

	warnDangling(logger, "number",
		operand{"b", o.B.Dangling()},
		operand{"c", o.RightHand != operators.None && o.C.Dangling()},
	)

	switch o.A.Kind() {
	case numeric.Int32:
		return numeric.Int(numeric.Round(o.intResult(logger), o.Rounding))
	case numeric.Float32:
		return numeric.Float(o.float32Result(logger))
	case numeric.Float64:
		return numeric.Double(o.float64Result(logger))
	default:
		logger.Error("unknown number kind", slog.Any("kind", o.A.Kind()))
		return o.A.Value()
	}
}

func (o *Number) float32Result(logger *slog.Logger) float32 {
	rhs := rightHand(logger, o.RightHand, o.B.Value().Float32(), o.C.Value().Float32(), pow32, true)
	return assign(logger, o.Operator, o.A.Value().Float32(), rhs, pow32)
}

// Every int32 is exact as a float64. Powers stay in single precision like
// the other paths.
func (o *Number) intResult(logger *slog.Logger) float64 {
	rhs := rightHand(logger, o.RightHand, o.B.Value().Float64(), o.C.Value().Float64(), pow64, true)
	return assign(logger, o.Operator, o.A.Value().Float64(), rhs, pow64)
}

// The double path has no right hand multiplication and computes powers in
// single precision.
func (o *Number) float64Result(logger *slog.Logger) float64 {
	rhs := rightHand(logger, o.RightHand, o.B.Value().Float64(), o.C.Value().Float64(), pow64, false)
	return assign(logger, o.Operator, o.A.Value().Float64(), rhs, pow64)
}

func pow32(a, b float32) float32 {
	return float32(math.Pow(float64(a), float64(b)))
}

func pow64(a, b float64) float64 {
	return float64(pow32(float32(a), float32(b)))
}

func rightHand[T constraints.Float](logger *slog.Logger, op operators.Arithmetic, b, c T, pow func(T, T) T, multiply bool) T {
	switch op {
	case operators.None:
		return b
	case operators.Addition:
		return b + c
	case operators.Subtraction:
		return b - c
	case operators.Multiplication:
		if multiply {
			return b * c
		}
	case operators.Division:
		return divide(logger, b, c)
	case operators.Pow:
		return pow(b, c)
	}

	logger.Error("unsupported right hand arithmetic", slog.String("arithmetic", string(op)))
	return b
}

func assign[T constraints.Float](logger *slog.Logger, op operators.Assignment, a, rhs T, pow func(T, T) T) T {
	switch op {
	case operators.SetTo:
		return rhs
	case operators.AdditionAssignment:
		return a + rhs
	case operators.SubtractionAssignment:
		return a - rhs
	case operators.MultiplicationAssignment:
		return a * rhs
	case operators.DivisionAssignment:
		return divide(logger, a, rhs)
	case operators.PowAssignment:
		return pow(a, rhs)
	default:
		logger.Error("unsupported number operator", slog.String("operator", string(op)))
		return a
	}
}

func divide[T constraints.Float](logger *slog.Logger, a, b T) T {
	if b == 0 {
		logger.Warn("division by zero, result is +Inf", slog.Float64("dividend", float64(a)))
		return T(math.Inf(1))
	}

	return a / b
}

func (o *Number) Execute() error {
	if o.A == nil {
		return variable.ErrMissingVariable
	}

	o.A.SetValue(o.Result())
	loggerOrDefault(o.Logger).Debug("number operation executed",
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

func (o *Number) ValidateIntegrity() error {
	errs := integrity.NewErrorSet()
	if o.A == nil {
		errs.Add(integrity.At("a", variable.ErrMissingVariable))
	}
	if !o.Operator.IsNumber() {
		errs.Add(fmt.Errorf("unsupported number operator %q", o.Operator))
	}
	if !o.RightHand.IsNumber() {
		errs.Add(fmt.Errorf("unsupported right hand arithmetic %q", o.RightHand))
	}
	if o.RightHand == operators.Multiplication && o.A != nil && o.A.Kind() == numeric.Float64 {
		errs.Add(fmt.Errorf("right hand multiplication is not supported for double variables"))
	}
	if !o.Rounding.Valid() {
		errs.Add(fmt.Errorf("unknown rounding %q", o.Rounding))
	}

	errs.Add(integrity.At("b", o.B.ValidateIntegrity()))
	if o.RightHand != operators.None {
		errs.Add(integrity.At("c", o.C.ValidateIntegrity()))
	}

	return errs.Defer(nil)
}
