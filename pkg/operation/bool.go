package operation

import (
	"fmt"
	"log/slog"

	"github.com/rhino1998/basics/pkg/integrity"
	"github.com/rhino1998/basics/pkg/operators"
	"github.com/rhino1998/basics/pkg/variable"
)

// Bool sets A to B or toggles it.
type Bool struct {
	A          *variable.Bool
	Operator   operators.Assignment
	B          variable.BoolReference
	RaiseEvent bool

	Logger *slog.Logger
}

func NewBool(logger *slog.Logger, a *variable.Bool, op operators.Assignment, b variable.BoolReference) *Bool {
	return &Bool{A: a, Operator: op, B: b, Logger: logger}
}

// Result is the value Execute would assign to A. A missing A yields false.
func (o *Bool) Result() bool {
	logger := loggerOrDefault(o.Logger)
	if o.A == nil {
		logger.Error("bool operation has no variable")
		return false
	}

	switch o.Operator {
	case operators.SetTo:
		warnDangling(logger, "bool", operand{"b", o.B.Dangling()})
		return o.B.Value()
	case operators.Toggle:
		return !o.A.Value()
	default:
		logger.Error("unsupported bool operator", slog.String("operator", string(o.Operator)))
		return o.A.Value()
	}
}

func (o *Bool) Execute() error {
	if o.A == nil {
		return variable.ErrMissingVariable
	}

	o.A.SetValue(o.Result())
	loggerOrDefault(o.Logger).Debug("bool operation executed",
		slog.String("variable", o.A.Name()),
		slog.String("operator", string(o.Operator)),
		slog.Bool("value", o.A.Value()),
	)

	if o.RaiseEvent {
		o.A.Raise()
	}

	return nil
}

func (o *Bool) ValidateIntegrity() error {
	errs := integrity.NewErrorSet()
	if o.A == nil {
		errs.Add(integrity.At("a", variable.ErrMissingVariable))
	}
	if !o.Operator.IsBool() {
		errs.Add(fmt.Errorf("unsupported bool operator %q", o.Operator))
	}
	if o.Operator == operators.SetTo {
		errs.Add(integrity.At("b", o.B.ValidateIntegrity()))
	}

	return errs.Defer(nil)
}
