package condition

import (
	"fmt"
	"log/slog"

	"github.com/rhino1998/basics/pkg/integrity"
	"github.com/rhino1998/basics/pkg/kinds"
	"github.com/rhino1998/basics/pkg/operators"
	"github.com/rhino1998/basics/pkg/variable"
)

// Condition compares two references of the kind selected by Kind. Only the
// pair of references matching Kind is read.
type Condition struct {
	Kind     kinds.Kind
	Operator operators.Comparison

	BoolA, BoolB     variable.BoolReference
	NumberA, NumberB variable.NumberReference
	VectorA, VectorB variable.VectorReference

	Logger *slog.Logger
}

func NewBool(logger *slog.Logger, op operators.Comparison, a, b variable.BoolReference) *Condition {
	return &Condition{Kind: kinds.Bool, Operator: op, BoolA: a, BoolB: b, Logger: logger}
}

func NewNumber(logger *slog.Logger, op operators.Comparison, a, b variable.NumberReference) *Condition {
	return &Condition{Kind: kinds.Number, Operator: op, NumberA: a, NumberB: b, Logger: logger}
}

func NewVector(logger *slog.Logger, op operators.Comparison, a, b variable.VectorReference) *Condition {
	return &Condition{Kind: kinds.Vector, Operator: op, VectorA: a, VectorB: b, Logger: logger}
}

func (c *Condition) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}

	return c.Logger
}

// Pass evaluates the condition against the current values of its
// references. Unknown kinds or operators log an error and fail.
func (c *Condition) Pass() bool {
	logger := c.logger()

	var result, ok bool
	switch c.Kind {
	case kinds.Bool:
		c.warnDangling(c.BoolA.Dangling(), c.BoolB.Dangling())
		result, ok = CompareBool(c.Operator, c.BoolA.Value(), c.BoolB.Value())
	case kinds.Number:
		c.warnDangling(c.NumberA.Dangling(), c.NumberB.Dangling())
		result, ok = CompareNumber(c.Operator, c.NumberA.Value(), c.NumberB.Value())
	case kinds.Vector:
		c.warnDangling(c.VectorA.Dangling(), c.VectorB.Dangling())
		result, ok = CompareVector(c.Operator, c.VectorA.Value(), c.VectorB.Value())
	default:
		logger.Error("unknown condition kind", slog.Any("kind", c.Kind))
		return false
	}

	if !ok {
		logger.Error("unknown comparison operator",
			slog.String("kind", c.Kind.String()),
			slog.String("operator", string(c.Operator)),
		)
		return false
	}

	logger.Debug("condition evaluated",
		slog.String("kind", c.Kind.String()),
		slog.String("operator", string(c.Operator)),
		slog.Bool("result", result),
	)

	return result
}

func (c *Condition) warnDangling(a, b bool) {
	if a || b {
		c.logger().Error("condition references a missing variable",
			slog.String("kind", c.Kind.String()),
			slog.Bool("a", a),
			slog.Bool("b", b),
		)
	}
}

func (c *Condition) ValidateIntegrity() error {
	errs := integrity.NewErrorSet()
	if !c.Operator.Valid() {
		errs.Add(fmt.Errorf("unknown comparison operator %q", c.Operator))
	}

	switch c.Kind {
	case kinds.Bool:
		errs.Add(integrity.At("a", c.BoolA.ValidateIntegrity()))
		errs.Add(integrity.At("b", c.BoolB.ValidateIntegrity()))
	case kinds.Number:
		errs.Add(integrity.At("a", c.NumberA.ValidateIntegrity()))
		errs.Add(integrity.At("b", c.NumberB.ValidateIntegrity()))
	case kinds.Vector:
		errs.Add(integrity.At("a", c.VectorA.ValidateIntegrity()))
		errs.Add(integrity.At("b", c.VectorB.ValidateIntegrity()))
	default:
		errs.Add(fmt.Errorf("unknown condition kind %v", c.Kind))
	}

	return errs.Defer(nil)
}

// PassAll reports whether every condition passes, stopping at the first
// failure. An empty or nil list passes. Nil entries are skipped.
func PassAll(conds []*Condition) bool {
	for _, c := range conds {
		if c == nil {
			continue
		}
		if !c.Pass() {
			return false
		}
	}

	return true
}

// ValidateAll checks every condition and reports problems by index.
func ValidateAll(conds []*Condition) error {
	errs := integrity.NewErrorSet()
	for i, c := range conds {
		if c == nil {
			errs.Add(integrity.At(fmt.Sprintf("[%d]", i), fmt.Errorf("nil condition")))
			continue
		}
		errs.Add(integrity.At(fmt.Sprintf("[%d]", i), c.ValidateIntegrity()))
	}

	return errs.Defer(nil)
}
