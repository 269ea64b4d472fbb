package operation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rhino1998/basics/pkg/integrity"
)

var ErrDivideByZero = errors.New("integer division by zero")

// Operation assigns a computed value to a destination variable.
type Operation interface {
	Execute() error
	ValidateIntegrity() error
}

// ExecuteAll runs ops in order. The first error stops the batch and is
// returned; the operations after it do not run.
func ExecuteAll(ops []Operation) error {
	for i, op := range ops {
		err := op.Execute()
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}

	return nil
}

// ValidateAll checks every operation and reports problems by index.
func ValidateAll(ops []Operation) error {
	errs := integrity.NewErrorSet()
	for i, op := range ops {
		errs.Add(integrity.At(fmt.Sprintf("[%d]", i), op.ValidateIntegrity()))
	}

	return errs.Defer(nil)
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}

	return logger
}

type operand struct {
	name     string
	dangling bool
}

// warnDangling logs the operands that use a variable which is missing. They
// read as zero.
func warnDangling(logger *slog.Logger, kind string, operands ...operand) {
	var missing []string
	for _, o := range operands {
		if o.dangling {
			missing = append(missing, o.name)
		}
	}
	if len(missing) == 0 {
		return
	}

	logger.Error("operation references a missing variable",
		slog.String("kind", kind),
		slog.Any("operands", missing),
	)
}
