package rule

import (
	"fmt"
	"log/slog"

	"github.com/rhino1998/basics/pkg/condition"
	"github.com/rhino1998/basics/pkg/integrity"
	"github.com/rhino1998/basics/pkg/operation"
)

// Rule runs its operations when all of its conditions pass.
type Rule struct {
	Name       string
	Conditions []*condition.Condition
	Operations []operation.Operation

	Logger *slog.Logger
}

func New(logger *slog.Logger, name string) *Rule {
	return &Rule{Name: name, Logger: logger}
}

func (r *Rule) When(conds ...*condition.Condition) *Rule {
	r.Conditions = append(r.Conditions, conds...)
	return r
}

func (r *Rule) Then(ops ...operation.Operation) *Rule {
	r.Operations = append(r.Operations, ops...)
	return r
}

// Run reports whether the rule fired. An error from an operation stops the
// remaining operations of the rule.
func (r *Rule) Run() (bool, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if !condition.PassAll(r.Conditions) {
		logger.Debug("rule skipped", slog.String("rule", r.Name))
		return false, nil
	}

	err := operation.ExecuteAll(r.Operations)
	if err != nil {
		return true, fmt.Errorf("rule %s: %w", r.Name, err)
	}

	logger.Debug("rule fired", slog.String("rule", r.Name), slog.Int("operations", len(r.Operations)))
	return true, nil
}

func (r *Rule) ValidateIntegrity() error {
	errs := integrity.NewErrorSet()
	errs.Add(integrity.At("conditions", condition.ValidateAll(r.Conditions)))
	errs.Add(integrity.At("operations", operation.ValidateAll(r.Operations)))
	return errs.Defer(nil)
}

// RunAll runs every rule in order and returns how many fired.
func RunAll(rules []*Rule) (int, error) {
	fired := 0
	for _, r := range rules {
		ok, err := r.Run()
		if ok {
			fired++
		}
		if err != nil {
			return fired, err
		}
	}

	return fired, nil
}
