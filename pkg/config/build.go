package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/rhino1998/basics/pkg/condition"
	"github.com/rhino1998/basics/pkg/integrity"
	"github.com/rhino1998/basics/pkg/kinds"
	"github.com/rhino1998/basics/pkg/numeric"
	"github.com/rhino1998/basics/pkg/operation"
	"github.com/rhino1998/basics/pkg/rule"
	"github.com/rhino1998/basics/pkg/variable"
	"github.com/rhino1998/basics/pkg/vector"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownType  = errors.New("unknown variable type")
	ErrBadConstant  = errors.New("invalid constant")
	ErrBadOperation = errors.New("operation must set exactly one of bool, number or vector")
)

type builder struct {
	logger *slog.Logger
	store  *variable.Store
	errs   *integrity.ErrorSet
}

// Build creates the variables and rules described by d. Every problem
// found is returned together, each located by its path in the document.
func (d *Document) Build(logger *slog.Logger) (*variable.Store, []*rule.Rule, error) {
	if logger == nil {
		logger = slog.Default()
	}

	b := &builder{
		logger: logger,
		store:  variable.NewStore(),
		errs:   integrity.NewErrorSet(),
	}

	for i, spec := range d.Variables {
		path := fmt.Sprintf("variables[%d]", i)
		c, err := newCell(spec)
		if err != nil {
			b.errs.Add(integrity.At(path, err))
			continue
		}

		b.errs.Add(integrity.At(path, b.store.Put(c)))
	}

	// Bounds are resolved once every variable exists so they may refer
	// to variables declared later.
	for i, spec := range d.Variables {
		if spec.Min == nil && spec.Max == nil {
			continue
		}

		path := fmt.Sprintf("variables[%d]", i)
		n, err := b.store.Number(spec.Name)
		if err != nil {
			b.errs.Add(integrity.At(path, fmt.Errorf("min and max are only allowed on number variables: %w", err)))
			continue
		}

		if spec.Min != nil {
			n.ClampMin = true
			n.Min = b.numberRef(path+".min", *spec.Min)
		}
		if spec.Max != nil {
			n.ClampMax = true
			n.Max = b.numberRef(path+".max", *spec.Max)
		}
	}

	rules := make([]*rule.Rule, 0, len(d.Rules))
	for i, spec := range d.Rules {
		rules = append(rules, b.rule(fmt.Sprintf("rules[%d]", i), spec))
	}

	err := b.errs.Defer(nil)
	if err != nil {
		return nil, nil, err
	}

	return b.store, rules, nil
}

func newCell(spec VariableSpec) (variable.Cell, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("variable has no name")
	}

	switch spec.Type {
	case "bool":
		var v bool
		if spec.Value.Kind != 0 {
			err := spec.Value.Decode(&v)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadConstant, err)
			}
		}
		return variable.NewBool(spec.Name, v), nil
	case "int", "float", "double":
		kind, err := numeric.ParseKind(spec.Type)
		if err != nil {
			return nil, err
		}

		v := numeric.Zero(kind)
		if spec.Value.Kind != 0 {
			v, err = decodeNumber(&spec.Value, kind)
			if err != nil {
				return nil, err
			}
		}
		return variable.NewNumber(spec.Name, v), nil
	default:
		kind, err := vector.ParseKind(spec.Type)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownType, spec.Type)
		}

		v := vector.Zero(kind)
		if spec.Value.Kind != 0 {
			v, err = decodeVector(&spec.Value, kind)
			if err != nil {
				return nil, err
			}
		}
		return variable.NewVector(spec.Name, v), nil
	}
}

// numberKind infers the kind of a constant from how it is written.
func numberKind(node *yaml.Node) (numeric.Kind, error) {
	switch node.ShortTag() {
	case "!!int":
		return numeric.Int32, nil
	case "!!float":
		return numeric.Float32, nil
	default:
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadConstant, node.Value)
	}
}

func decodeNumber(node *yaml.Node, kind numeric.Kind) (numeric.Number, error) {
	if _, err := numberKind(node); err != nil {
		return numeric.Number{}, err
	}

	if kind == numeric.Int32 && node.ShortTag() == "!!int" {
		var i int64
		err := node.Decode(&i)
		if err != nil {
			return numeric.Number{}, fmt.Errorf("%w: %v", ErrBadConstant, err)
		}
		if i > math.MaxInt32 || i < math.MinInt32 {
			return numeric.Number{}, fmt.Errorf("%w: %d overflows int", ErrBadConstant, i)
		}
		return numeric.Int(int32(i)), nil
	}

	var f float64
	err := node.Decode(&f)
	if err != nil {
		return numeric.Number{}, fmt.Errorf("%w: %v", ErrBadConstant, err)
	}

	return numeric.Double(f).As(kind), nil
}

func decodeVector(node *yaml.Node, kind vector.Kind) (vector.Vector, error) {
	var c []float64
	err := node.Decode(&c)
	if err != nil {
		return vector.Vector{}, fmt.Errorf("%w: %v", ErrBadConstant, err)
	}
	if len(c) != kind.Len() {
		return vector.Vector{}, fmt.Errorf("%w: %s needs %d components, got %d", ErrBadConstant, kind, kind.Len(), len(c))
	}

	return vector.FromComponents(kind, c), nil
}

func (b *builder) refError(path string, err error) {
	b.errs.Add(integrity.At(path, err))
}

func (b *builder) checkRef(path string, spec RefSpec) bool {
	if spec.Variable != "" && spec.Constant.Kind != 0 {
		b.refError(path, fmt.Errorf("reference sets both constant and variable"))
		return false
	}

	return true
}

func (b *builder) boolRef(path string, spec RefSpec) variable.BoolReference {
	if !b.checkRef(path, spec) {
		return variable.BoolReference{}
	}

	if spec.Variable != "" {
		v, err := b.store.Bool(spec.Variable)
		if err != nil {
			b.refError(path, err)
		}
		return variable.BoolVariable(v)
	}

	var c bool
	if spec.Constant.Kind != 0 {
		err := spec.Constant.Decode(&c)
		if err != nil {
			b.refError(path, fmt.Errorf("%w: %v", ErrBadConstant, err))
		}
	}

	return variable.BoolConstant(c)
}

func (b *builder) numberRef(path string, spec RefSpec) variable.NumberReference {
	if !b.checkRef(path, spec) {
		return variable.NumberReference{}
	}

	if spec.Variable != "" {
		v, err := b.store.Number(spec.Variable)
		if err != nil {
			b.refError(path, err)
		}
		return variable.NumberVariable(v)
	}

	if spec.Constant.Kind == 0 {
		return variable.NumberConstant(numeric.Int(0))
	}

	var kind numeric.Kind
	var err error
	if spec.Type != "" {
		kind, err = numeric.ParseKind(spec.Type)
	} else {
		kind, err = numberKind(&spec.Constant)
	}
	if err != nil {
		b.refError(path, err)
		return variable.NumberReference{}
	}

	n, err := decodeNumber(&spec.Constant, kind)
	if err != nil {
		b.refError(path, err)
	}

	return variable.NumberConstant(n)
}

func (b *builder) vectorRef(path string, spec RefSpec) variable.VectorReference {
	if !b.checkRef(path, spec) {
		return variable.VectorReference{}
	}

	if spec.Variable != "" {
		v, err := b.store.Vector(spec.Variable)
		if err != nil {
			b.refError(path, err)
		}
		return variable.VectorVariable(v)
	}

	if spec.Constant.Kind == 0 {
		return variable.VectorConstant(vector.Zero(vector.Vector2))
	}

	var c []float64
	err := spec.Constant.Decode(&c)
	if err != nil {
		b.refError(path, fmt.Errorf("%w: %v", ErrBadConstant, err))
		return variable.VectorReference{}
	}

	kind := vector.KindOf(len(c), false)
	if spec.Type != "" {
		kind, err = vector.ParseKind(spec.Type)
		if err != nil {
			b.refError(path, err)
			return variable.VectorReference{}
		}
	}

	v, err := decodeVector(&spec.Constant, kind)
	if err != nil {
		b.refError(path, err)
	}

	return variable.VectorConstant(v)
}

func (b *builder) rule(path string, spec RuleSpec) *rule.Rule {
	r := rule.New(b.logger, spec.Name)
	if r.Name == "" {
		r.Name = path
	}

	for i, cs := range spec.Conditions {
		r.When(b.condition(fmt.Sprintf("%s.conditions[%d]", path, i), cs))
	}

	for i, ops := range spec.Operations {
		op := b.operation(fmt.Sprintf("%s.operations[%d]", path, i), ops)
		if op != nil {
			r.Then(op)
		}
	}

	return r
}

func (b *builder) condition(path string, spec ConditionSpec) *condition.Condition {
	c := &condition.Condition{Kind: spec.Kind, Operator: spec.Op, Logger: b.logger}

	switch spec.Kind {
	case kinds.Bool:
		c.BoolA = b.boolRef(path+".a", spec.A)
		c.BoolB = b.boolRef(path+".b", spec.B)
	case kinds.Number:
		c.NumberA = b.numberRef(path+".a", spec.A)
		c.NumberB = b.numberRef(path+".b", spec.B)
	case kinds.Vector:
		c.VectorA = b.vectorRef(path+".a", spec.A)
		c.VectorB = b.vectorRef(path+".b", spec.B)
	default:
		b.errs.Add(integrity.At(path, fmt.Errorf("condition has no kind")))
	}

	return c
}

func (b *builder) operation(path string, spec OperationSpec) operation.Operation {
	set := 0
	for _, ok := range []bool{spec.Bool != nil, spec.Number != nil, spec.Vector != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		b.errs.Add(integrity.At(path, ErrBadOperation))
		return nil
	}

	switch {
	case spec.Bool != nil:
		s := spec.Bool
		target, err := b.store.Bool(s.Target)
		if err != nil {
			b.errs.Add(integrity.At(path+".target", err))
		}

		op := operation.NewBool(b.logger, target, s.Op, b.boolRef(path+".b", s.B))
		op.RaiseEvent = s.Raise
		return op
	case spec.Number != nil:
		s := spec.Number
		target, err := b.store.Number(s.Target)
		if err != nil {
			b.errs.Add(integrity.At(path+".target", err))
		}

		op := operation.NewNumber(b.logger, target, s.Op, s.RightHand, b.numberRef(path+".b", s.B), b.numberRef(path+".c", s.C))
		op.Rounding = s.Rounding
		op.RaiseEvent = s.Raise
		return op
	default:
		s := spec.Vector
		target, err := b.store.Vector(s.Target)
		if err != nil {
			b.errs.Add(integrity.At(path+".target", err))
		}

		op := operation.NewVector(b.logger, target, s.Op, s.RightHand, b.vectorRef(path+".b", s.B), b.vectorRef(path+".c", s.C))
		if !s.Scalar.isZero() {
			op.Scalar = b.numberRef(path+".scalar", s.Scalar)
		}
		op.RaiseEvent = s.Raise
		return op
	}
}
