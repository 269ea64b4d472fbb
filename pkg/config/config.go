// Package config decodes a YAML document describing variables and rules
// and builds the live objects from it.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rhino1998/basics/pkg/kinds"
	"github.com/rhino1998/basics/pkg/operators"
	"gopkg.in/yaml.v3"
)

type Document struct {
	Variables []VariableSpec `yaml:"variables"`
	Rules     []RuleSpec     `yaml:"rules"`
}

// VariableSpec declares a cell. Type is one of bool, int, float, double,
// vector2, vector3, vector4, vector2int or vector3int.
type VariableSpec struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"`
	Value yaml.Node `yaml:"value"`
	Min   *RefSpec  `yaml:"min"`
	Max   *RefSpec  `yaml:"max"`
}

// RefSpec is either a constant or the name of a variable. Number constants
// are ints or floats depending on how they are written unless Type says
// otherwise; vector constants are float vectors of their own length.
type RefSpec struct {
	Constant yaml.Node `yaml:"constant"`
	Variable string    `yaml:"variable"`
	Type     string    `yaml:"type"`
}

func (r RefSpec) isZero() bool {
	return r.Constant.Kind == 0 && r.Variable == ""
}

type RuleSpec struct {
	Name       string          `yaml:"name"`
	Conditions []ConditionSpec `yaml:"conditions"`
	Operations []OperationSpec `yaml:"operations"`
}

type ConditionSpec struct {
	Kind kinds.Kind           `yaml:"kind"`
	Op   operators.Comparison `yaml:"op"`
	A    RefSpec              `yaml:"a"`
	B    RefSpec              `yaml:"b"`
}

// OperationSpec holds exactly one of its fields.
type OperationSpec struct {
	Bool   *BoolOperationSpec   `yaml:"bool"`
	Number *NumberOperationSpec `yaml:"number"`
	Vector *VectorOperationSpec `yaml:"vector"`
}

type BoolOperationSpec struct {
	Target string               `yaml:"target"`
	Op     operators.Assignment `yaml:"op"`
	B      RefSpec              `yaml:"b"`
	Raise  bool                 `yaml:"raise"`
}

type NumberOperationSpec struct {
	Target    string               `yaml:"target"`
	Op        operators.Assignment `yaml:"op"`
	RightHand operators.Arithmetic `yaml:"rightHand"`
	B         RefSpec              `yaml:"b"`
	C         RefSpec              `yaml:"c"`
	Rounding  operators.Rounding   `yaml:"rounding"`
	Raise     bool                 `yaml:"raise"`
}

type VectorOperationSpec struct {
	Target    string               `yaml:"target"`
	Op        operators.Assignment `yaml:"op"`
	RightHand operators.Arithmetic `yaml:"rightHand"`
	B         RefSpec              `yaml:"b"`
	C         RefSpec              `yaml:"c"`
	Scalar    RefSpec              `yaml:"scalar"`
	Raise     bool                 `yaml:"raise"`
}

// Load decodes a document, rejecting unknown fields.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	err := dec.Decode(&doc)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
