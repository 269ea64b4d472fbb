package config_test

import (
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/basics/pkg/config"
	"github.com/rhino1998/basics/pkg/integrity"
	"github.com/rhino1998/basics/pkg/numeric"
	"github.com/rhino1998/basics/pkg/rule"
	"github.com/rhino1998/basics/pkg/variable"
	"github.com/rhino1998/basics/pkg/vector"
	"github.com/stretchr/testify/require"
)

func TestLoadAndBuild(t *testing.T) {
	r := require.New(t)
	logger := slogt.New(t)

	doc, err := config.LoadFile("testdata/game.yaml")
	r.NoError(err)
	r.Len(doc.Variables, 6)
	r.Len(doc.Rules, 3)

	store, rules, err := doc.Build(logger)
	r.NoError(err)
	r.Len(rules, 3)
	r.NoError(store.ValidateIntegrity())
	r.NoError(integrity.Check("rules", rules))

	hp, err := store.Number("hp")
	r.NoError(err)
	r.Equal(numeric.Int(3), hp.Value())
	r.True(hp.ClampMax)

	speed, err := store.Number("speed")
	r.NoError(err)
	r.Equal(numeric.Double(1.5), speed.Value())

	var raised []numeric.Number
	hp.Changed.Subscribe(func(v numeric.Number) { raised = append(raised, v) })

	for range 3 {
		_, err := rule.RunAll(rules)
		r.NoError(err)
	}

	r.Equal(numeric.Int(5), hp.Value())
	r.Equal([]numeric.Number{numeric.Int(4), numeric.Int(5)}, raised)

	pos, err := store.Vector("pos")
	r.NoError(err)
	r.Equal(vector.New2(1+3*8, 2+3*10), pos.Value())

	cell, err := store.Vector("cell")
	r.NoError(err)
	r.Equal(vector.New3Int(0, 0, 0), cell.Value())

	r.Equal(numeric.Double(1.5/8), speed.Value())
}

func TestBuildClampsOnReset(t *testing.T) {
	r := require.New(t)

	doc, err := config.Load(strings.NewReader(`
variables:
  - {name: hp, type: float, value: 12.5, max: {variable: maxHp}}
  - {name: maxHp, type: float, value: 10}
`))
	r.NoError(err)

	store, _, err := doc.Build(slogt.New(t))
	r.NoError(err)

	hp, err := store.Number("hp")
	r.NoError(err)
	r.Equal(numeric.Float(12.5), hp.Value())

	r.NoError(store.ResetAll())
	r.Equal(numeric.Float(10), hp.Value())
}

func TestBuildReportsEveryProblem(t *testing.T) {
	r := require.New(t)

	doc, err := config.LoadFile("testdata/broken.yaml")
	r.NoError(err)

	_, _, err = doc.Build(slogt.New(t))
	r.Error(err)

	r.ErrorIs(err, variable.ErrDuplicateName)
	r.ErrorIs(err, config.ErrUnknownType)
	r.ErrorIs(err, config.ErrBadConstant)
	r.ErrorIs(err, variable.ErrNotFound)
	r.ErrorIs(err, variable.ErrWrongType)
	r.ErrorIs(err, config.ErrBadOperation)

	msg := err.Error()
	r.Contains(msg, "variables[1]")
	r.Contains(msg, "variables[2]")
	r.Contains(msg, "variables[3]")
	r.Contains(msg, "rules[0].conditions[0].a")
	r.Contains(msg, "rules[0].conditions[1].a")
	r.Contains(msg, "rules[0].operations[0].target")
	r.Contains(msg, "rules[0].operations[1]")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := config.Load(strings.NewReader("variables:\n  - {name: a, type: bool, initial: true}\n"))
	require.Error(t, err)
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	_, err := config.Load(strings.NewReader(`
rules:
  - conditions:
      - {kind: string, op: "==", a: {constant: 1}, b: {constant: 1}}
`))
	require.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	r := require.New(t)

	doc, err := config.Load(strings.NewReader(""))
	r.NoError(err)

	store, rules, err := doc.Build(nil)
	r.NoError(err)
	r.Empty(store.Cells())
	r.Empty(rules)
}

func TestNumberConstantKinds(t *testing.T) {
	r := require.New(t)

	doc, err := config.Load(strings.NewReader(`
variables:
  - {name: d, type: double}
rules:
  - name: kinds
    operations:
      - number: {target: d, op: "=", rightHand: "+", b: {constant: 0.1}, c: {constant: 0.1, type: double}}
`))
	r.NoError(err)

	store, rules, err := doc.Build(slogt.New(t))
	r.NoError(err)

	_, err = rule.RunAll(rules)
	r.NoError(err)

	d, err := store.Number("d")
	r.NoError(err)
	r.Equal(numeric.Double(float64(float32(0.1))+0.1), d.Value())
}
