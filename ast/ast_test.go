package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tt := []struct {
		op     Operator
		expect Kind
	}{
		{OpLiteral, KindLiteral},
		{OpVar, KindVariable},
		{OpAnd, KindLogical},
		{OpOr, KindLogical},
		{OpNot, KindLogical},
		{OpEq, KindComparison},
		{OpNeq, KindComparison},
		{OpStrictEq, KindComparison},
		{OpStrictNeq, KindComparison},
		{OpGt, KindComparison},
		{OpGte, KindComparison},
		{OpLt, KindComparison},
		{OpLte, KindComparison},
		{OpIf, KindConditional},
		{OpAdd, KindArithmetic},
		{OpSub, KindArithmetic},
		{OpMul, KindArithmetic},
		{OpDiv, KindArithmetic},
		{OpMod, KindArithmetic},
	}

	for _, tc := range tt {
		t.Run(string(tc.op), func(t *testing.T) {
			assert.Equal(t, tc.expect, KindOf(tc.op))
		})
	}

	assert.Equal(t, KindInvalid, KindOf(Operator("bogus")))
}

func TestConstructors(t *testing.T) {
	lit := NewLiteral(42)
	require.Equal(t, KindLiteral, lit.Kind)
	require.Equal(t, OpLiteral, lit.Operator)
	require.Equal(t, 42, lit.Value)
	require.Nil(t, lit.Children)
	require.NotEmpty(t, lit.ID)

	v := NewVariable("unit.level")
	require.Equal(t, KindVariable, v.Kind)
	require.Equal(t, "unit.level", v.Value)

	op := NewOperator(OpAnd, lit, v)
	require.Equal(t, KindLogical, op.Kind)
	require.Nil(t, op.Value)
	require.Len(t, op.Children, 2)
	require.Same(t, lit, op.Children[0])
	require.Same(t, v, op.Children[1])

	// Zero operands still produce a children slice, never a value.
	empty := NewOperator(OpOr)
	require.NotNil(t, empty.Children)
	require.Len(t, empty.Children, 0)
}

func TestConstructors_FreshIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		b := NewLiteral(i)
		_, dup := seen[b.ID]
		require.False(t, dup, "duplicate id %q", b.ID)
		seen[b.ID] = struct{}{}
	}
}

func TestBlock_MarshalJSON(t *testing.T) {
	b := NewOperator(OpEq, NewVariable("type"), NewLiteral("settlement"))
	b.ID = "root"
	b.Children[0].ID = "lhs"
	b.Children[1].ID = "rhs"

	bb, err := json.Marshal(b)
	require.NoError(t, err)

	expect := `{
		"id": "root",
		"type": "comparison",
		"operator": "==",
		"children": [
			{"id": "lhs", "type": "variable", "operator": "var", "value": "type"},
			{"id": "rhs", "type": "literal", "operator": "literal", "value": "settlement"}
		]
	}`
	assert.JSONEq(t, expect, string(bb))
}

func TestKind_UnmarshalText(t *testing.T) {
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("arithmetic")))
	assert.Equal(t, KindArithmetic, k)

	require.Error(t, k.UnmarshalText([]byte("nope")))
}

func TestOperator_Name(t *testing.T) {
	assert.Equal(t, "AND", OpAnd.Name())
	assert.Equal(t, "OR", OpOr.Name())
	assert.Equal(t, "NOT", OpNot.Name())
	assert.Equal(t, "IF", OpIf.Name())
	assert.Equal(t, `"=="`, OpEq.Name())
	assert.Equal(t, `"+"`, OpAdd.Name())
}
