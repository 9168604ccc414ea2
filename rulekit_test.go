package rulekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulekit/rulekit"
)

func TestEndToEnd(t *testing.T) {
	src := []byte(`{
		"and": [
			{"==": [{"var": "type"}, "settlement"]},
			{"or": [
				{">": [{"var": "level"}, 3]},
				{"==": [{"var": "status"}, "active"]}
			]}
		]
	}`)

	blocks, err := rulekit.ParseJSON(src)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	diags := rulekit.Validate(blocks)
	assert.Empty(t, diags)

	out, err := rulekit.SerializeJSON(blocks)
	require.NoError(t, err)
	assert.JSONEq(t, string(src), string(out))
}

func TestEndToEnd_Evaluate(t *testing.T) {
	blocks, err := rulekit.ParseJSON([]byte(`{">": [{"var": "level"}, 3]}`))
	require.NoError(t, err)

	e, err := rulekit.Serialize(blocks)
	require.NoError(t, err)

	res, evaluated := rulekit.Evaluate(e, map[string]any{"level": 7})
	require.True(t, evaluated)
	require.NoError(t, res.Err)
	assert.Equal(t, true, res.Value)

	res, evaluated = rulekit.Evaluate(e, map[string]any{"level": 1})
	require.True(t, evaluated)
	require.NoError(t, res.Err)
	assert.Equal(t, false, res.Value)
}

// Validate passing means Serialize cannot fail on arity for the same
// tree.
func TestValidateGuardsSerialize(t *testing.T) {
	blocks, err := rulekit.Parse(map[string]any{
		"if": []any{
			map[string]any{"!": map[string]any{"var": "disabled"}},
			map[string]any{"+": []any{map[string]any{"var": "base"}, 1}},
			0,
		},
	})
	require.NoError(t, err)

	require.Empty(t, rulekit.Validate(blocks))
	_, err = rulekit.Serialize(blocks)
	assert.NoError(t, err)
}
