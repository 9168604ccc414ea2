package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPath(t *testing.T) {
	tt := []struct {
		input  string
		expect bool
	}{
		{"level", true},
		{"unit.level", true},
		{"units.0.name", true},
		{"_private", true},
		{"a_b.c_d", true},
		{"", false},
		{".", false},
		{"unit.", false},
		{".level", false},
		{"unit..level", false},
		{"unit-level", false},
		{"unit level", false},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expect, IsValidPath(tc.input))
		})
	}
}

func TestSanitizePath(t *testing.T) {
	tt := []struct {
		input  string
		expect string
	}{
		{"unit.level", "unit.level"},
		{"unit-level", "unit_level"},
		{"unit level.x y", "unit_level.x_y"},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			got, err := SanitizePath(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}

	_, err := SanitizePath("")
	require.Error(t, err)
}
