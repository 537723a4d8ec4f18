package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestParseIngredients(t *testing.T) {
	got, err := parseIngredients([]string{"pasta:1:box", "zucchini:2.5", " salt : 0.5 : tsp "})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, types.Ingredient{Ingredient: "pasta", Quantity: 1, Unit: "box"}, got[0])
	assert.Equal(t, types.Ingredient{Ingredient: "zucchini", Quantity: 2.5}, got[1])
	assert.Equal(t, types.Ingredient{Ingredient: "salt", Quantity: 0.5, Unit: "tsp"}, got[2])
}

func TestParseIngredientsRejectsBadSpecs(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"pasta", types.ErrInvalidName},
		{":1:box", types.ErrInvalidName},
		{"pasta:none", types.ErrInvalidQuantity},
		{"pasta:0", types.ErrInvalidQuantity},
		{"pasta:-1:box", types.ErrInvalidQuantity},
	}
	for _, tt := range tests {
		_, err := parseIngredients([]string{tt.spec})
		assert.ErrorIs(t, err, tt.wantErr, tt.spec)
	}
}

func TestParseWeek(t *testing.T) {
	got, err := parseWeek("2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", got)

	got, err = parseWeek("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseWeek("2026-08-26")
	assert.ErrorIs(t, err, types.ErrInvalidWeek)

	_, err = parseWeek("not-a-date")
	assert.ErrorIs(t, err, types.ErrInvalidWeek)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(types.ErrNotFound))
	assert.Equal(t, exitUserError, exitCode(types.ErrInvalidDay))
	assert.Equal(t, exitSysError, exitCode(assert.AnError))
}
