package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Tomato", want: "tomato"},
		{name: "trims whitespace", in: "  Tomato \t", want: "tomato"},
		{name: "interior spaces kept", in: "Olive Oil", want: "olive oil"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestWeekStartKey(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "monday resolves to itself",
			date: time.Date(2026, 8, 24, 10, 0, 0, 0, time.Local),
			want: "2026-08-24",
		},
		{
			name: "wednesday resolves to its monday",
			date: time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local),
			want: "2026-08-24",
		},
		{
			name: "saturday resolves to its monday",
			date: time.Date(2026, 8, 29, 23, 59, 0, 0, time.Local),
			want: "2026-08-24",
		},
		{
			name: "sunday maps to the previous monday",
			date: time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local),
			want: "2026-08-24",
		},
		{
			name: "sunday crossing a month boundary",
			date: time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local),
			want: "2026-02-23",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStartKey(tt.date))
		})
	}
}

func TestWeekStartKeySundayAndEarlierMondayAgree(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	monday := sunday.AddDate(0, 0, -6)
	require.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, WeekStartKey(monday), WeekStartKey(sunday))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{name: "empty is epoch zero", in: "", want: 0},
		{name: "garbage is epoch zero", in: "not-a-time", want: 0},
		{name: "rfc3339", in: "2026-08-24T10:30:00Z", want: 1787567400000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimestamp(tt.in))
		})
	}
}

func TestParseTimestampOrdering(t *testing.T) {
	earlier := ParseTimestamp("2026-08-24T10:00:00Z")
	later := ParseTimestamp("2026-08-24T10:00:01Z")
	assert.Less(t, earlier, later)
}

func TestKeyOf(t *testing.T) {
	item := types.GroceryItem{Name: " Tomato ", Unit: "cup", WeekStart: "2026-08-24", Source: types.SourceGenerated}
	key := KeyOf(item, "2026-08-31")
	assert.Equal(t, GroceryKey{Name: "tomato", Unit: "cup", WeekStart: "2026-08-24", Source: types.SourceGenerated}, key)
}

func TestKeyOfDefaults(t *testing.T) {
	item := types.GroceryItem{Name: "Milk"}
	key := KeyOf(item, "2026-08-31")
	assert.Equal(t, "2026-08-31", key.WeekStart)
	assert.Equal(t, types.SourceManual, key.Source)
}

func TestKeyOfDistinguishesSources(t *testing.T) {
	manual := types.GroceryItem{Name: "flour", WeekStart: "2026-08-24", Source: types.SourceManual}
	generated := types.GroceryItem{Name: "flour", WeekStart: "2026-08-24", Source: types.SourceGenerated}
	assert.NotEqual(t, KeyOf(manual, ""), KeyOf(generated, ""))
}

func TestSumIngredients(t *testing.T) {
	in := []types.Ingredient{
		{Ingredient: "tomato", Quantity: 2, Unit: "cup"},
		{Ingredient: "Tomato ", Quantity: 1, Unit: "cup"},
		{Ingredient: "tomato", Quantity: 1, Unit: "tbsp"},
	}
	got := SumIngredients(in)
	require.Len(t, got, 2)
	assert.Equal(t, "tomato", strings.ToLower(strings.TrimSpace(got[0].Ingredient)))
	assert.Equal(t, 3.0, got[0].Quantity)
	assert.Equal(t, "cup", got[0].Unit)
	assert.Equal(t, 1.0, got[1].Quantity)
	assert.Equal(t, "tbsp", got[1].Unit)
}

func TestSumIngredientsPreservesFirstSeenOrder(t *testing.T) {
	in := []types.Ingredient{
		{Ingredient: "zucchini", Quantity: 2, Unit: "pcs"},
		{Ingredient: "pasta", Quantity: 1, Unit: "box"},
		{Ingredient: "Zucchini", Quantity: 1, Unit: "pcs"},
	}
	got := SumIngredients(in)
	require.Len(t, got, 2)
	assert.Equal(t, "zucchini", got[0].Ingredient)
	assert.Equal(t, 3.0, got[0].Quantity)
	assert.Equal(t, "pasta", got[1].Ingredient)
}

func TestSumIngredientsEmpty(t *testing.T) {
	assert.Empty(t, SumIngredients(nil))
}
