package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func meal(id, name string, ingredients ...types.Ingredient) types.Meal {
	return types.Meal{ID: id, MealName: name, Ingredients: ingredients}
}

func TestMergeMealsRemoteReplacesWhenClean(t *testing.T) {
	local := []types.Meal{meal("m1", "Old pasta")}
	remote := []types.Meal{meal("m1", "New pasta"), meal("m2", "Soup")}

	merged, touched, deleted := mergeMeals(local, remote, nil, nil)

	assert.Equal(t, remote, merged)
	assert.Empty(t, touched)
	assert.Empty(t, deleted)
}

func TestMergeMealsTouchedKeepsLocal(t *testing.T) {
	local := []types.Meal{meal("m1", "Local edit")}
	remote := []types.Meal{meal("m1", "Remote version")}

	merged, touched, _ := mergeMeals(local, remote, map[string]int64{"m1": 1}, nil)

	require.Len(t, merged, 1)
	assert.Equal(t, "Local edit", merged[0].MealName)
	assert.Contains(t, touched, "m1")
}

func TestMergeMealsTouchedRetiresOnEquality(t *testing.T) {
	ing := types.Ingredient{ID: "i1", Ingredient: "pasta", Quantity: 1, Unit: "box"}
	local := []types.Meal{meal("m1", "Pasta night", ing)}
	// Same structure, different ingredient row ID: still equal.
	remoteIng := ing
	remoteIng.ID = "server-row-9"
	remote := []types.Meal{meal("m1", "Pasta night", remoteIng)}

	merged, touched, _ := mergeMeals(local, remote, map[string]int64{"m1": 1}, nil)

	require.Len(t, merged, 1)
	assert.NotContains(t, touched, "m1")
}

func TestMergeMealsUntouchedTakesRemote(t *testing.T) {
	local := []types.Meal{meal("m1", "Stale"), meal("m2", "Edited")}
	remote := []types.Meal{meal("m1", "Fresh"), meal("m2", "Remote")}

	merged, _, _ := mergeMeals(local, remote, map[string]int64{"m2": 1}, nil)

	require.Len(t, merged, 2)
	assert.Equal(t, "Fresh", merged[0].MealName)
	assert.Equal(t, "Edited", merged[1].MealName)
}

func TestMergeMealsTombstoneExcludes(t *testing.T) {
	local := []types.Meal{meal("m1", "Doomed"), meal("m2", "Kept")}
	remote := []types.Meal{meal("m1", "Doomed"), meal("m2", "Kept")}
	merged, _, nextDeleted := mergeMeals(local, remote, nil, map[string]int64{"m1": 1})

	require.Len(t, merged, 1)
	assert.Equal(t, "m2", merged[0].ID)
	// Remote still has m1, so the tombstone stays until confirmed.
	assert.Contains(t, nextDeleted, "m1")
}

func TestMergeMealsTombstoneRetiresOnRemoteAbsence(t *testing.T) {
	local := []types.Meal{meal("m2", "Kept")}
	remote := []types.Meal{meal("m2", "Kept")}

	merged, _, nextDeleted := mergeMeals(local, remote, nil, map[string]int64{"m1": 1})

	require.Len(t, merged, 1)
	assert.NotContains(t, nextDeleted, "m1")
}

func TestMergeMealsRemoteOnlyAppends(t *testing.T) {
	local := []types.Meal{meal("m1", "Mine")}
	remote := []types.Meal{meal("m2", "Theirs")}

	merged, _, _ := mergeMeals(local, remote, map[string]int64{"m1": 1}, nil)

	require.Len(t, merged, 2)
	assert.Equal(t, "m1", merged[0].ID)
	assert.Equal(t, "m2", merged[1].ID)
}

func groceryRow(name, unit, week, updatedAt string, qty float64, source types.Source) types.GroceryItem {
	return types.GroceryItem{
		ID:        "id-" + name + "-" + string(source),
		Name:      name,
		Quantity:  qty,
		Unit:      unit,
		Category:  types.CategoryPantry,
		WeekStart: week,
		UpdatedAt: updatedAt,
		Source:    source,
	}
}

func TestMergeGroceryWeekLastWriteWins(t *testing.T) {
	const week = "2026-08-24"
	tests := []struct {
		name    string
		localAt string
		remotAt string
		wantQty float64
	}{
		{name: "newer remote wins", localAt: "2026-08-24T10:00:00Z", remotAt: "2026-08-24T11:00:00Z", wantQty: 5},
		{name: "tie favors remote", localAt: "2026-08-24T10:00:00Z", remotAt: "2026-08-24T10:00:00Z", wantQty: 5},
		{name: "older remote loses", localAt: "2026-08-24T10:00:00Z", remotAt: "2026-08-24T09:00:00Z", wantQty: 2},
		{name: "unparseable remote timestamp loses", localAt: "2026-08-24T10:00:00Z", remotAt: "garbage", wantQty: 2},
		{name: "missing local timestamp loses", localAt: "", remotAt: "2026-08-24T09:00:00Z", wantQty: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := []types.GroceryItem{groceryRow("tomato", "cup", week, tt.localAt, 2, types.SourceManual)}
			remote := []types.GroceryItem{groceryRow("tomato", "cup", week, tt.remotAt, 5, types.SourceManual)}

			merged := mergeGroceryWeek(local, remote, week)

			require.Len(t, merged, 1)
			assert.Equal(t, tt.wantQty, merged[0].Quantity)
		})
	}
}

func TestMergeGroceryWeekKeyIsCaseAndSpaceInsensitive(t *testing.T) {
	const week = "2026-08-24"
	local := []types.GroceryItem{groceryRow(" Tomato ", "cup", week, "2026-08-24T10:00:00Z", 2, types.SourceManual)}
	remote := []types.GroceryItem{groceryRow("tomato", "cup", week, "2026-08-24T11:00:00Z", 5, types.SourceManual)}

	merged := mergeGroceryWeek(local, remote, week)

	require.Len(t, merged, 1)
	assert.Equal(t, 5.0, merged[0].Quantity)
}

func TestMergeGroceryWeekDistinctKeysCoexist(t *testing.T) {
	const week = "2026-08-24"
	local := []types.GroceryItem{
		groceryRow("tomato", "cup", week, "2026-08-24T10:00:00Z", 2, types.SourceManual),
	}
	remote := []types.GroceryItem{
		groceryRow("tomato", "tbsp", week, "2026-08-24T11:00:00Z", 1, types.SourceManual),
		groceryRow("tomato", "cup", week, "2026-08-24T11:00:00Z", 3, types.SourceGenerated),
	}

	merged := mergeGroceryWeek(local, remote, week)

	// Different unit and different source never collapse.
	assert.Len(t, merged, 3)
	assert.Equal(t, "tomato", merged[0].Name)
	assert.Equal(t, 2.0, merged[0].Quantity)
}

func TestMergeHistoryLocalWinsSortedDescending(t *testing.T) {
	local := []types.WeeklyPlanByWeek{
		{WeekStart: "2026-08-17", Days: types.WeeklyPlan{"mon": {"local"}}},
	}
	remote := []types.WeeklyPlanByWeek{
		{WeekStart: "2026-08-17", Days: types.WeeklyPlan{"mon": {"remote"}}},
		{WeekStart: "2026-08-24", Days: types.WeeklyPlan{"tue": {"r2"}}},
		{WeekStart: "2026-08-10", Days: nil},
	}

	merged := mergeHistory(local, remote)

	require.Len(t, merged, 3)
	assert.Equal(t, "2026-08-24", merged[0].WeekStart)
	assert.Equal(t, "2026-08-17", merged[1].WeekStart)
	assert.Equal(t, "2026-08-10", merged[2].WeekStart)
	// Local entry won for the shared week.
	assert.Equal(t, []string{"local"}, merged[1].Days["mon"])
	// Every merged snapshot is total.
	for _, entry := range merged {
		for _, day := range types.DayKeys {
			assert.NotNil(t, entry.Days[day])
		}
	}
}
