package state

import (
	"sort"

	"github.com/mesh-intelligence/larder/internal/identity"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// The merge functions are pure: (current state, remote reading) in,
// next state out. The engine is their only caller, and the tests
// exercise them directly.

// mergeMeals reconciles the remote meal list against local meals and
// their markers.
//
// With no pending local change, the remote list replaces local
// wholesale. Otherwise: tombstoned IDs are excluded even if the remote
// still has them (a local delete wins until confirmed); a touched meal
// keeps its local version, an untouched one takes the remote version
// when present; remote meals unknown locally are appended. A touched
// marker retires once the local and remote versions are structurally
// equal, and a tombstone retires once the remote no longer has the ID.
func mergeMeals(local, remote []types.Meal, touched, deleted map[string]int64) ([]types.Meal, map[string]int64, map[string]int64) {
	if len(touched) == 0 && len(deleted) == 0 {
		merged := make([]types.Meal, len(remote))
		copy(merged, remote)
		return merged, map[string]int64{}, map[string]int64{}
	}

	remoteByID := make(map[string]types.Meal, len(remote))
	for _, meal := range remote {
		remoteByID[meal.ID] = meal
	}
	localByID := make(map[string]types.Meal, len(local))
	for _, meal := range local {
		localByID[meal.ID] = meal
	}

	merged := make([]types.Meal, 0, len(local)+len(remote))
	for _, meal := range local {
		if _, gone := deleted[meal.ID]; gone {
			continue
		}
		if remoteMeal, ok := remoteByID[meal.ID]; ok && touched[meal.ID] == 0 {
			merged = append(merged, remoteMeal)
		} else {
			merged = append(merged, meal)
		}
	}
	for _, meal := range remote {
		if _, gone := deleted[meal.ID]; gone {
			continue
		}
		if _, known := localByID[meal.ID]; !known {
			merged = append(merged, meal)
		}
	}

	nextTouched := make(map[string]int64, len(touched))
	for id, at := range touched {
		nextTouched[id] = at
	}
	for _, remoteMeal := range remote {
		localMeal, known := localByID[remoteMeal.ID]
		if !known || touched[remoteMeal.ID] == 0 {
			continue
		}
		if localMeal.Equal(remoteMeal) {
			delete(nextTouched, remoteMeal.ID)
		}
	}

	nextDeleted := make(map[string]int64, len(deleted))
	for id, at := range deleted {
		if _, still := remoteByID[id]; still {
			nextDeleted[id] = at
		}
	}

	return merged, nextTouched, nextDeleted
}

// mergeGroceryWeek folds one week's remote items into the local items
// for the same week. Identity is the composite grocery key; per key the
// later UpdatedAt wins and the remote wins ties. Missing timestamps are
// epoch 0 and always lose. Local insertion order is preserved; new
// remote keys append.
func mergeGroceryWeek(local, remote []types.GroceryItem, defaultWeek string) []types.GroceryItem {
	type slot struct{ at int }
	index := make(map[identity.GroceryKey]slot, len(local))
	merged := make([]types.GroceryItem, 0, len(local)+len(remote))

	for _, item := range local {
		key := identity.KeyOf(item, defaultWeek)
		if existing, ok := index[key]; ok {
			merged[existing.at] = item
			continue
		}
		index[key] = slot{at: len(merged)}
		merged = append(merged, item)
	}

	for _, item := range remote {
		key := identity.KeyOf(item, defaultWeek)
		existing, ok := index[key]
		if !ok {
			index[key] = slot{at: len(merged)}
			merged = append(merged, item)
			continue
		}
		localTime := identity.ParseTimestamp(merged[existing.at].UpdatedAt)
		remoteTime := identity.ParseTimestamp(item.UpdatedAt)
		if remoteTime >= localTime {
			merged[existing.at] = item
		}
	}

	return merged
}

// mergeHistory unions local and remote weekly-plan snapshots keyed by
// week, local entries winning, sorted descending by week key (correct
// lexicographically because the key is a zero-padded ISO date).
func mergeHistory(local, remote []types.WeeklyPlanByWeek) []types.WeeklyPlanByWeek {
	byWeek := make(map[string]types.WeeklyPlanByWeek, len(local)+len(remote))
	for _, entry := range remote {
		byWeek[entry.WeekStart] = types.WeeklyPlanByWeek{
			WeekStart: entry.WeekStart,
			Days:      types.NormalizeWeeklyPlan(entry.Days),
		}
	}
	for _, entry := range local {
		byWeek[entry.WeekStart] = types.WeeklyPlanByWeek{
			WeekStart: entry.WeekStart,
			Days:      types.NormalizeWeeklyPlan(entry.Days),
		}
	}

	merged := make([]types.WeeklyPlanByWeek, 0, len(byWeek))
	for _, entry := range byWeek {
		merged = append(merged, entry)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].WeekStart > merged[j].WeekStart
	})
	return merged
}

// splitWeek partitions items into those belonging to week and the rest,
// preserving order within each partition.
func splitWeek(items []types.GroceryItem, week string) (inWeek, others []types.GroceryItem) {
	for _, item := range items {
		if item.WeekStart == week {
			inWeek = append(inWeek, item)
		} else {
			others = append(others, item)
		}
	}
	return inWeek, others
}
