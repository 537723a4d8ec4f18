package state

import (
	"context"

	"github.com/mesh-intelligence/larder/internal/identity"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// GenerateGroceryList builds the selected planner week's grocery list
// from its assigned meals and returns the freshly generated items.
//
// The walk is mon through sun in fixed order; meal IDs missing from the
// meal collection are skipped, a dangling plan reference is not an
// error. Collected ingredients are summed by (normalized name, unit)
// and replace the week's generated-source items wholesale, so re-running
// against an unchanged plan is idempotent. A new item inherits the
// category of a same-(name, unit) item already in the week, manual or
// generated, and defaults to pantry otherwise. Manual items are never
// touched.
//
// The remote mirror gets the same idempotent replace; on confirmation
// the week is re-pulled and merged to absorb server-side category
// corrections or concurrent edits. A history snapshot of the plan is
// recorded unconditionally, even when the remote call fails: history
// captures planning intent, not confirmed sync state.
func (s *Store) GenerateGroceryList(ctx context.Context) []types.GroceryItem {
	s.mu.Lock()
	week := s.plannerWeek
	plan := types.NormalizeWeeklyPlan(s.plans[week])

	mealsByID := make(map[string]types.Meal, len(s.meals))
	for _, meal := range s.meals {
		mealsByID[meal.ID] = meal
	}
	var collected []types.Ingredient
	for _, day := range types.DayKeys {
		for _, mealID := range plan[day] {
			meal, ok := mealsByID[mealID]
			if !ok {
				continue
			}
			collected = append(collected, meal.Ingredients...)
		}
	}
	summed := identity.SumIngredients(collected)

	weekItems, others := splitWeek(s.grocery, week)

	type categoryKey struct{ name, unit string }
	categories := make(map[categoryKey]types.Category, len(weekItems))
	manual := make([]types.GroceryItem, 0, len(weekItems))
	for _, item := range weekItems {
		categories[categoryKey{identity.NormalizeName(item.Name), item.Unit}] = item.Category
		if item.Source != types.SourceGenerated {
			manual = append(manual, item)
		}
	}

	stamp := s.timestamp()
	generated := make([]types.GroceryItem, 0, len(summed))
	for _, ing := range summed {
		category := types.DefaultCategory
		if existing, ok := categories[categoryKey{identity.NormalizeName(ing.Ingredient), ing.Unit}]; ok {
			category = existing
		}
		generated = append(generated, types.GroceryItem{
			ID:        identity.NewID(),
			Name:      ing.Ingredient,
			Quantity:  ing.Quantity,
			Unit:      ing.Unit,
			Category:  category,
			Checked:   false,
			WeekStart: week,
			UpdatedAt: stamp,
			Source:    types.SourceGenerated,
		})
	}

	s.grocery = append(append(others, manual...), generated...)
	s.persistGrocery()
	s.recordHistory(week, plan)
	s.mu.Unlock()

	s.push(ctx, func(ctx context.Context) bool {
		if _, ok := s.gw.GenerateGroceryList(ctx, week, summed); !ok {
			return false
		}
		refreshed, ok := s.gw.GroceryItems(ctx, week)
		if !ok {
			return false
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		defaultWeek := identity.WeekStartKey(s.now())
		remoteWeek := types.NormalizeGroceryItems(refreshed, defaultWeek)
		localWeek, rest := splitWeek(s.grocery, week)
		s.grocery = append(rest, mergeGroceryWeek(localWeek, remoteWeek, defaultWeek)...)
		s.persistGrocery()
		return true
	})

	return generated
}
