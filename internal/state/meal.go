package state

import (
	"context"

	"github.com/mesh-intelligence/larder/internal/identity"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// AddMeal assigns IDs, applies the meal locally, marks it touched, and
// creates it remotely in the background. The touched marker clears only
// on confirmed creation; until then every pull keeps the local version.
func (s *Store) AddMeal(ctx context.Context, meal types.Meal) types.Meal {
	s.mu.Lock()
	meal.ID = identity.NewID()
	for i := range meal.Ingredients {
		if meal.Ingredients[i].ID == "" {
			meal.Ingredients[i].ID = identity.NewID()
		}
	}
	s.meals = append([]types.Meal{meal}, s.meals...)
	s.mealsTouched[meal.ID] = s.now().UnixMilli()
	delete(s.mealsDeleted, meal.ID)
	s.persistMeals()
	s.persistMealsTouched()
	s.persistMealsDeleted()
	s.mu.Unlock()

	s.push(ctx, func(ctx context.Context) bool {
		_, ok := s.gw.CreateMeal(ctx, meal)
		if !ok {
			return false
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.mealsTouched, meal.ID)
		s.persistMealsTouched()
		return true
	})

	return meal
}

// UpdateMeal replaces the stored meal with the same ID, marks it
// touched, and mirrors the replacement. Returns false when the ID is
// unknown locally.
func (s *Store) UpdateMeal(ctx context.Context, meal types.Meal) bool {
	s.mu.Lock()
	found := false
	for i, existing := range s.meals {
		if existing.ID == meal.ID {
			s.meals[i] = meal
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return false
	}
	s.mealsTouched[meal.ID] = s.now().UnixMilli()
	s.persistMeals()
	s.persistMealsTouched()
	s.mu.Unlock()

	s.push(ctx, func(ctx context.Context) bool {
		_, ok := s.gw.ReplaceMeal(ctx, meal)
		if !ok {
			return false
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.mealsTouched, meal.ID)
		s.persistMealsTouched()
		return true
	})
	return true
}

// DeleteMeal removes the meal locally, purges its ID from every week's
// plan, and records a tombstone so pulls keep excluding it until the
// remote confirms the delete. Also clears any touched marker: a delete
// supersedes a pending edit.
func (s *Store) DeleteMeal(ctx context.Context, id string) {
	s.mu.Lock()
	kept := make([]types.Meal, 0, len(s.meals))
	for _, meal := range s.meals {
		if meal.ID != id {
			kept = append(kept, meal)
		}
	}
	s.meals = kept

	for week, plan := range s.plans {
		next := plan.Clone()
		for _, day := range types.DayKeys {
			ids := next[day]
			filtered := ids[:0]
			for _, mealID := range ids {
				if mealID != id {
					filtered = append(filtered, mealID)
				}
			}
			next[day] = filtered
		}
		s.plans[week] = next
	}

	s.mealsDeleted[id] = s.now().UnixMilli()
	delete(s.mealsTouched, id)
	s.persistMeals()
	s.persistPlans()
	s.persistMealsDeleted()
	s.persistMealsTouched()
	s.mu.Unlock()

	s.push(ctx, func(ctx context.Context) bool {
		if !s.gw.DeleteMeal(ctx, id) {
			return false
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.mealsDeleted, id)
		s.persistMealsDeleted()
		return true
	})
}
