package state

import (
	"context"
	"sync"
	"time"

	"github.com/mesh-intelligence/larder/internal/identity"
	"github.com/mesh-intelligence/larder/internal/remote"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// fakeGateway is an in-memory stand-in for the remote row-store. It
// mimics the server-side behaviors the engine depends on (create-time
// duplicate merge, idempotent generate-replace) and can be scripted to
// fail wholesale with down=true.
type fakeGateway struct {
	mu    sync.Mutex
	down  bool
	calls int

	grocery []types.GroceryItem
	meals   []types.Meal
	plans   map[string]types.WeeklyPlan

	// stamp is applied to rows the fake server creates itself.
	stamp string
}

var _ remote.Gateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		plans: make(map[string]types.WeeklyPlan),
		stamp: time.Now().UTC().Add(time.Minute).Format(time.RFC3339Nano),
	}
}

func (f *fakeGateway) begin() bool {
	f.mu.Lock()
	f.calls++
	return !f.down
}

func (f *fakeGateway) GroceryItems(_ context.Context, week string) ([]types.GroceryItem, bool) {
	defer f.mu.Unlock()
	if !f.begin() {
		return nil, false
	}
	var out []types.GroceryItem
	for _, item := range f.grocery {
		if item.WeekStart == week {
			out = append(out, item)
		}
	}
	return out, true
}

func (f *fakeGateway) CreateGroceryItem(_ context.Context, item types.GroceryItem) (types.GroceryItem, bool) {
	defer f.mu.Unlock()
	if !f.begin() {
		return types.GroceryItem{}, false
	}
	key := identity.KeyOf(item, item.WeekStart)
	for i, existing := range f.grocery {
		if identity.KeyOf(existing, existing.WeekStart) == key {
			f.grocery[i].Quantity += item.Quantity
			f.grocery[i].UpdatedAt = item.UpdatedAt
			return f.grocery[i], true
		}
	}
	f.grocery = append(f.grocery, item)
	return item, true
}

func (f *fakeGateway) UpdateGroceryItem(_ context.Context, id string, patch remote.GroceryPatch) (types.GroceryItem, bool) {
	defer f.mu.Unlock()
	if !f.begin() {
		return types.GroceryItem{}, false
	}
	for i, existing := range f.grocery {
		if existing.ID == id {
			f.grocery[i] = applyPatch(existing, patch)
			return f.grocery[i], true
		}
	}
	return types.GroceryItem{}, false
}

func (f *fakeGateway) DeleteGroceryItem(_ context.Context, id string) bool {
	defer f.mu.Unlock()
	if !f.begin() {
		return false
	}
	kept := f.grocery[:0]
	for _, existing := range f.grocery {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	f.grocery = kept
	return true
}

func (f *fakeGateway) Meals(_ context.Context) ([]types.Meal, bool) {
	defer f.mu.Unlock()
	if !f.begin() {
		return nil, false
	}
	out := make([]types.Meal, len(f.meals))
	copy(out, f.meals)
	return out, true
}

func (f *fakeGateway) CreateMeal(_ context.Context, meal types.Meal) (types.Meal, bool) {
	defer f.mu.Unlock()
	if !f.begin() {
		return types.Meal{}, false
	}
	f.meals = append(f.meals, meal)
	return meal, true
}

func (f *fakeGateway) ReplaceMeal(_ context.Context, meal types.Meal) (types.Meal, bool) {
	defer f.mu.Unlock()
	if !f.begin() {
		return types.Meal{}, false
	}
	for i, existing := range f.meals {
		if existing.ID == meal.ID {
			f.meals[i] = meal
			return meal, true
		}
	}
	f.meals = append(f.meals, meal)
	return meal, true
}

func (f *fakeGateway) DeleteMeal(_ context.Context, id string) bool {
	defer f.mu.Unlock()
	if !f.begin() {
		return false
	}
	kept := f.meals[:0]
	for _, existing := range f.meals {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	f.meals = kept
	return true
}

func (f *fakeGateway) WeeklyPlan(_ context.Context, week string) (types.WeeklyPlan, bool) {
	defer f.mu.Unlock()
	if !f.begin() {
		return nil, false
	}
	plan, ok := f.plans[week]
	if !ok {
		return types.EmptyWeeklyPlan(), true
	}
	return plan.Clone(), true
}

func (f *fakeGateway) ReplaceWeeklyPlan(_ context.Context, week string, plan types.WeeklyPlan) (types.WeeklyPlan, bool) {
	defer f.mu.Unlock()
	if !f.begin() {
		return nil, false
	}
	f.plans[week] = plan.Clone()
	return plan, true
}

func (f *fakeGateway) WeeklyPlans(_ context.Context) ([]types.WeeklyPlanByWeek, bool) {
	defer f.mu.Unlock()
	if !f.begin() {
		return nil, false
	}
	out := make([]types.WeeklyPlanByWeek, 0, len(f.plans))
	for week, plan := range f.plans {
		out = append(out, types.WeeklyPlanByWeek{WeekStart: week, Days: plan.Clone()})
	}
	return out, true
}

func (f *fakeGateway) GenerateGroceryList(_ context.Context, week string, ingredients []types.Ingredient) (remote.GenerateResult, bool) {
	defer f.mu.Unlock()
	if !f.begin() {
		return remote.GenerateResult{}, false
	}
	kept := f.grocery[:0]
	for _, existing := range f.grocery {
		if existing.WeekStart != week || existing.Source != types.SourceGenerated {
			kept = append(kept, existing)
		}
	}
	f.grocery = kept
	for _, ing := range ingredients {
		f.grocery = append(f.grocery, types.GroceryItem{
			ID:        identity.NewID(),
			Name:      ing.Ingredient,
			Quantity:  ing.Quantity,
			Unit:      ing.Unit,
			Category:  types.DefaultCategory,
			WeekStart: week,
			UpdatedAt: f.stamp,
			Source:    types.SourceGenerated,
		})
	}
	return remote.GenerateResult{OK: true, Added: len(ingredients)}, true
}

func (f *fakeGateway) setDown(down bool) {
	f.mu.Lock()
	f.down = down
	f.mu.Unlock()
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
