// Package remote wraps the remote row-store behind a gateway whose
// operations report failure as an absent value, never as an error
// crossing the boundary. A failed call means "do not treat the remote
// as source of truth this round"; the reconciliation engine treats an
// unreachable remote and a rejecting remote identically.
package remote

import (
	"context"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Gateway is the surface the sync engine talks to. Every operation
// returns ok=false on any transport, status, or decode failure; none
// returns an error. The gateway encodes no retry policy.
type Gateway interface {
	GroceryItems(ctx context.Context, week string) ([]types.GroceryItem, bool)
	CreateGroceryItem(ctx context.Context, item types.GroceryItem) (types.GroceryItem, bool)
	UpdateGroceryItem(ctx context.Context, id string, patch GroceryPatch) (types.GroceryItem, bool)
	DeleteGroceryItem(ctx context.Context, id string) bool

	Meals(ctx context.Context) ([]types.Meal, bool)
	CreateMeal(ctx context.Context, meal types.Meal) (types.Meal, bool)
	ReplaceMeal(ctx context.Context, meal types.Meal) (types.Meal, bool)
	DeleteMeal(ctx context.Context, id string) bool

	WeeklyPlan(ctx context.Context, week string) (types.WeeklyPlan, bool)
	ReplaceWeeklyPlan(ctx context.Context, week string, plan types.WeeklyPlan) (types.WeeklyPlan, bool)
	WeeklyPlans(ctx context.Context) ([]types.WeeklyPlanByWeek, bool)

	GenerateGroceryList(ctx context.Context, week string, ingredients []types.Ingredient) (GenerateResult, bool)
}

// GroceryPatch is a partial grocery-item update. Nil fields are left
// unchanged by the server.
type GroceryPatch struct {
	Name      *string         `json:"name,omitempty"`
	Quantity  *float64        `json:"quantity,omitempty"`
	Unit      *string         `json:"unit,omitempty"`
	Category  *types.Category `json:"category,omitempty"`
	Checked   *bool           `json:"checked,omitempty"`
	UpdatedAt string          `json:"updatedAt"`
}

// GenerateResult reports the outcome of the remote idempotent-replace of
// generated rows for a week.
type GenerateResult struct {
	OK    bool `json:"ok"`
	Added int  `json:"added"`
}
