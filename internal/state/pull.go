package state

import (
	"context"

	"github.com/mesh-intelligence/larder/internal/identity"
	"github.com/mesh-intelligence/larder/internal/localstore"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// Pull reconciliation. Each refresh pulls one remote collection and
// merges it against current local state, with the dirty and tombstone
// markers deciding precedence. Pulls run synchronously on the caller's
// goroutine; only pushes are backgrounded.

// beginSync flips status to syncing and reports whether remote calls
// may proceed. When offline or unconfigured the status becomes offline
// and the pull is skipped without touching the network.
func (s *Store) beginSync() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.syncable() {
		s.status = types.StatusOffline
		return false
	}
	s.status = types.StatusSyncing
	return true
}

// RefreshCore pulls the meal collection and the all-weeks plan history
// and merges both. Status becomes error only when neither collection
// produced usable data.
func (s *Store) RefreshCore(ctx context.Context) {
	if !s.beginSync() {
		return
	}

	remoteMeals, okMeals := s.gw.Meals(ctx)
	remoteHistory, okHistory := s.gw.WeeklyPlans(ctx)

	s.mu.Lock()
	if okMeals {
		merged, nextTouched, nextDeleted := mergeMeals(s.meals, remoteMeals, s.mealsTouched, s.mealsDeleted)
		s.meals = merged
		s.mealsTouched = nextTouched
		s.mealsDeleted = nextDeleted
		s.persistMeals()
		s.persistMealsTouched()
		s.persistMealsDeleted()
	}
	if okHistory {
		if len(s.plansTouched) == 0 {
			s.history = normalizeHistory(remoteHistory)
		} else {
			s.history = mergeHistory(s.history, remoteHistory)
		}
		s.persistHistory()
	}
	if okMeals || okHistory {
		s.status = types.StatusIdle
	} else {
		s.status = types.StatusError
	}
	s.mu.Unlock()
}

// RefreshGrocery pulls the selected grocery week's items and merges
// them per composite key, last write wins.
func (s *Store) RefreshGrocery(ctx context.Context) {
	if !s.beginSync() {
		return
	}

	week := s.GroceryWeek()
	remoteItems, ok := s.gw.GroceryItems(ctx, week)

	s.mu.Lock()
	if ok {
		defaultWeek := identity.WeekStartKey(s.now())
		remoteWeek := types.NormalizeGroceryItems(remoteItems, defaultWeek)
		localWeek, rest := splitWeek(s.grocery, week)
		s.grocery = append(rest, mergeGroceryWeek(localWeek, remoteWeek, defaultWeek)...)
		s.persistGrocery()
		s.status = types.StatusIdle
	} else {
		s.status = types.StatusError
	}
	s.mu.Unlock()
}

// RefreshPlan pulls the selected planner week's plan. An untouched week
// adopts the remote plan outright; a touched week keeps the local plan
// unless it is structurally equal to the remote one, which confirms
// convergence and retires the marker. Either way the winning plan is
// recorded into history.
func (s *Store) RefreshPlan(ctx context.Context) {
	s.mu.Lock()
	week := s.plannerWeek
	if _, ok := s.plans[week]; !ok {
		s.plans[week] = types.EmptyWeeklyPlan()
		s.persistPlans()
	}
	s.mu.Unlock()

	if !s.beginSync() {
		return
	}

	remotePlan, ok := s.gw.WeeklyPlan(ctx, week)

	s.mu.Lock()
	if ok {
		normalized := types.NormalizeWeeklyPlan(remotePlan)
		winner := normalized
		if s.plansTouched[week] != 0 {
			winner = s.plans[week]
			if types.PlansEqual(winner, normalized) {
				delete(s.plansTouched, week)
				s.persistPlansTouched()
				winner = normalized
			}
		}
		s.plans[week] = winner
		s.persistPlans()
		s.recordHistory(week, winner)
		s.status = types.StatusIdle
	} else {
		s.status = types.StatusError
	}
	s.mu.Unlock()
}

// SetPlannerWeek selects the planner week and re-pulls its plan, the
// week-selection pull trigger.
func (s *Store) SetPlannerWeek(ctx context.Context, week string) {
	s.mu.Lock()
	s.plannerWeek = week
	if _, ok := s.plans[week]; !ok {
		s.plans[week] = types.EmptyWeeklyPlan()
		s.persistPlans()
	}
	s.persist(localstore.KeyPlannerWeek, week)
	s.mu.Unlock()

	s.RefreshPlan(ctx)
}

// SetGroceryWeek selects the grocery week and re-pulls its items.
func (s *Store) SetGroceryWeek(ctx context.Context, week string) {
	s.mu.Lock()
	s.groceryWeek = week
	s.persist(localstore.KeyGroceryWeek, week)
	s.mu.Unlock()

	s.RefreshGrocery(ctx)
}

// SetOnline records the connectivity signal. Coming online triggers a
// full pull round; going offline just flips the reported status.
func (s *Store) SetOnline(ctx context.Context, online bool) {
	s.mu.Lock()
	s.online = online
	if !online {
		s.status = types.StatusOffline
	}
	s.mu.Unlock()

	if online {
		s.RefreshCore(ctx)
		s.RefreshGrocery(ctx)
		s.RefreshPlan(ctx)
	}
}
