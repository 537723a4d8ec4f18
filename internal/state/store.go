// Package state implements the offline-first state engine: a single
// controller that owns every domain slice (grocery items, meals, weekly
// plans, history, dirty and tombstone markers), applies mutations to
// local state synchronously, mirrors them to the remote gateway in the
// background, and reconciles remote reads against pending local edits.
//
// Local state is the source of truth. A remote failure never rolls back
// an optimistic mutation; the only user-visible signal is the coarse
// sync status.
package state

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mesh-intelligence/larder/internal/identity"
	"github.com/mesh-intelligence/larder/internal/localstore"
	"github.com/mesh-intelligence/larder/internal/remote"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// historyCap bounds the locally kept weekly-plan snapshots.
const historyCap = 12

// Store owns all in-memory collections and their markers. Collections
// are mutated only through its methods, never by callers directly;
// cross-slice invariants (a deleted meal disappears from every week's
// plan) are enforced here.
type Store struct {
	mu    sync.Mutex
	gw    remote.Gateway // nil when no remote is configured
	local *localstore.Store
	now   func() time.Time

	grocery []types.GroceryItem
	meals   []types.Meal
	plans   map[string]types.WeeklyPlan
	history []types.WeeklyPlanByWeek

	mealsTouched map[string]int64
	mealsDeleted map[string]int64
	plansTouched map[string]int64

	plannerWeek string
	groceryWeek string

	online bool
	status types.SyncStatus

	pushes sync.WaitGroup
}

// New hydrates a Store from local persistence. Missing or corrupt
// values fall back to empty collections and the current week. The
// gateway may be nil; the store then reports offline and never touches
// the network.
func New(local *localstore.Store, gw remote.Gateway) *Store {
	s := &Store{
		gw:           gw,
		local:        local,
		now:          time.Now,
		plans:        make(map[string]types.WeeklyPlan),
		mealsTouched: make(map[string]int64),
		mealsDeleted: make(map[string]int64),
		plansTouched: make(map[string]int64),
		online:       true,
		status:       types.StatusIdle,
	}

	defaultWeek := identity.WeekStartKey(s.now())
	s.plannerWeek = defaultWeek
	s.groceryWeek = defaultWeek
	local.Get(localstore.KeyPlannerWeek, &s.plannerWeek)
	local.Get(localstore.KeyGroceryWeek, &s.groceryWeek)

	local.Get(localstore.KeyGrocery, &s.grocery)
	s.grocery = types.NormalizeGroceryItems(s.grocery, defaultWeek)
	local.Get(localstore.KeyMeals, &s.meals)

	stored := map[string]types.WeeklyPlan{}
	local.Get(localstore.KeyPlans, &stored)
	for week, plan := range stored {
		s.plans[week] = types.NormalizeWeeklyPlan(plan)
	}
	if _, ok := s.plans[s.plannerWeek]; !ok {
		s.plans[s.plannerWeek] = types.EmptyWeeklyPlan()
	}

	local.Get(localstore.KeyHistory, &s.history)
	s.history = normalizeHistory(s.history)

	local.Get(localstore.KeyMealsTouched, &s.mealsTouched)
	local.Get(localstore.KeyMealsDeleted, &s.mealsDeleted)
	local.Get(localstore.KeyPlansTouched, &s.plansTouched)

	return s
}

// Wait blocks until every in-flight background push has finished.
func (s *Store) Wait() {
	s.pushes.Wait()
}

// Status returns the coarse sync status.
func (s *Store) Status() types.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Online reports the current connectivity assumption.
func (s *Store) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// PlannerWeek returns the selected planner week key.
func (s *Store) PlannerWeek() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plannerWeek
}

// GroceryWeek returns the selected grocery week key.
func (s *Store) GroceryWeek() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groceryWeek
}

// GroceryItems returns a copy of all grocery items.
func (s *Store) GroceryItems() []types.GroceryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.GroceryItem, len(s.grocery))
	copy(out, s.grocery)
	return out
}

// GroceryItemsForWeek returns the items belonging to one week.
func (s *Store) GroceryItemsForWeek(week string) []types.GroceryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.GroceryItem
	for _, item := range s.grocery {
		if item.WeekStart == week {
			out = append(out, item)
		}
	}
	return out
}

// Meals returns a copy of all meals.
func (s *Store) Meals() []types.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Meal, len(s.meals))
	copy(out, s.meals)
	return out
}

// Meal returns the meal with the given ID.
func (s *Store) Meal(id string) (types.Meal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, meal := range s.meals {
		if meal.ID == id {
			return meal, true
		}
	}
	return types.Meal{}, false
}

// Plan returns the selected planner week's plan, always total.
func (s *Store) Plan() types.WeeklyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.NormalizeWeeklyPlan(s.plans[s.plannerWeek])
}

// History returns a copy of the weekly-plan history, newest week first.
func (s *Store) History() []types.WeeklyPlanByWeek {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.WeeklyPlanByWeek, len(s.history))
	copy(out, s.history)
	return out
}

// SyncingMealIDs returns the meal IDs with a pending dirty or tombstone
// marker, i.e. whose remote round-trip has not been confirmed yet.
func (s *Store) SyncingMealIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool, len(s.mealsTouched)+len(s.mealsDeleted))
	var ids []string
	for id := range s.mealsTouched {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for id := range s.mealsDeleted {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// syncable reports whether remote calls should be attempted at all.
// Caller must hold mu.
func (s *Store) syncable() bool {
	return s.gw != nil && s.online
}

func (s *Store) setStatus(status types.SyncStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// push runs fn in the background when the remote is reachable. The
// caller must have already applied and persisted its optimistic local
// mutation; fn reports whether the round-trip produced usable data.
func (s *Store) push(ctx context.Context, fn func(context.Context) bool) {
	s.mu.Lock()
	if !s.syncable() {
		s.status = types.StatusOffline
		s.mu.Unlock()
		return
	}
	s.status = types.StatusSyncing
	s.mu.Unlock()

	s.pushes.Add(1)
	go func() {
		defer s.pushes.Done()
		if fn(ctx) {
			s.setStatus(types.StatusIdle)
		} else {
			s.setStatus(types.StatusError)
		}
	}()
}

// timestamp returns the current moment as an RFC 3339 string, the wire
// and merge format for UpdatedAt.
func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// Persistence helpers. Callers must hold mu. Writes are fire and
// forget: a failed local write is logged, never surfaced, and the
// in-memory state remains authoritative for the session.

func (s *Store) persist(key string, value any) {
	if err := s.local.Put(key, value); err != nil {
		log.Printf("localstore write failed: %v", err)
	}
}

func (s *Store) persistGrocery()      { s.persist(localstore.KeyGrocery, s.grocery) }
func (s *Store) persistMeals()        { s.persist(localstore.KeyMeals, s.meals) }
func (s *Store) persistPlans()        { s.persist(localstore.KeyPlans, s.plans) }
func (s *Store) persistHistory()      { s.persist(localstore.KeyHistory, s.history) }
func (s *Store) persistMealsTouched() { s.persist(localstore.KeyMealsTouched, s.mealsTouched) }
func (s *Store) persistMealsDeleted() { s.persist(localstore.KeyMealsDeleted, s.mealsDeleted) }
func (s *Store) persistPlansTouched() { s.persist(localstore.KeyPlansTouched, s.plansTouched) }

// normalizeHistory enforces plan totality on every stored snapshot.
func normalizeHistory(history []types.WeeklyPlanByWeek) []types.WeeklyPlanByWeek {
	out := make([]types.WeeklyPlanByWeek, len(history))
	for i, entry := range history {
		out[i] = types.WeeklyPlanByWeek{
			WeekStart: entry.WeekStart,
			Days:      types.NormalizeWeeklyPlan(entry.Days),
		}
	}
	return out
}

// recordHistory replaces the snapshot for week at the front of the
// history, dropping any older entry for the same week and capping the
// list. Caller must hold mu.
func (s *Store) recordHistory(week string, plan types.WeeklyPlan) {
	next := make([]types.WeeklyPlanByWeek, 0, len(s.history)+1)
	next = append(next, types.WeeklyPlanByWeek{WeekStart: week, Days: plan.Clone()})
	for _, entry := range s.history {
		if entry.WeekStart != week {
			next = append(next, entry)
		}
	}
	if len(next) > historyCap {
		next = next[:historyCap]
	}
	s.history = next
	s.persistHistory()
}
