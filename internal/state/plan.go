package state

import (
	"context"

	"github.com/mesh-intelligence/larder/internal/localstore"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// UpdateWeeklyPlan replaces one day's meal sequence in the selected
// planner week, snapshots the week into history, marks the week
// touched, and mirrors the full week remotely. The touched marker
// clears only on confirmed replacement.
func (s *Store) UpdateWeeklyPlan(ctx context.Context, day string, mealIDs []string) error {
	if !types.ValidDay(day) {
		return types.ErrInvalidDay
	}

	s.mu.Lock()
	week := s.plannerWeek
	next := types.NormalizeWeeklyPlan(s.plans[week]).Clone()
	next[day] = mealIDs
	next = types.NormalizeWeeklyPlan(next)
	s.plans[week] = next
	s.plansTouched[week] = s.now().UnixMilli()
	s.persistPlans()
	s.persistPlansTouched()
	s.recordHistory(week, next)
	s.mu.Unlock()

	s.pushPlan(ctx, week, next)
	return nil
}

// LoadSnapshot adopts a historical week's plan: the planner moves to
// that week, the snapshot becomes its current plan, and the week is
// pushed remotely like any other plan edit.
func (s *Store) LoadSnapshot(ctx context.Context, snapshot types.WeeklyPlanByWeek) {
	normalized := types.NormalizeWeeklyPlan(snapshot.Days)

	s.mu.Lock()
	s.plannerWeek = snapshot.WeekStart
	s.plans[snapshot.WeekStart] = normalized
	s.plansTouched[snapshot.WeekStart] = s.now().UnixMilli()
	s.persist(localstore.KeyPlannerWeek, s.plannerWeek)
	s.persistPlans()
	s.persistPlansTouched()
	s.mu.Unlock()

	s.pushPlan(ctx, snapshot.WeekStart, normalized)
}

// pushPlan mirrors one week's plan and clears its touched marker on
// confirmation.
func (s *Store) pushPlan(ctx context.Context, week string, plan types.WeeklyPlan) {
	s.push(ctx, func(ctx context.Context) bool {
		_, ok := s.gw.ReplaceWeeklyPlan(ctx, week, plan)
		if !ok {
			return false
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.plansTouched, week)
		s.persistPlansTouched()
		return true
	})
}
