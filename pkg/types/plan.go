package types

// Day keys for a weekly plan, Monday first.
const (
	DayMon = "mon"
	DayTue = "tue"
	DayWed = "wed"
	DayThu = "thu"
	DayFri = "fri"
	DaySat = "sat"
	DaySun = "sun"
)

// DayKeys lists the seven day keys in fixed week order. Every walk over
// a plan iterates this slice, never the map, so ordering is stable.
var DayKeys = []string{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}

// ValidDay reports whether day is one of the seven day keys.
func ValidDay(day string) bool {
	for _, d := range DayKeys {
		if d == day {
			return true
		}
	}
	return false
}

// WeeklyPlan maps each day key to the ordered sequence of meal IDs
// assigned to that day. A well-formed plan is total: all seven keys are
// present, missing days as empty sequences. NormalizeWeeklyPlan enforces
// this on every read and write.
type WeeklyPlan map[string][]string

// WeeklyPlanByWeek is the persisted and syncable unit: one plan keyed by
// the ISO Monday of its calendar week.
type WeeklyPlanByWeek struct {
	WeekStart string     `json:"weekStart"`
	Days      WeeklyPlan `json:"days"`
}

// EmptyWeeklyPlan returns a total plan with every day empty.
func EmptyWeeklyPlan() WeeklyPlan {
	plan := make(WeeklyPlan, len(DayKeys))
	for _, day := range DayKeys {
		plan[day] = []string{}
	}
	return plan
}

// NormalizeWeeklyPlan overlays a partial plan onto the empty template,
// guaranteeing totality. Unknown day keys are dropped and duplicate meal
// IDs within a day are suppressed, keeping first occurrence order.
func NormalizeWeeklyPlan(partial WeeklyPlan) WeeklyPlan {
	plan := EmptyWeeklyPlan()
	for _, day := range DayKeys {
		ids := partial[day]
		if len(ids) == 0 {
			continue
		}
		seen := make(map[string]bool, len(ids))
		deduped := make([]string, 0, len(ids))
		for _, id := range ids {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			deduped = append(deduped, id)
		}
		plan[day] = deduped
	}
	return plan
}

// PlansEqual reports structural equality: the same ordered meal-ID
// sequence for every day. Absent days compare as empty.
func PlansEqual(a, b WeeklyPlan) bool {
	for _, day := range DayKeys {
		left, right := a[day], b[day]
		if len(left) != len(right) {
			return false
		}
		for i, id := range left {
			if id != right[i] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the plan.
func (p WeeklyPlan) Clone() WeeklyPlan {
	out := make(WeeklyPlan, len(p))
	for day, ids := range p {
		dup := make([]string, len(ids))
		copy(dup, ids)
		out[day] = dup
	}
	return out
}
