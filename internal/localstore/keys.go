package localstore

// Logical storage keys. One key per domain slice; the marker maps are
// persisted alongside the collections they guard.
const (
	KeyGrocery      = "grocery"
	KeyMeals        = "meals"
	KeyPlans        = "plans"
	KeyHistory      = "history"
	KeyPlannerWeek  = "plannerWeek"
	KeyGroceryWeek  = "groceryWeek"
	KeyMealsTouched = "mealsTouched"
	KeyMealsDeleted = "mealsDeleted"
	KeyPlansTouched = "plansTouched"
)
