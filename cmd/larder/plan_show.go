// Plan show command renders the selected week's plan.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var planShowWeek string

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the weekly plan",
	Long: `Show renders the selected week's plan day by day, resolving meal
IDs to names where the meal is known locally.

Passing --week switches the selected planner week first.

Example:
  larder plan show
  larder plan show --week 2026-09-07`,
	RunE: runPlanShow,
}

func init() {
	planShowCmd.Flags().StringVar(&planShowWeek, "week", "", "week Monday as YYYY-MM-DD (default: selected week)")
}

func runPlanShow(cmd *cobra.Command, args []string) error {
	week, err := parseWeek(planShowWeek)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if week != "" {
		store.SetPlannerWeek(cmd.Context(), week)
	} else {
		store.RefreshPlan(cmd.Context())
	}

	plan := store.Plan()

	if flagJSON {
		return printJSON(types.WeeklyPlanByWeek{WeekStart: store.PlannerWeek(), Days: plan})
	}

	fmt.Printf("Plan for week %s:\n", store.PlannerWeek())
	for _, day := range types.DayKeys {
		ids := plan[day]
		if len(ids) == 0 {
			fmt.Printf("  %s: -\n", day)
			continue
		}
		names := make([]string, 0, len(ids))
		for _, id := range ids {
			if meal, found := store.Meal(id); found {
				names = append(names, meal.MealName)
			} else {
				names = append(names, id)
			}
		}
		fmt.Printf("  %s: %s\n", day, strings.Join(names, ", "))
	}
	return nil
}
