// Plan set command assigns meals to a day.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planSetCmd = &cobra.Command{
	Use:   "set <day> [meal-id...]",
	Short: "Assign meals to a day",
	Long: `Set replaces the meal assignments for one day of the selected
week's plan. Passing no meal IDs clears the day.

Days are mon, tue, wed, thu, fri, sat, sun.

Example:
  larder plan set mon 01890a5d 01890a5e
  larder plan set fri`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlanSet,
}

func runPlanSet(cmd *cobra.Command, args []string) error {
	day := args[0]
	mealIDs := args[1:]

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	// Assigning an unknown meal is allowed (it may exist on another
	// device), but warn so typos are caught.
	for _, id := range mealIDs {
		if _, found := store.Meal(id); !found {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: meal %q is not in the local collection\n", id)
		}
	}

	if err := store.UpdateWeeklyPlan(cmd.Context(), day, mealIDs); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(store.Plan())
	}
	fmt.Printf("Set %s for week %s (%d meals)\n", day, store.PlannerWeek(), len(store.Plan()[day]))
	return nil
}
