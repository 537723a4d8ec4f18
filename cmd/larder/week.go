// Week command shows or moves the selected weeks.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	weekPlanner string
	weekGrocery string
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show or change the selected weeks",
	Long: `Week shows the currently selected planner and grocery weeks.

Passing --planner or --grocery moves the selection, which pulls the new
week's plan or list from the remote when one is configured.

Example:
  larder week
  larder week --planner 2026-09-07
  larder week --grocery 2026-09-07`,
	RunE: runWeek,
}

func init() {
	weekCmd.Flags().StringVar(&weekPlanner, "planner", "", "planner week Monday as YYYY-MM-DD")
	weekCmd.Flags().StringVar(&weekGrocery, "grocery", "", "grocery week Monday as YYYY-MM-DD")
}

func runWeek(cmd *cobra.Command, args []string) error {
	plannerWeek, err := parseWeek(weekPlanner)
	if err != nil {
		return err
	}
	groceryWeek, err := parseWeek(weekGrocery)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if plannerWeek != "" {
		store.SetPlannerWeek(cmd.Context(), plannerWeek)
	}
	if groceryWeek != "" {
		store.SetGroceryWeek(cmd.Context(), groceryWeek)
	}

	if flagJSON {
		return printJSON(map[string]string{
			"plannerWeek": store.PlannerWeek(),
			"groceryWeek": store.GroceryWeek(),
		})
	}
	fmt.Printf("Planner week: %s\n", store.PlannerWeek())
	fmt.Printf("Grocery week: %s\n", store.GroceryWeek())
	return nil
}
