// Meal parent command grouping the meal collection verbs.
package main

import "github.com/spf13/cobra"

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage the meal collection",
	Long: `Meal groups the commands that manage the household meal collection.

Each meal has a name, optional notes, and an ingredient list. Meals are
referenced from weekly plans by ID and feed grocery list generation.`,
}

func init() {
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealUpdateCmd)
	mealCmd.AddCommand(mealDeleteCmd)
}
