// Meal list command shows the meal collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all meals",
	Long: `List shows every meal in the collection with its ingredients.

Meals still awaiting remote confirmation are marked "syncing".

Example:
  larder meal list
  larder meal list --json`,
	RunE: runMealList,
}

func runMealList(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	store.RefreshCore(cmd.Context())
	meals := store.Meals()

	if flagJSON {
		return printJSON(meals)
	}

	if len(meals) == 0 {
		fmt.Println("No meals yet. Add one with: larder meal add --name ...")
		return nil
	}

	pending := make(map[string]bool)
	for _, id := range store.SyncingMealIDs() {
		pending[id] = true
	}

	for _, meal := range meals {
		marker := ""
		if pending[meal.ID] {
			marker = " (syncing)"
		}
		fmt.Printf("%s  %s%s\n", meal.ID, meal.MealName, marker)
		if meal.Notes != "" {
			fmt.Printf("    notes: %s\n", meal.Notes)
		}
		for _, ing := range meal.Ingredients {
			fmt.Printf("    - %s %s %s\n", formatQuantity(ing.Quantity), ing.Unit, ing.Ingredient)
		}
	}
	return nil
}
