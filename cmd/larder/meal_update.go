// Meal update command replaces an existing meal's content.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var (
	mealUpdateName        string
	mealUpdateNotes       string
	mealUpdateIngredients []string
)

var mealUpdateCmd = &cobra.Command{
	Use:   "update <meal-id>",
	Short: "Update a meal",
	Long: `Update replaces a meal's name, notes, or ingredient list.

Unset flags keep the current value. Passing --ingredient replaces the
whole ingredient list.

Example:
  larder meal update 01890a5d --name "Pasta deluxe"
  larder meal update 01890a5d --ingredient pasta:2:box`,
	Args: cobra.ExactArgs(1),
	RunE: runMealUpdate,
}

func init() {
	mealUpdateCmd.Flags().StringVar(&mealUpdateName, "name", "", "new name")
	mealUpdateCmd.Flags().StringVar(&mealUpdateNotes, "notes", "", "new notes")
	mealUpdateCmd.Flags().StringArrayVar(&mealUpdateIngredients, "ingredient", nil, "replacement ingredient as name:quantity[:unit] (repeatable)")
}

func runMealUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	meal, found := store.Meal(id)
	if !found {
		return fmt.Errorf("%w: meal %q", types.ErrNotFound, id)
	}

	if cmd.Flags().Changed("name") {
		if strings.TrimSpace(mealUpdateName) == "" {
			return fmt.Errorf("%w: meal name is empty", types.ErrInvalidName)
		}
		meal.MealName = strings.TrimSpace(mealUpdateName)
	}
	if cmd.Flags().Changed("notes") {
		meal.Notes = mealUpdateNotes
	}
	if cmd.Flags().Changed("ingredient") {
		ingredients, err := parseIngredients(mealUpdateIngredients)
		if err != nil {
			return err
		}
		meal.Ingredients = ingredients
	}

	if !store.UpdateMeal(cmd.Context(), meal) {
		return fmt.Errorf("%w: meal %q", types.ErrNotFound, id)
	}

	if flagJSON {
		updated, _ := store.Meal(id)
		return printJSON(updated)
	}
	fmt.Printf("Updated meal: %s\n", id)
	return nil
}
