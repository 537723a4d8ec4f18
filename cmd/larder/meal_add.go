// Meal add command creates a new meal.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var (
	mealAddName        string
	mealAddNotes       string
	mealAddIngredients []string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new meal",
	Long: `Add creates a new meal with the given name, notes, and ingredients.

Ingredients are specified as name:quantity[:unit] and may repeat.

Example:
  larder meal add --name "Pasta night" --ingredient pasta:1:box --ingredient zucchini:2:pcs
  larder meal add --name "Leftovers" --notes "fridge first"`,
	RunE: runMealAdd,
}

func init() {
	mealAddCmd.Flags().StringVar(&mealAddName, "name", "", "name for the meal (required)")
	mealAddCmd.Flags().StringVar(&mealAddNotes, "notes", "", "free-form notes")
	mealAddCmd.Flags().StringArrayVar(&mealAddIngredients, "ingredient", nil, "ingredient as name:quantity[:unit] (repeatable)")
	_ = mealAddCmd.MarkFlagRequired("name")
}

func runMealAdd(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(mealAddName) == "" {
		return fmt.Errorf("%w: meal name is empty", types.ErrInvalidName)
	}
	ingredients, err := parseIngredients(mealAddIngredients)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	meal := store.AddMeal(cmd.Context(), types.Meal{
		MealName:    strings.TrimSpace(mealAddName),
		Notes:       mealAddNotes,
		Ingredients: ingredients,
	})

	if flagJSON {
		return printJSON(meal)
	}
	fmt.Printf("Created meal: %s\n", meal.ID)
	return nil
}
