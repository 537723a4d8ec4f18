// Grocery add command creates a manual grocery item.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var (
	groceryAddName     string
	groceryAddQuantity float64
	groceryAddUnit     string
	groceryAddCategory string
	groceryAddWeek     string
)

var groceryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a manual grocery item",
	Long: `Add puts a manual item on a week's grocery list.

Without --week the item lands on the currently selected grocery week.
Manual items are never touched by list generation.

Example:
  larder grocery add --name "Olive oil" --quantity 1 --unit bottle --category pantry
  larder grocery add --name Milk --quantity 2 --unit l --week 2026-09-07`,
	RunE: runGroceryAdd,
}

func init() {
	groceryAddCmd.Flags().StringVar(&groceryAddName, "name", "", "item name (required)")
	groceryAddCmd.Flags().Float64Var(&groceryAddQuantity, "quantity", 1, "amount to buy")
	groceryAddCmd.Flags().StringVar(&groceryAddUnit, "unit", "", "unit of measure")
	groceryAddCmd.Flags().StringVar(&groceryAddCategory, "category", "", "shopping category (default: pantry)")
	groceryAddCmd.Flags().StringVar(&groceryAddWeek, "week", "", "target week Monday as YYYY-MM-DD (default: selected week)")
	_ = groceryAddCmd.MarkFlagRequired("name")
}

func runGroceryAdd(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(groceryAddName) == "" {
		return fmt.Errorf("%w: item name is empty", types.ErrInvalidName)
	}
	if groceryAddQuantity <= 0 {
		return fmt.Errorf("%w: %v", types.ErrInvalidQuantity, groceryAddQuantity)
	}
	week, err := parseWeek(groceryAddWeek)
	if err != nil {
		return err
	}
	category := types.DefaultCategory
	if groceryAddCategory != "" {
		category = types.Category(groceryAddCategory)
		if !category.Valid() {
			return fmt.Errorf("%w: %q", types.ErrInvalidCategory, groceryAddCategory)
		}
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	item := store.AddGroceryItem(cmd.Context(), types.GroceryItem{
		Name:      strings.TrimSpace(groceryAddName),
		Quantity:  groceryAddQuantity,
		Unit:      groceryAddUnit,
		Category:  category,
		WeekStart: week,
	})

	if flagJSON {
		return printJSON(item)
	}
	fmt.Printf("Added %s (%s) to week %s\n", item.Name, item.ID, item.WeekStart)
	return nil
}
