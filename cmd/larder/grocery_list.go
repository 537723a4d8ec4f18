// Grocery list command shows a week's grocery list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var groceryListWeek string

var groceryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the grocery list",
	Long: `List shows the selected week's grocery list, unchecked items
first.

Passing --week switches the selected grocery week before listing, which
also pulls that week from the remote when one is configured.

Example:
  larder grocery list
  larder grocery list --week 2026-09-07`,
	RunE: runGroceryList,
}

func init() {
	groceryListCmd.Flags().StringVar(&groceryListWeek, "week", "", "week Monday as YYYY-MM-DD (default: selected week)")
}

func runGroceryList(cmd *cobra.Command, args []string) error {
	week, err := parseWeek(groceryListWeek)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if week != "" {
		store.SetGroceryWeek(cmd.Context(), week)
	} else {
		store.RefreshGrocery(cmd.Context())
	}

	items := types.SortGroceryItems(store.GroceryItemsForWeek(store.GroceryWeek()))

	if flagJSON {
		return printJSON(items)
	}

	if len(items) == 0 {
		fmt.Printf("Grocery list for %s is empty.\n", store.GroceryWeek())
		return nil
	}

	fmt.Printf("Grocery list for week %s:\n", store.GroceryWeek())
	for _, item := range items {
		unit := item.Unit
		if unit != "" {
			unit = " " + unit
		}
		fmt.Printf("%s %s  %s%s  (%s, %s)  %s\n",
			checkedMark(item.Checked), item.Name,
			formatQuantity(item.Quantity), unit,
			item.Category, item.Source, item.ID)
	}
	return nil
}
