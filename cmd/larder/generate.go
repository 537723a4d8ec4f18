// Generate command builds the grocery list from the weekly plan.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the grocery list from the weekly plan",
	Long: `Generate collects the ingredients of every meal assigned to the
selected planner week, sums duplicates, and replaces the week's
generated grocery items. Manual items are left alone.

Running generate twice against an unchanged plan gives the same list.

Example:
  larder generate
  larder generate --json`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	generated := store.GenerateGroceryList(cmd.Context())

	if flagJSON {
		return printJSON(generated)
	}

	if len(generated) == 0 {
		fmt.Printf("No ingredients to buy for week %s.\n", store.PlannerWeek())
		return nil
	}

	fmt.Printf("Generated %d items for week %s:\n", len(generated), store.PlannerWeek())
	for _, item := range generated {
		unit := item.Unit
		if unit != "" {
			unit = " " + unit
		}
		fmt.Printf("  %s%s %s (%s)\n", formatQuantity(item.Quantity), unit, item.Name, item.Category)
	}
	return nil
}
