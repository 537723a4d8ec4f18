// Meal delete command removes a meal everywhere.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <meal-id>",
	Short: "Delete a meal",
	Long: `Delete removes a meal from the collection and unassigns it from
every day of every weekly plan.

Example:
  larder meal delete 01890a5d`,
	Args: cobra.ExactArgs(1),
	RunE: runMealDelete,
}

func runMealDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if _, found := store.Meal(id); !found {
		return fmt.Errorf("%w: meal %q", types.ErrNotFound, id)
	}

	store.DeleteMeal(cmd.Context(), id)

	if flagJSON {
		return printJSON(map[string]string{"deleted": id})
	}
	fmt.Printf("Deleted meal: %s\n", id)
	return nil
}
