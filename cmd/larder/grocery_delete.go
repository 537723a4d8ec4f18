// Grocery delete command removes an item from the list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var groceryDeleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Delete a grocery item",
	Long: `Delete removes an item from its week's grocery list.

Example:
  larder grocery delete 01890a5d`,
	Args: cobra.ExactArgs(1),
	RunE: runGroceryDelete,
}

func runGroceryDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	found := false
	for _, item := range store.GroceryItems() {
		if item.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: grocery item %q", types.ErrNotFound, id)
	}

	store.DeleteGroceryItem(cmd.Context(), id)

	if flagJSON {
		return printJSON(map[string]string{"deleted": id})
	}
	fmt.Printf("Deleted grocery item: %s\n", id)
	return nil
}
