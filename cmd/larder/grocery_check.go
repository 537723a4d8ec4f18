// Grocery check command toggles an item's checked state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var (
	groceryCheckOn  bool
	groceryCheckOff bool
)

var groceryCheckCmd = &cobra.Command{
	Use:   "check <item-id>",
	Short: "Toggle an item's checked state",
	Long: `Check flips an item between checked and unchecked, or forces a
state with --on / --off.

Example:
  larder grocery check 01890a5d
  larder grocery check 01890a5d --off`,
	Args: cobra.ExactArgs(1),
	RunE: runGroceryCheck,
}

func init() {
	groceryCheckCmd.Flags().BoolVar(&groceryCheckOn, "on", false, "force checked")
	groceryCheckCmd.Flags().BoolVar(&groceryCheckOff, "off", false, "force unchecked")
	groceryCheckCmd.MarkFlagsMutuallyExclusive("on", "off")
}

func runGroceryCheck(cmd *cobra.Command, args []string) error {
	id := args[0]

	var forced *bool
	if groceryCheckOn {
		v := true
		forced = &v
	}
	if groceryCheckOff {
		v := false
		forced = &v
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	item, found := store.ToggleGroceryItem(cmd.Context(), id, forced)
	if !found {
		return fmt.Errorf("%w: grocery item %q", types.ErrNotFound, id)
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Printf("%s %s\n", checkedMark(item.Checked), item.Name)
	return nil
}
