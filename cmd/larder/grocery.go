// Grocery parent command grouping the grocery list verbs.
package main

import "github.com/spf13/cobra"

var groceryCmd = &cobra.Command{
	Use:   "grocery",
	Short: "Manage the weekly grocery list",
	Long: `Grocery groups the commands that manage the selected week's
grocery list.

Items are either added manually or generated from the weekly plan.
Manual items survive regeneration; generated items are replaced.`,
}

func init() {
	groceryCmd.AddCommand(groceryAddCmd)
	groceryCmd.AddCommand(groceryListCmd)
	groceryCmd.AddCommand(groceryCheckCmd)
	groceryCmd.AddCommand(groceryDeleteCmd)
}
