// Plan parent command grouping the weekly plan verbs.
package main

import "github.com/spf13/cobra"

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the weekly meal plan",
	Long: `Plan groups the commands that manage the selected week's meal plan.

A plan assigns meal IDs to each day, Monday through Sunday. Every saved
plan is also snapshotted into the planning history.`,
}

func init() {
	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planHistoryCmd)
	planCmd.AddCommand(planLoadCmd)
}
