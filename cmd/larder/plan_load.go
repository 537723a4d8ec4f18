// Plan load command restores a plan snapshot from history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var planLoadCmd = &cobra.Command{
	Use:   "load <week>",
	Short: "Load a plan snapshot from history",
	Long: `Load switches the planner to the snapshot's week and restores its
day assignments as the active plan.

Example:
  larder plan load 2026-08-17`,
	Args: cobra.ExactArgs(1),
	RunE: runPlanLoad,
}

func runPlanLoad(cmd *cobra.Command, args []string) error {
	week, err := parseWeek(args[0])
	if err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	var snapshot types.WeeklyPlanByWeek
	found := false
	for _, entry := range store.History() {
		if entry.WeekStart == week {
			snapshot = entry
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: no history for week %q", types.ErrNotFound, week)
	}

	store.LoadSnapshot(cmd.Context(), snapshot)

	if flagJSON {
		return printJSON(types.WeeklyPlanByWeek{WeekStart: store.PlannerWeek(), Days: store.Plan()})
	}
	fmt.Printf("Loaded plan for week %s\n", week)
	return nil
}
