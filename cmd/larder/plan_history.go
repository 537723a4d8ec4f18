// Plan history command lists past plan snapshots.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var planHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List planning history",
	Long: `History lists saved plan snapshots, most recent week first.

A snapshot can be brought back with: larder plan load <week>

Example:
  larder plan history
  larder plan history --json`,
	RunE: runPlanHistory,
}

func runPlanHistory(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	store.RefreshCore(cmd.Context())
	history := store.History()

	if flagJSON {
		return printJSON(history)
	}

	if len(history) == 0 {
		fmt.Println("No planning history yet.")
		return nil
	}

	for _, snapshot := range history {
		assigned := 0
		for _, day := range types.DayKeys {
			assigned += len(snapshot.Days[day])
		}
		fmt.Printf("%s  (%d assignments)\n", snapshot.WeekStart, assigned)
	}
	return nil
}
