// Sync command reconciles local state with the remote mirror.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile with the remote mirror",
	Long: `Sync pulls meals, plans, history, and the selected week's grocery
list from the remote mirror and merges them with local state. Local
edits that have not been confirmed remotely are kept.

Without a configured remote this reports offline and changes nothing.

Example:
  larder sync
  larder sync --json`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := cmd.Context()
	store.RefreshCore(ctx)
	store.RefreshGrocery(ctx)
	store.RefreshPlan(ctx)
	store.Wait()

	status := store.Status()
	pending := store.SyncingMealIDs()

	if flagJSON {
		return printJSON(map[string]any{
			"status":       status,
			"pendingMeals": pending,
		})
	}

	switch status {
	case types.StatusOffline:
		fmt.Println("Offline: no remote configured, nothing to sync.")
	case types.StatusError:
		fmt.Println("Sync finished with errors; local changes are kept and will retry.")
	default:
		fmt.Println("Synced.")
	}
	if len(pending) > 0 {
		fmt.Printf("%d meal change(s) still awaiting remote confirmation.\n", len(pending))
	}
	return nil
}
