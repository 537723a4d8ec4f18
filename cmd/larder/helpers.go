// Shared helpers for larder CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/larder/internal/localstore"
	"github.com/mesh-intelligence/larder/internal/remote"
	"github.com/mesh-intelligence/larder/internal/state"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// openStore resolves the data directory, opens the local store, wires
// the remote gateway when one is configured, and hydrates the state
// store. The caller must defer the returned close func, which drains
// pending pushes before releasing the local store.
func openStore() (*state.Store, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	local, err := localstore.Open(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}

	var gw remote.Gateway
	if cliConfig.Remote() {
		client, err := remote.NewClient(cliConfig.RemoteURL, time.Duration(cliConfig.HTTPTimeout)*time.Second)
		if err != nil {
			local.Close()
			return nil, nil, fmt.Errorf("remote url: %w", err)
		}
		gw = client
	}

	store := state.New(local, gw)
	closeFn := func() {
		store.Wait()
		local.Close()
	}
	return store, closeFn, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// parseIngredients parses repeated --ingredient values of the form
// "name:quantity[:unit]" into an ingredient list.
func parseIngredients(specs []string) ([]types.Ingredient, error) {
	var out []types.Ingredient
	for _, raw := range specs {
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("%w: ingredient %q (expected name:quantity[:unit])", types.ErrInvalidName, raw)
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("%w: ingredient %q", types.ErrInvalidQuantity, raw)
		}
		ing := types.Ingredient{
			Ingredient: strings.TrimSpace(parts[0]),
			Quantity:   qty,
		}
		if len(parts) == 3 {
			ing.Unit = strings.TrimSpace(parts[2])
		}
		out = append(out, ing)
	}
	return out, nil
}

// parseWeek validates a --week value as an ISO date key. An empty value
// is allowed and means the store's currently selected week.
func parseWeek(week string) (string, error) {
	if week == "" {
		return "", nil
	}
	t, err := time.Parse("2006-01-02", week)
	if err != nil {
		return "", fmt.Errorf("%w: %q (expected YYYY-MM-DD)", types.ErrInvalidWeek, week)
	}
	if t.Weekday() != time.Monday {
		return "", fmt.Errorf("%w: %q is not a Monday", types.ErrInvalidWeek, week)
	}
	return week, nil
}

// checkedMark renders a grocery item's checkbox for table output.
func checkedMark(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// formatQuantity renders a float without a trailing ".00" for whole
// numbers.
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
