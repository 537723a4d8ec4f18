// Package main provides the larder CLI, a meal planning and grocery
// list tool backed by a local store with an optional remote mirror.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: user mistakes (bad
// arguments, unknown IDs) exit 1, everything else exits 2.
func exitCode(err error) int {
	for _, userErr := range []error{
		types.ErrNotFound,
		types.ErrInvalidID,
		types.ErrInvalidName,
		types.ErrInvalidQuantity,
		types.ErrInvalidDay,
		types.ErrInvalidCategory,
		types.ErrInvalidWeek,
	} {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}
