// Root command for the larder CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/paths"
	"github.com/mesh-intelligence/larder/pkg/larder"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagRemoteURL string
	flagOffline   bool
	flagJSON      bool
)

// cliConfig holds the settings resolved from flags, config.yaml, and
// environment. Set by PersistentPreRunE so all subcommands can use it.
var cliConfig resolvedConfig

var rootCmd = &cobra.Command{
	Use:     "larder",
	Short:   "Larder is a local-first meal planner and grocery list",
	Version: larder.Version,
	Long: `Larder plans a household's weekly meals and grocery shopping.

All data lives in a local store, so every command works offline. When a
remote mirror is configured, changes sync in the background and the
pantry stays shared across devices.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		cliConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.larder-db)")
	rootCmd.PersistentFlags().StringVar(&flagRemoteURL, "remote-url", "", "remote mirror base URL (overrides config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "skip all remote calls")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mealCmd)
	rootCmd.AddCommand(groceryCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(weekCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > LARDER_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > LARDER_DATA_DIR env >
// default $(CWD)/.larder-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cliConfig.DataDir)
}
