// Config loading for the larder CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/larder/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyRemoteURL   = "remote_url"
	cfgKeyDataDir     = "data_dir"
	cfgKeyOffline     = "offline"
	cfgKeyHTTPTimeout = "http_timeout_seconds"
)

// resolvedConfig is the flag-merged view of config.yaml.
type resolvedConfig struct {
	types.Config
}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Larder CLI configuration

# Remote mirror base URL (optional; overridable by --remote-url flag).
# Leave unset to run local-only.
# remote_url: http://localhost:3001/api

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Skip all remote calls even when remote_url is set
offline: false

# Remote request timeout in seconds
http_timeout_seconds: 5
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper and merges the persistent flags on top. It creates the config
// directory and a default config.yaml on first run; a missing
// config.yaml is not an error.
func loadConfig(configDir string) (resolvedConfig, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return resolvedConfig{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return resolvedConfig{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyHTTPTimeout, types.DefaultHTTPTimeout)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return resolvedConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := resolvedConfig{Config: types.Config{
		RemoteURL:   v.GetString(cfgKeyRemoteURL),
		DataDir:     v.GetString(cfgKeyDataDir),
		Offline:     v.GetBool(cfgKeyOffline),
		HTTPTimeout: v.GetInt(cfgKeyHTTPTimeout),
	}}

	// Flags win over config.yaml.
	if flagRemoteURL != "" {
		cfg.RemoteURL = flagRemoteURL
	}
	if flagOffline {
		cfg.Offline = true
	}

	if err := cfg.Validate(); err != nil {
		return resolvedConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
