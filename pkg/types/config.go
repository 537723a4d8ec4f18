package types

import "errors"

// Config holds the settings the CLI resolves from flags, config.yaml,
// and environment before opening the store.
type Config struct {
	RemoteURL   string `json:"remote_url" yaml:"remote_url"`
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	Offline     bool   `json:"offline" yaml:"offline"`
	HTTPTimeout int    `json:"http_timeout_seconds" yaml:"http_timeout_seconds"`
}

// Config validation errors.
var (
	ErrTimeoutInvalid = errors.New("http timeout must be positive")
)

// DefaultHTTPTimeout is the remote request timeout in seconds when the
// config does not set one.
const DefaultHTTPTimeout = 5

// Validate checks that the Config is well-formed. An empty RemoteURL is
// valid and means the remote mirror is not configured; the system then
// runs local-only.
func (c Config) Validate() error {
	if c.HTTPTimeout < 0 {
		return ErrTimeoutInvalid
	}
	return nil
}

// Remote reports whether a remote mirror is configured and enabled.
func (c Config) Remote() bool {
	return c.RemoteURL != "" && !c.Offline
}
