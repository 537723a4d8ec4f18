package types

// SyncStatus is the coarse, informational sync state reported to the
// user. It never blocks local mutation; the application stays fully
// usable offline indefinitely.
type SyncStatus string

const (
	// StatusIdle means nothing is pending and the last round-trip succeeded.
	StatusIdle SyncStatus = "idle"
	// StatusSyncing means a remote round-trip is in flight.
	StatusSyncing SyncStatus = "syncing"
	// StatusOffline means connectivity is down or no remote is configured.
	StatusOffline SyncStatus = "offline"
	// StatusError means the last round-trip returned no usable data.
	StatusError SyncStatus = "error"
)
