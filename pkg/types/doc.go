// Package types defines the entity types, composite keys, and standard
// errors for the Larder meal-planning system: grocery items, meals with
// their owned ingredients, weekly plans, sync status, and the dirty and
// tombstone marker shapes used by the reconciliation engine.
package types
