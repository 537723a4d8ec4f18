// Package identity provides the pure identity and normalization helpers
// the reconciliation engine builds on: opaque ID generation, name
// normalization, week-start keys, composite grocery keys, timestamp
// parsing, and ingredient summation.
package identity

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// NewID returns a globally-unique opaque string (UUID v7). When the
// randomness source fails it falls back to a weaker pseudo-random ID;
// IDs are identity only, never security.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("id-%08x", rand.Uint32())
	}
	return id.String()
}

// NormalizeName trims and lowercases s. It is the sole basis for "same
// ingredient or item" comparisons; case and whitespace are never
// significant.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// WeekStartKey maps t to the ISO date (YYYY-MM-DD) of the Monday of its
// week, using t's own calendar date. Sunday maps to the previous Monday:
// the week boundary is Monday, not Sunday.
func WeekStartKey(t time.Time) string {
	diff := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	return t.AddDate(0, 0, diff).Format("2006-01-02")
}

// ParseTimestamp converts an RFC 3339 timestamp to Unix milliseconds.
// A missing or unparseable timestamp is epoch 0, so it always loses a
// last-write-wins comparison.
func ParseTimestamp(s string) int64 {
	if s == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

// GroceryKey is the merge identity of a grocery item: independently
// created local and remote rows that agree on this key represent the
// same entry. The item's opaque ID exists only for remote row
// addressing and must never stand in for this key.
type GroceryKey struct {
	Name      string
	Unit      string
	WeekStart string
	Source    types.Source
}

// KeyOf computes the composite merge key for an item. Items without a
// week fall back to defaultWeek and items without a source count as
// manual, mirroring GroceryItem.Normalize.
func KeyOf(item types.GroceryItem, defaultWeek string) GroceryKey {
	week := item.WeekStart
	if week == "" {
		week = defaultWeek
	}
	source := item.Source
	if source == "" {
		source = types.SourceManual
	}
	return GroceryKey{
		Name:      NormalizeName(item.Name),
		Unit:      item.Unit,
		WeekStart: week,
		Source:    source,
	}
}

// SumIngredients groups ingredients by (normalized name, unit) and sums
// their quantities. Output preserves the order of first occurrence; the
// first spelling of a name wins.
func SumIngredients(ingredients []types.Ingredient) []types.Ingredient {
	type sumKey struct {
		name string
		unit string
	}
	index := make(map[sumKey]int, len(ingredients))
	out := make([]types.Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		key := sumKey{name: NormalizeName(ing.Ingredient), unit: ing.Unit}
		if at, ok := index[key]; ok {
			out[at].Quantity += ing.Quantity
			continue
		}
		index[key] = len(out)
		out = append(out, ing)
	}
	return out
}
