package types

import "errors"

// Standard errors returned by the store and the CLI layer.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrInvalidDay      = errors.New("unknown day key")
	ErrInvalidCategory = errors.New("unknown category")
	ErrInvalidWeek     = errors.New("week must be an ISO date (YYYY-MM-DD)")
)
