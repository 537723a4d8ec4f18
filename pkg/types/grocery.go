package types

import "sort"

// Category classifies a grocery item for shopping-aisle grouping.
type Category string

// Recognized grocery categories.
const (
	CategoryProduce Category = "produce"
	CategoryDairy   Category = "dairy"
	CategoryPantry  Category = "pantry"
	CategoryFrozen  Category = "frozen"
	CategoryBakery  Category = "bakery"
	CategoryMeat    Category = "meat"
	CategorySnacks  Category = "snacks"
	CategoryOther   Category = "other"
)

// DefaultCategory is assigned to generated items with no prior category.
const DefaultCategory = CategoryPantry

// validCategories is the set of recognized category values.
var validCategories = map[Category]bool{
	CategoryProduce: true,
	CategoryDairy:   true,
	CategoryPantry:  true,
	CategoryFrozen:  true,
	CategoryBakery:  true,
	CategoryMeat:    true,
	CategorySnacks:  true,
	CategoryOther:   true,
}

// Valid reports whether c is a recognized category.
func (c Category) Valid() bool {
	return validCategories[c]
}

// Source records how a grocery item came to exist. Generated items are
// owned by the list generator and replaced wholesale on regeneration;
// manual items are only ever touched by the user.
type Source string

const (
	SourceManual    Source = "manual"
	SourceGenerated Source = "generated"
)

// GroceryItem is one row of a week's grocery list. ID addresses the
// remote row; merge identity is the composite key computed by
// identity.KeyOf, never the ID.
type GroceryItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Quantity  float64  `json:"quantity"`
	Unit      string   `json:"unit,omitempty"`
	Category  Category `json:"category"`
	Checked   bool     `json:"checked"`
	WeekStart string   `json:"weekStart"`
	UpdatedAt string   `json:"updatedAt"`
	Source    Source   `json:"source,omitempty"`
}

// Normalize fills the defaults a row read from storage or the remote may
// lack: items without a week belong to defaultWeek, items without a
// source are manual, and unrecognized categories collapse to "other".
func (g GroceryItem) Normalize(defaultWeek string) GroceryItem {
	if g.WeekStart == "" {
		g.WeekStart = defaultWeek
	}
	if g.Source == "" {
		g.Source = SourceManual
	}
	if !g.Category.Valid() {
		g.Category = CategoryOther
	}
	return g
}

// NormalizeGroceryItems applies Normalize to every item.
func NormalizeGroceryItems(items []GroceryItem, defaultWeek string) []GroceryItem {
	out := make([]GroceryItem, len(items))
	for i, item := range items {
		out[i] = item.Normalize(defaultWeek)
	}
	return out
}

// SortGroceryItems returns a copy sorted for display: unchecked items
// first, then alphabetically by name.
func SortGroceryItems(items []GroceryItem) []GroceryItem {
	out := make([]GroceryItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Checked != out[j].Checked {
			return !out[i].Checked
		}
		return out[i].Name < out[j].Name
	})
	return out
}
