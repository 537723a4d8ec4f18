package types

// Ingredient is one line of a meal's ingredient list. Ingredients are
// owned by exactly one meal and share its lifecycle; they are never
// persisted on their own.
type Ingredient struct {
	ID         string  `json:"id"`
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit,omitempty"`
}

// Meal is a named dish with notes and an ordered ingredient list.
// Identity is the opaque ID.
type Meal struct {
	ID          string       `json:"id"`
	MealName    string       `json:"mealName"`
	Notes       string       `json:"notes,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Equal reports structural equality: same name, same notes, and the same
// ordered ingredient list (name, quantity, unit). Ingredient IDs are
// remote row addresses and do not participate. The reconciliation engine
// uses Equal to retire a dirty marker once the remote copy matches the
// local edit.
func (m Meal) Equal(other Meal) bool {
	if m.MealName != other.MealName {
		return false
	}
	if m.Notes != other.Notes {
		return false
	}
	if len(m.Ingredients) != len(other.Ingredients) {
		return false
	}
	for i, a := range m.Ingredients {
		b := other.Ingredients[i]
		if a.Ingredient != b.Ingredient {
			return false
		}
		if a.Quantity != b.Quantity {
			return false
		}
		if a.Unit != b.Unit {
			return false
		}
	}
	return true
}
