package state

import (
	"context"

	"github.com/mesh-intelligence/larder/internal/identity"
	"github.com/mesh-intelligence/larder/internal/remote"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// AddGroceryItem assigns an ID and timestamp, applies the item locally,
// and mirrors it to the remote in the background. On confirmation the
// server-shaped row replaces any local rows sharing its composite key;
// the server may have merged a create-time duplicate by summing.
func (s *Store) AddGroceryItem(ctx context.Context, item types.GroceryItem) types.GroceryItem {
	s.mu.Lock()
	defaultWeek := identity.WeekStartKey(s.now())
	item.ID = identity.NewID()
	item.UpdatedAt = s.timestamp()
	item = item.Normalize(defaultWeek)
	s.grocery = append([]types.GroceryItem{item}, s.grocery...)
	s.persistGrocery()
	s.mu.Unlock()

	s.push(ctx, func(ctx context.Context) bool {
		confirmed, ok := s.gw.CreateGroceryItem(ctx, item)
		if !ok {
			return false
		}
		confirmed = confirmed.Normalize(defaultWeek)
		s.mu.Lock()
		defer s.mu.Unlock()
		key := identity.KeyOf(confirmed, defaultWeek)
		kept := make([]types.GroceryItem, 0, len(s.grocery))
		for _, existing := range s.grocery {
			if identity.KeyOf(existing, defaultWeek) != key {
				kept = append(kept, existing)
			}
		}
		s.grocery = append([]types.GroceryItem{confirmed}, kept...)
		s.persistGrocery()
		return true
	})

	return item
}

// UpdateGroceryItem applies a partial update to the item with the given
// ID and pushes the same patch remotely. Returns false when no local
// item has that ID.
func (s *Store) UpdateGroceryItem(ctx context.Context, id string, patch remote.GroceryPatch) (types.GroceryItem, bool) {
	s.mu.Lock()
	patch.UpdatedAt = s.timestamp()
	var updated types.GroceryItem
	found := false
	for i, item := range s.grocery {
		if item.ID != id {
			continue
		}
		s.grocery[i] = applyPatch(item, patch)
		updated = s.grocery[i]
		found = true
		break
	}
	if found {
		s.persistGrocery()
	}
	s.mu.Unlock()

	if !found {
		return types.GroceryItem{}, false
	}

	s.push(ctx, func(ctx context.Context) bool {
		_, ok := s.gw.UpdateGroceryItem(ctx, id, patch)
		return ok
	})
	return updated, true
}

// ToggleGroceryItem flips (or forces, when checked is non-nil) the
// item's checked flag.
func (s *Store) ToggleGroceryItem(ctx context.Context, id string, checked *bool) (types.GroceryItem, bool) {
	s.mu.Lock()
	var next bool
	found := false
	for _, item := range s.grocery {
		if item.ID == id {
			next = !item.Checked
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return types.GroceryItem{}, false
	}
	if checked != nil {
		next = *checked
	}
	return s.UpdateGroceryItem(ctx, id, remote.GroceryPatch{Checked: &next})
}

// DeleteGroceryItem removes the item locally and mirrors the delete.
// Grocery rows carry no tombstones: a re-pull resolves any remote
// leftovers through the last-write-wins merge.
func (s *Store) DeleteGroceryItem(ctx context.Context, id string) {
	s.mu.Lock()
	kept := make([]types.GroceryItem, 0, len(s.grocery))
	for _, item := range s.grocery {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.grocery = kept
	s.persistGrocery()
	s.mu.Unlock()

	s.push(ctx, func(ctx context.Context) bool {
		return s.gw.DeleteGroceryItem(ctx, id)
	})
}

// applyPatch overlays the non-nil patch fields onto item.
func applyPatch(item types.GroceryItem, patch remote.GroceryPatch) types.GroceryItem {
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Checked != nil {
		item.Checked = *patch.Checked
	}
	item.UpdatedAt = patch.UpdatedAt
	return item
}
