package catalog

import (
	"fmt"

	"github.com/hyperjump/mitsumori/models"
)

// Store is the immutable collection of catalog items keyed by ID. It is the
// exclusive owner of its items; all other components hold read-only
// references and must not mutate an item after construction.
type Store struct {
	items []*models.CatalogItem
	byID  map[string]*models.CatalogItem
}

// NewStore constructs a store from the given items. Iteration order is the
// order items were passed in. Fails with ErrEmptyCatalog on zero items and
// ErrDuplicateID when two items share an ID.
func NewStore(items []*models.CatalogItem) (*Store, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	byID := make(map[string]*models.CatalogItem, len(items))
	for _, item := range items {
		if prev, exists := byID[item.ID]; exists {
			return nil, fmt.Errorf("%w: %q (%s and %s)",
				ErrDuplicateID, item.ID, provenanceRef(prev), provenanceRef(item))
		}
		byID[item.ID] = item
	}
	stored := make([]*models.CatalogItem, len(items))
	copy(stored, items)
	return &Store{items: stored, byID: byID}, nil
}

// Get returns the item with the given ID, or ErrItemNotFound.
func (s *Store) Get(id string) (*models.CatalogItem, error) {
	item, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}
	return item, nil
}

// All returns every item in insertion order. The returned slice is shared;
// callers must not modify it.
func (s *Store) All() []*models.CatalogItem {
	return s.items
}

// Filter returns the items matching pred, in insertion order.
func (s *Store) Filter(pred func(*models.CatalogItem) bool) []*models.CatalogItem {
	var matched []*models.CatalogItem
	for _, item := range s.items {
		if pred(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Len returns the number of items in the store.
func (s *Store) Len() int {
	return len(s.items)
}
