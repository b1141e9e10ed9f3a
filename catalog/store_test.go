package catalog

import (
	"errors"
	"testing"

	"github.com/hyperjump/mitsumori/models"
)

func testItems(t *testing.T) []*models.CatalogItem {
	t.Helper()
	raws := []models.RawItem{
		{Identifier: "1", Description: "Acetylene Gas", Unit: "no", Category: "MATERIALS", Provenance: models.Provenance{Page: 2, RowIndex: 1}},
		{Identifier: "2", Description: "Oxygen Gas", Unit: "no", Category: "MATERIALS", Provenance: models.Provenance{Page: 2, RowIndex: 2}},
		{Identifier: "1", Description: "Mason first class", Unit: "day", Category: "LABOUR", Provenance: models.Provenance{Page: 9, RowIndex: 1}},
	}
	items, skipped := BuildItems(raws)
	if skipped != 0 {
		t.Fatalf("unexpected skipped rows: %d", skipped)
	}
	return items
}

func TestNewStoreEmpty(t *testing.T) {
	if _, err := NewStore(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestNewStoreDuplicateID(t *testing.T) {
	items := testItems(t)
	items = append(items, items[0])
	if _, err := NewStore(items); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestStoreGet(t *testing.T) {
	items := testItems(t)
	store, err := NewStore(items)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	got, err := store.Get(items[1].ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Description != "Oxygen Gas" {
		t.Errorf("got item %q, want Oxygen Gas", got.Description)
	}

	if _, err := store.Get("missing"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestStoreAllPreservesOrder(t *testing.T) {
	items := testItems(t)
	store, err := NewStore(items)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	all := store.All()
	if len(all) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(all))
	}
	for i := range items {
		if all[i].ID != items[i].ID {
			t.Errorf("position %d: got %q, want %q", i, all[i].ID, items[i].ID)
		}
	}
}

func TestStoreFilter(t *testing.T) {
	store, err := NewStore(testItems(t))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	materials := store.Filter(func(item *models.CatalogItem) bool {
		return item.Category == "MATERIALS"
	})
	if len(materials) != 2 {
		t.Errorf("expected 2 materials, got %d", len(materials))
	}
}
