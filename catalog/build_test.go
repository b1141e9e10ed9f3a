package catalog

import (
	"strings"
	"testing"

	"github.com/hyperjump/mitsumori/models"
)

func sampleRaw() *models.RawItem {
	return &models.RawItem{
		Identifier:   "1",
		Description:  "Acetylene Gas",
		Unit:         "no",
		PriceCurrent: "785.00",
		PricePrior:   "760.00",
		Category:     "MATERIALS",
		Provenance:   models.Provenance{Page: 2, TableIndex: 0, RowIndex: 1},
	}
}

func TestItemIDDeterministic(t *testing.T) {
	a := ItemID(sampleRaw())
	b := ItemID(sampleRaw())
	if a != b {
		t.Errorf("same input produced different IDs: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestItemIDDistinguishesRows(t *testing.T) {
	base := sampleRaw()
	tests := []struct {
		name   string
		mutate func(*models.RawItem)
	}{
		{"different row", func(r *models.RawItem) { r.Provenance.RowIndex = 2 }},
		{"different page", func(r *models.RawItem) { r.Provenance.Page = 3 }},
		{"different table", func(r *models.RawItem) { r.Provenance.TableIndex = 1 }},
		{"different category", func(r *models.RawItem) { r.Category = "LABOUR" }},
		{"different identifier", func(r *models.RawItem) { r.Identifier = "2" }},
		{"different description", func(r *models.RawItem) { r.Description = "Oxygen Gas" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := sampleRaw()
			tt.mutate(other)
			if ItemID(base) == ItemID(other) {
				t.Errorf("expected distinct IDs for %s", tt.name)
			}
		})
	}
}

func TestItemIDIgnoresLongDescriptionTail(t *testing.T) {
	a := sampleRaw()
	b := sampleRaw()
	prefix := strings.Repeat("x", descriptionPrefixLen)
	a.Description = prefix + " first tail"
	b.Description = prefix + " second tail"
	if ItemID(a) != ItemID(b) {
		t.Error("descriptions sharing the hashed prefix should collide on ID")
	}
}

func TestGenerateKeywords(t *testing.T) {
	item := BuildItem(sampleRaw())

	want := []string{
		// category and identifier variants
		"materials", "1", "item 1", "item no 1", "sr no 1", "serial 1", "1.",
		// description and its words
		"acetylene gas", "acetylene", "gas",
		// material synonyms for acetylene
		"welding gas", "gas cylinder",
		// unit variants
		"no", "per no", "number", "piece", "nos", "each",
	}
	got := make(map[string]struct{}, len(item.Keywords))
	for _, kw := range item.Keywords {
		got[kw] = struct{}{}
	}
	for _, kw := range want {
		if _, ok := got[kw]; !ok {
			t.Errorf("missing keyword %q in %v", kw, item.Keywords)
		}
	}

	for i := 1; i < len(item.Keywords); i++ {
		if item.Keywords[i-1] >= item.Keywords[i] {
			t.Fatalf("keywords not sorted: %v", item.Keywords)
		}
	}
}

func TestGenerateKeywordsSkipsShortWords(t *testing.T) {
	raw := sampleRaw()
	raw.Description = "MS rod of 12 mm dia"
	item := BuildItem(raw)
	for _, kw := range item.Keywords {
		if kw == "of" || kw == "12" || kw == "mm" || kw == "ms" {
			t.Errorf("short token %q should not be a standalone keyword", kw)
		}
	}
}

func TestSearchText(t *testing.T) {
	item := BuildItem(sampleRaw())
	for _, fragment := range []string{
		"Section: MATERIALS",
		"Item 1",
		"Acetylene Gas",
		"Unit: no",
		"current rate 785.00",
		"prior rate 760.00",
	} {
		if !strings.Contains(item.SearchText, fragment) {
			t.Errorf("search text missing %q: %s", fragment, item.SearchText)
		}
	}
}

func TestDisplayText(t *testing.T) {
	item := BuildItem(sampleRaw())
	want := "#1 Acetylene Gas (no) - Rs. 785.00"
	if item.DisplayText != want {
		t.Errorf("display text = %q, want %q", item.DisplayText, want)
	}
}

func TestDisplayTextSparseItem(t *testing.T) {
	raw := &models.RawItem{Description: "Carting charges", Category: "TRANSPORTATION"}
	item := BuildItem(raw)
	if item.DisplayText != "Carting charges" {
		t.Errorf("display text = %q, want bare description", item.DisplayText)
	}
}

func TestBuildItemsSkipsEmptyDescriptions(t *testing.T) {
	raws := []models.RawItem{
		*sampleRaw(),
		{Category: "MATERIALS", Description: "   "},
		{Category: "MATERIALS", Description: ""},
		{Category: "LABOUR", Description: "Mason first class", Provenance: models.Provenance{Page: 9}},
	}
	items, skipped := BuildItems(raws)
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
	if skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", skipped)
	}
}

func TestBuildItemMalformedPriceKept(t *testing.T) {
	raw := sampleRaw()
	raw.PriceCurrent = "n/a"
	item := BuildItem(raw)
	if item.PriceCurrent != "n/a" {
		t.Errorf("price text should be carried verbatim, got %q", item.PriceCurrent)
	}
}
