package models

import "testing"

func TestSearchFiltersMatches(t *testing.T) {
	item := &CatalogItem{
		Identifier:  "7",
		Description: "Cement OPC 43 grade",
		Category:    "MATERIALS",
	}

	tests := []struct {
		name    string
		filters SearchFilters
		want    bool
	}{
		{"empty filters match everything", SearchFilters{}, true},
		{"category case-insensitive", SearchFilters{Category: "materials"}, true},
		{"category mismatch", SearchFilters{Category: "LABOUR"}, false},
		{"identifier exact", SearchFilters{Identifier: "7"}, true},
		{"identifier mismatch", SearchFilters{Identifier: "8"}, false},
		{"substring case-insensitive", SearchFilters{DescriptionSubstring: "opc"}, true},
		{"substring mismatch", SearchFilters{DescriptionSubstring: "steel"}, false},
		{"all fields", SearchFilters{Category: "MATERIALS", Identifier: "7", DescriptionSubstring: "cement"}, true},
		{"one field fails", SearchFilters{Category: "MATERIALS", Identifier: "9"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Matches(item); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchKindString(t *testing.T) {
	tests := []struct {
		kind MatchKind
		want string
	}{
		{MatchExactIdentifier, "exact_identifier"},
		{MatchKeyword, "keyword"},
		{MatchFuzzy, "fuzzy"},
		{MatchPartial, "partial"},
		{MatchSemantic, "semantic"},
		{MatchKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
