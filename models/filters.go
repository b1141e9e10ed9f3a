package models

import "strings"

// SearchFilters selects catalog items by fixed fields. Empty fields are
// wildcards. Category and description substring compare case-insensitively,
// identifier compares exactly.
type SearchFilters struct {
	Category             string `json:"category,omitempty"`
	Identifier           string `json:"identifier,omitempty"`
	DescriptionSubstring string `json:"description_substring,omitempty"`
}

// Matches reports whether item satisfies every supplied filter.
func (f SearchFilters) Matches(item *CatalogItem) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, item.Category) {
		return false
	}
	if f.Identifier != "" && f.Identifier != item.Identifier {
		return false
	}
	if f.DescriptionSubstring != "" &&
		!strings.Contains(strings.ToLower(item.Description), strings.ToLower(f.DescriptionSubstring)) {
		return false
	}
	return true
}
