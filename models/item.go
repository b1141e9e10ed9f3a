// Package models defines core data structures for catalog items, suggestions, and filters.
package models

// Provenance records where in the source document an item was extracted from.
type Provenance struct {
	Page       int `json:"page"`
	TableIndex int `json:"table_index"`
	RowIndex   int `json:"row_index"`
}

// RawItem is one extracted line item as produced by the document extraction
// collaborator. The engine only requires a category, provenance, and a
// non-empty description; price fields are carried as raw text and may be
// absent or malformed. Malformed price text is treated as a missing value,
// never as a reason to reject the item.
type RawItem struct {
	Identifier   string            `json:"identifier,omitempty"`
	Description  string            `json:"description"`
	Unit         string            `json:"unit,omitempty"`
	PriceCurrent string            `json:"price_current,omitempty"`
	PricePrior   string            `json:"price_prior,omitempty"`
	Category     string            `json:"category"`
	Provenance   Provenance        `json:"provenance"`
	RawText      string            `json:"raw_text,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// CatalogItem is one immutable catalog entry. Items are built once per
// catalog load and never mutated afterwards; every component outside the
// catalog store holds read-only references.
type CatalogItem struct {
	// ID is deterministically derived from category, provenance, identifier,
	// and a description prefix. Identical extraction inputs always yield the
	// same ID.
	ID           string            `json:"id"`
	Identifier   string            `json:"identifier,omitempty"`
	Description  string            `json:"description"`
	Unit         string            `json:"unit,omitempty"`
	PriceCurrent string            `json:"price_current,omitempty"`
	PricePrior   string            `json:"price_prior,omitempty"`
	Category     string            `json:"category"`
	Provenance   Provenance        `json:"provenance"`
	RawText      string            `json:"raw_text,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	// SearchText is the denormalized text blob used for embedding and fuzzy
	// comparison.
	SearchText string `json:"search_text"`
	// Keywords is the sorted set of normalized tokens and phrases generated
	// for this item.
	Keywords []string `json:"keywords"`
	// DisplayText is a short human-readable rendering for presentation layers.
	DisplayText string `json:"display_text"`
}
