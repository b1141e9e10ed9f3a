package index

// Indices holds the four read-only indices plus precomputed item embedding
// vectors for one catalog snapshot. All maps and slices are frozen after
// Build returns; accessors hand out internal slices which callers must
// treat as read-only.
type Indices struct {
	keyword    map[string][]string
	ngram      map[string][]string
	ngramKeys  []string
	identifier map[string]string
	ambiguous  []string
	categories []string
	byCategory map[string][]string
	vectors    map[string][]float32
	dimensions int
}

// KeywordMatches returns the IDs of items whose keyword set contains the
// normalized token, in catalog insertion order.
func (x *Indices) KeywordMatches(token string) []string {
	return x.keyword[token]
}

// NgramKeys returns every stored n-gram phrase in sorted order. Sorted
// iteration keeps substring scans deterministic.
func (x *Indices) NgramKeys() []string {
	return x.ngramKeys
}

// NgramMatches returns the IDs of items whose text produced the phrase, in
// catalog insertion order.
func (x *Indices) NgramMatches(phrase string) []string {
	return x.ngram[phrase]
}

// IdentifierLookup resolves an item identifier to its catalog ID. When the
// same identifier was indexed for multiple items, the most recently indexed
// one wins; see AmbiguousIdentifiers.
func (x *Indices) IdentifierLookup(identifier string) (string, bool) {
	id, ok := x.identifier[identifier]
	return id, ok
}

// AmbiguousIdentifiers returns the identifiers that collided during
// indexing, in first-collision order. Last write wins for lookups; the
// collision list lets callers surface the ambiguity instead of hiding it.
func (x *Indices) AmbiguousIdentifiers() []string {
	return x.ambiguous
}

// Categories returns category labels in first-seen order.
func (x *Indices) Categories() []string {
	return x.categories
}

// CategoryItems returns the IDs of the items in a category, in catalog
// insertion order.
func (x *Indices) CategoryItems(category string) []string {
	return x.byCategory[category]
}

// Vector returns the precomputed embedding for an item, if one was computed.
func (x *Indices) Vector(id string) ([]float32, bool) {
	vec, ok := x.vectors[id]
	return vec, ok
}

// HasVectors reports whether any item embeddings were computed. When the
// embedding capability failed during the build this is false and semantic
// scoring degrades to zero candidates.
func (x *Indices) HasVectors() bool {
	return len(x.vectors) > 0
}

// Dimensions returns the embedding dimension, or 0 when no vectors exist.
func (x *Indices) Dimensions() int {
	return x.dimensions
}

// KeywordCount returns the number of distinct indexed keywords.
func (x *Indices) KeywordCount() int {
	return len(x.keyword)
}

// NgramCount returns the number of distinct indexed n-gram phrases.
func (x *Indices) NgramCount() int {
	return len(x.ngram)
}
