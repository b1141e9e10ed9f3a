package models

// MatchKind identifies the relevance signal that produced a suggestion.
type MatchKind int

const (
	// MatchExactIdentifier is an exact identifier lookup (e.g. "item 12").
	MatchExactIdentifier MatchKind = iota
	// MatchKeyword is a keyword-overlap match.
	MatchKeyword
	// MatchFuzzy is an approximate string-similarity match.
	MatchFuzzy
	// MatchPartial is a substring/n-gram containment match.
	MatchPartial
	// MatchSemantic is an embedding-space similarity match.
	MatchSemantic
)

// String returns a string representation of the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchExactIdentifier:
		return "exact_identifier"
	case MatchKeyword:
		return "keyword"
	case MatchFuzzy:
		return "fuzzy"
	case MatchPartial:
		return "partial"
	case MatchSemantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so match kinds serialize as
// their string form in JSON output.
func (k MatchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// SearchSuggestion is a single suggested catalog item for a query.
// Suggestions are created fresh per query and never persisted.
type SearchSuggestion struct {
	Item *CatalogItem `json:"item"`
	// RelevanceScore is the match strength in [0,1].
	RelevanceScore float64   `json:"relevance_score"`
	MatchKind      MatchKind `json:"match_kind"`
	// MatchedTerms explains which query terms produced the match.
	MatchedTerms []string `json:"matched_terms"`
}
