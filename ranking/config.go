// Package ranking provides the relevance scorers and the merge/dedupe/rank
// pipeline over a frozen catalog snapshot.
package ranking

import "time"

// Config holds scoring thresholds and composite-mode weights.
type Config struct {
	// KeywordMinScore is the overlap threshold below which keyword
	// candidates are dropped.
	KeywordMinScore float64
	// FuzzyMinRatio is the 0-100 similarity threshold for fuzzy candidates.
	FuzzyMinRatio int
	// FuzzyLimit caps the number of distinct fuzzy candidates per query.
	FuzzyLimit int
	// PartialFullScore is awarded when the whole query is a substring of
	// the item description.
	PartialFullScore float64
	// PartialWordScore is awarded when any single query word appears in
	// the description.
	PartialWordScore float64
	// PartialNgramScore is awarded for an n-gram containment match with no
	// direct description hit.
	PartialNgramScore float64
	// SemanticMinSimilarity is the cosine threshold for semantic candidates.
	SemanticMinSimilarity float64
	// CapabilityTimeout bounds each call into an external capability
	// (embedding). A timeout degrades that scorer, not the query.
	CapabilityTimeout time.Duration
	// DefaultMaxResults is used when the caller requests zero or negative
	// max results.
	DefaultMaxResults int

	// Composite-mode weights. They must describe the fixed formula
	// 0.4*semantic + 0.3*keyword + 0.2*identifier + 0.1*category.
	CompositeSemanticWeight   float64
	CompositeKeywordWeight    float64
	CompositeIdentifierWeight float64
	CompositeCategoryWeight   float64
	// CompositeHighConfidence is the composite score above which a single
	// best item is returned instead of a suggestion list.
	CompositeHighConfidence float64
	// CompositeFallbackTopN is the suggestion list length below the
	// confidence threshold.
	CompositeFallbackTopN int
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults sets default values for any zero fields.
func (c *Config) ApplyDefaults() {
	if c.KeywordMinScore == 0 {
		c.KeywordMinScore = 0.3
	}
	if c.FuzzyMinRatio == 0 {
		c.FuzzyMinRatio = 60
	}
	if c.FuzzyLimit == 0 {
		c.FuzzyLimit = 5
	}
	if c.PartialFullScore == 0 {
		c.PartialFullScore = 0.8
	}
	if c.PartialWordScore == 0 {
		c.PartialWordScore = 0.6
	}
	if c.PartialNgramScore == 0 {
		c.PartialNgramScore = 0.4
	}
	if c.SemanticMinSimilarity == 0 {
		c.SemanticMinSimilarity = 0.5
	}
	if c.CapabilityTimeout == 0 {
		c.CapabilityTimeout = 5 * time.Second
	}
	if c.DefaultMaxResults == 0 {
		c.DefaultMaxResults = 10
	}
	if c.CompositeSemanticWeight == 0 {
		c.CompositeSemanticWeight = 0.4
	}
	if c.CompositeKeywordWeight == 0 {
		c.CompositeKeywordWeight = 0.3
	}
	if c.CompositeIdentifierWeight == 0 {
		c.CompositeIdentifierWeight = 0.2
	}
	if c.CompositeCategoryWeight == 0 {
		c.CompositeCategoryWeight = 0.1
	}
	if c.CompositeHighConfidence == 0 {
		c.CompositeHighConfidence = 0.5
	}
	if c.CompositeFallbackTopN == 0 {
		c.CompositeFallbackTopN = 3
	}
}
