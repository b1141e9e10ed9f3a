package ranking

import (
	"context"

	"github.com/hyperjump/mitsumori/models"
)

// KeywordScorer scores candidates by keyword overlap: the candidate set is
// the union of keyword-index hits for each query word, and each candidate's
// score is the fraction of query words present in its keyword set.
type KeywordScorer struct {
	config *Config
}

// NewKeywordScorer creates a keyword scorer with the given config.
func NewKeywordScorer(config *Config) *KeywordScorer {
	if config == nil {
		config = DefaultConfig()
	}
	return &KeywordScorer{config: config}
}

// Name returns the scorer name.
func (s *KeywordScorer) Name() string {
	return "keyword"
}

// Score unions index hits per query word, scores each candidate by keyword
// overlap, and drops candidates at or below the minimum threshold.
func (s *KeywordScorer) Score(ctx context.Context, query *Query, snap Snapshot) []*models.SearchSuggestion {
	if len(query.Words) == 0 {
		return nil
	}

	candidates := make(map[string]struct{})
	var matchedTerms []string
	for _, word := range query.Words {
		ids := snap.Indices().KeywordMatches(word)
		if len(ids) == 0 {
			continue
		}
		matchedTerms = append(matchedTerms, word)
		for _, id := range ids {
			candidates[id] = struct{}{}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	queryWords := make(map[string]struct{}, len(query.Words))
	for _, w := range query.Words {
		queryWords[w] = struct{}{}
	}

	// Iterate the store rather than the candidate set so that the emitted
	// order is the catalog insertion order, keeping output deterministic.
	var suggestions []*models.SearchSuggestion
	for _, item := range snap.Store().All() {
		if _, ok := candidates[item.ID]; !ok {
			continue
		}
		overlap := 0
		for _, kw := range item.Keywords {
			if _, ok := queryWords[kw]; ok {
				overlap++
			}
		}
		score := float64(overlap) / float64(len(queryWords))
		if score > 1.0 {
			score = 1.0
		}
		if score <= s.config.KeywordMinScore {
			continue
		}
		suggestions = append(suggestions, &models.SearchSuggestion{
			Item:           item,
			RelevanceScore: score,
			MatchKind:      models.MatchKeyword,
			MatchedTerms:   matchedTerms,
		})
	}
	return suggestions
}
