package ranking

import (
	"context"
	"strings"

	"github.com/hyperjump/mitsumori/models"
)

// PartialScorer matches the query against the description n-gram index,
// catching queries that share a phrase fragment with an item without
// matching any generated keyword.
type PartialScorer struct {
	config *Config
}

// NewPartialScorer creates a partial phrase scorer.
func NewPartialScorer(config *Config) *PartialScorer {
	if config == nil {
		config = DefaultConfig()
	}
	return &PartialScorer{config: config}
}

// Name returns the scorer name.
func (s *PartialScorer) Name() string {
	return "partial"
}

// Score collects every item whose n-gram contains the query text, or is
// contained by it, then grades each candidate by how much of the query its
// description actually covers.
func (s *PartialScorer) Score(ctx context.Context, query *Query, snap Snapshot) []*models.SearchSuggestion {
	if query.Text == "" {
		return nil
	}

	indices := snap.Indices()
	candidates := make(map[string]struct{})
	for _, ngram := range indices.NgramKeys() {
		if !strings.Contains(query.Text, ngram) && !strings.Contains(ngram, query.Text) {
			continue
		}
		for _, id := range indices.NgramMatches(ngram) {
			candidates[id] = struct{}{}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var suggestions []*models.SearchSuggestion
	for _, item := range snap.Store().All() {
		if _, ok := candidates[item.ID]; !ok {
			continue
		}
		suggestions = append(suggestions, &models.SearchSuggestion{
			Item:           item,
			RelevanceScore: s.grade(query, item),
			MatchKind:      models.MatchPartial,
			MatchedTerms:   []string{query.Text},
		})
	}
	return suggestions
}

func (s *PartialScorer) grade(query *Query, item *models.CatalogItem) float64 {
	desc := strings.ToLower(item.Description)
	if strings.Contains(desc, query.Text) {
		return s.config.PartialFullScore
	}
	for _, word := range query.Words {
		if strings.Contains(desc, word) {
			return s.config.PartialWordScore
		}
	}
	return s.config.PartialNgramScore
}
