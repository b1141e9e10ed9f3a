package ranking

import (
	"sort"

	"github.com/hyperjump/mitsumori/models"
)

// Ranker merges the per-scorer suggestion batches into one deduplicated,
// score-ordered result list.
type Ranker struct {
	config *Config
}

// NewRanker creates a ranker.
func NewRanker(config *Config) *Ranker {
	if config == nil {
		config = DefaultConfig()
	}
	return &Ranker{config: config}
}

// Rank concatenates the batches in the order given, keeps the best score
// per item, and sorts by score descending. Items with equal scores keep
// the order in which they were first seen, so results are stable across
// runs. A non-positive maxResults falls back to the configured default.
func (r *Ranker) Rank(batches [][]*models.SearchSuggestion, maxResults int) []*models.SearchSuggestion {
	if maxResults <= 0 {
		maxResults = r.config.DefaultMaxResults
	}

	type entry struct {
		suggestion *models.SearchSuggestion
		order      int
	}
	seen := make(map[string]*entry)
	var merged []*entry
	order := 0
	for _, batch := range batches {
		for _, suggestion := range batch {
			if suggestion == nil || suggestion.Item == nil {
				continue
			}
			existing, ok := seen[suggestion.Item.ID]
			if !ok {
				e := &entry{suggestion: suggestion, order: order}
				order++
				seen[suggestion.Item.ID] = e
				merged = append(merged, e)
				continue
			}
			if suggestion.RelevanceScore > existing.suggestion.RelevanceScore {
				existing.suggestion = suggestion
			}
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].suggestion.RelevanceScore != merged[j].suggestion.RelevanceScore {
			return merged[i].suggestion.RelevanceScore > merged[j].suggestion.RelevanceScore
		}
		return merged[i].order < merged[j].order
	})

	if len(merged) > maxResults {
		merged = merged[:maxResults]
	}
	results := make([]*models.SearchSuggestion, len(merged))
	for i, e := range merged {
		results[i] = e.suggestion
	}
	return results
}
