package ranking

import (
	"context"
	"sort"
	"strings"

	"github.com/hyperjump/mitsumori/fuzzy"
	"github.com/hyperjump/mitsumori/models"
)

// FuzzyScorer scores candidates by approximate string similarity between
// the query and each item description, keeping only the few best matches.
type FuzzyScorer struct {
	ratio  fuzzy.Ratio
	config *Config
}

// NewFuzzyScorer creates a fuzzy scorer backed by the given ratio capability.
func NewFuzzyScorer(ratio fuzzy.Ratio, config *Config) *FuzzyScorer {
	if config == nil {
		config = DefaultConfig()
	}
	return &FuzzyScorer{ratio: ratio, config: config}
}

// Name returns the scorer name.
func (s *FuzzyScorer) Name() string {
	return "fuzzy"
}

// Score ranks every description by similarity ratio and keeps at most the
// configured number of distinct items above the minimum ratio, scored as
// ratio/100. A nil ratio capability disables the signal.
func (s *FuzzyScorer) Score(ctx context.Context, query *Query, snap Snapshot) []*models.SearchSuggestion {
	if s.ratio == nil || query.Text == "" {
		return nil
	}

	type scored struct {
		item  *models.CatalogItem
		ratio int
	}
	var matches []scored
	for _, item := range snap.Store().All() {
		r := s.ratio.Ratio(query.Text, strings.ToLower(item.Description))
		if r > s.config.FuzzyMinRatio {
			matches = append(matches, scored{item: item, ratio: r})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	// Stable sort keeps catalog order for equal ratios, so output is
	// deterministic.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ratio > matches[j].ratio
	})
	if len(matches) > s.config.FuzzyLimit {
		matches = matches[:s.config.FuzzyLimit]
	}

	suggestions := make([]*models.SearchSuggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = &models.SearchSuggestion{
			Item:           m.item,
			RelevanceScore: float64(m.ratio) / 100.0,
			MatchKind:      models.MatchFuzzy,
			MatchedTerms:   []string{query.Text},
		}
	}
	return suggestions
}
