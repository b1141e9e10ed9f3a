package ranking

import (
	"context"
	"regexp"

	"github.com/hyperjump/mitsumori/models"
)

// identifierShapes are the query shapes that plausibly encode an item
// identifier, tried in a fixed priority order. The ordering is load-bearing:
// reordering changes which identifier a query like "12. cement 5" resolves
// to, so it must stay stable across releases.
var identifierShapes = []*regexp.Regexp{
	// A leading number ("12 cement bag").
	regexp.MustCompile(`^(\d+)\b`),
	// A number preceded by a label word ("item 12", "sr no 12", "serial 12").
	regexp.MustCompile(`(?:item|no|sr|serial)\.?\s*(\d+)`),
	// A standalone number ("12").
	regexp.MustCompile(`^\s*(\d+)\s*$`),
	// A number followed by a period ("12.").
	regexp.MustCompile(`(\d+)\.`),
}

// IdentifierScorer resolves queries that encode an item identifier through
// the identifier index. The first shape that matches the query and resolves
// to an item wins and yields exactly one full-confidence suggestion.
type IdentifierScorer struct{}

// NewIdentifierScorer creates the exact-identifier scorer.
func NewIdentifierScorer() *IdentifierScorer {
	return &IdentifierScorer{}
}

// Name returns the scorer name.
func (s *IdentifierScorer) Name() string {
	return "exact_identifier"
}

// Score tries the identifier hint first, then each query shape in priority
// order; a resolved identifier scores 1.0.
func (s *IdentifierScorer) Score(ctx context.Context, query *Query, snap Snapshot) []*models.SearchSuggestion {
	if query.IdentifierHint != "" {
		if sugg := s.resolve(query.IdentifierHint, snap); sugg != nil {
			return []*models.SearchSuggestion{sugg}
		}
	}
	for _, shape := range identifierShapes {
		m := shape.FindStringSubmatch(query.Text)
		if m == nil {
			continue
		}
		if sugg := s.resolve(m[1], snap); sugg != nil {
			return []*models.SearchSuggestion{sugg}
		}
	}
	return nil
}

func (s *IdentifierScorer) resolve(identifier string, snap Snapshot) *models.SearchSuggestion {
	id, ok := snap.Indices().IdentifierLookup(identifier)
	if !ok {
		return nil
	}
	item, err := snap.Store().Get(id)
	if err != nil {
		return nil
	}
	return &models.SearchSuggestion{
		Item:           item,
		RelevanceScore: 1.0,
		MatchKind:      models.MatchExactIdentifier,
		MatchedTerms:   []string{"item " + identifier},
	}
}
