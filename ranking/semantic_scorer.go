package ranking

import (
	"context"

	"go.uber.org/zap"

	"github.com/hyperjump/mitsumori/embedding"
	"github.com/hyperjump/mitsumori/models"
	"github.com/hyperjump/mitsumori/pkg/utils"
)

// SemanticScorer compares a query embedding against the item vectors built
// at index time. The scorer degrades to an empty result when the snapshot
// carries no vectors or the embedder fails, so an unreachable embedding
// service never breaks the other signals.
type SemanticScorer struct {
	embedder embedding.Embedder
	cache    *embedding.Cache
	config   *Config
	logger   *zap.Logger
}

// NewSemanticScorer creates a semantic scorer. The cache may be nil.
func NewSemanticScorer(embedder embedding.Embedder, cache *embedding.Cache, config *Config, logger *zap.Logger) *SemanticScorer {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SemanticScorer{
		embedder: embedder,
		cache:    cache,
		config:   config,
		logger:   logger,
	}
}

// Name returns the scorer name.
func (s *SemanticScorer) Name() string {
	return "semantic"
}

// Score embeds the query and emits every item whose cosine similarity
// clears the configured floor, in catalog order.
func (s *SemanticScorer) Score(ctx context.Context, query *Query, snap Snapshot) []*models.SearchSuggestion {
	if s.embedder == nil || query.Text == "" {
		return nil
	}
	indices := snap.Indices()
	if !indices.HasVectors() {
		return nil
	}

	vec, err := s.embedQuery(ctx, query.Text)
	if err != nil {
		s.logger.Warn("query embedding failed, skipping semantic signal",
			zap.String("query", utils.Truncate(query.Text, 80)),
			zap.Error(err))
		return nil
	}

	var suggestions []*models.SearchSuggestion
	for _, item := range snap.Store().All() {
		itemVec, ok := indices.Vector(item.ID)
		if !ok {
			continue
		}
		similarity := utils.CosineSimilarity(vec, itemVec)
		if similarity <= s.config.SemanticMinSimilarity {
			continue
		}
		suggestions = append(suggestions, &models.SearchSuggestion{
			Item:           item,
			RelevanceScore: similarity,
			MatchKind:      models.MatchSemantic,
			MatchedTerms:   []string{query.Text},
		})
	}
	return suggestions
}

func (s *SemanticScorer) embedQuery(ctx context.Context, text string) ([]float32, error) {
	if s.cache != nil {
		if vec, ok := s.cache.Get(text); ok {
			return vec, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.CapabilityTimeout)
	defer cancel()

	vec, err := s.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	utils.NormalizeL2(vec)
	if s.cache != nil {
		s.cache.Set(text, vec)
	}
	return vec, nil
}
