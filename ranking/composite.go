package ranking

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/mitsumori/embedding"
	"github.com/hyperjump/mitsumori/interpret"
	"github.com/hyperjump/mitsumori/models"
	"github.com/hyperjump/mitsumori/pkg/utils"
)

// CompositeResult carries a weighted score for one catalog item together
// with the per-component contributions that produced it.
type CompositeResult struct {
	Item       *models.CatalogItem `json:"item"`
	Score      float64             `json:"score"`
	Semantic   float64             `json:"semantic"`
	Keyword    float64             `json:"keyword"`
	Identifier float64             `json:"identifier"`
	Category   float64             `json:"category"`
}

// CompositeOutcome is the result of ranking the whole catalog against an
// interpreted query. When the best score clears the confidence floor the
// outcome is a single exact answer, otherwise the top candidates are
// returned as suggestions.
type CompositeOutcome struct {
	Exact       *CompositeResult   `json:"exact,omitempty"`
	Suggestions []*CompositeResult `json:"suggestions,omitempty"`
}

// categoryHints maps a catalog section to the query terms that indicate
// the section is relevant.
var categoryHints = map[string][]string{
	"MATERIALS":      {"cement", "steel", "sand", "aggregate", "brick", "paint", "acetylene"},
	"LABOUR":         {"labour", "labor", "carpenter", "mason", "fitter", "worker"},
	"TRANSPORTATION": {"transport", "carting", "handling"},
	"PIPES":          {"pipe", "pipeline", "pvc", "hdpe", "gi", "di"},
}

// CompositeRanker scores every catalog item against a structured query
// interpretation using weighted semantic, keyword, identifier and category
// components.
type CompositeRanker struct {
	embedder embedding.Embedder
	cache    *embedding.Cache
	config   *Config
	logger   *zap.Logger
}

// NewCompositeRanker creates a composite ranker. The embedder and cache
// may be nil, in which case the semantic component contributes zero.
func NewCompositeRanker(embedder embedding.Embedder, cache *embedding.Cache, config *Config, logger *zap.Logger) *CompositeRanker {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompositeRanker{
		embedder: embedder,
		cache:    cache,
		config:   config,
		logger:   logger,
	}
}

// Rank walks the whole catalog, scores every item against the query and
// its interpretation, and either commits to a single high-confidence
// answer or falls back to the top candidates.
func (r *CompositeRanker) Rank(ctx context.Context, queryText string, interp *interpret.Interpretation, snap Snapshot) *CompositeOutcome {
	if interp == nil {
		interp = &interpret.Interpretation{}
	}

	queryVec := r.queryVector(ctx, queryText, snap)

	var results []*CompositeResult
	for _, item := range snap.Store().All() {
		result := &CompositeResult{
			Item:       item,
			Keyword:    r.keywordComponent(interp, item),
			Identifier: r.identifierComponent(interp, item),
			Category:   r.categoryComponent(queryText, item),
		}
		if queryVec != nil {
			if itemVec, ok := snap.Indices().Vector(item.ID); ok {
				result.Semantic = utils.CosineSimilarity(queryVec, itemVec)
			}
		}
		result.Score = r.config.CompositeSemanticWeight*result.Semantic +
			r.config.CompositeKeywordWeight*result.Keyword +
			r.config.CompositeIdentifierWeight*result.Identifier +
			r.config.CompositeCategoryWeight*result.Category
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	outcome := &CompositeOutcome{}
	if len(results) == 0 {
		return outcome
	}
	if results[0].Score > r.config.CompositeHighConfidence {
		outcome.Exact = results[0]
		return outcome
	}
	limit := r.config.CompositeFallbackTopN
	if len(results) < limit {
		limit = len(results)
	}
	outcome.Suggestions = results[:limit]
	return outcome
}

// keywordComponent rewards items mentioning the interpreted material, work
// type and specification values, capped at 1.
func (r *CompositeRanker) keywordComponent(interp *interpret.Interpretation, item *models.CatalogItem) float64 {
	haystack := strings.ToLower(item.Description + " " + item.SearchText)
	score := 0.0
	if interp.Material != "" && strings.Contains(haystack, strings.ToLower(interp.Material)) {
		score += 0.5
	}
	if interp.WorkType != "" && strings.Contains(haystack, strings.ToLower(interp.WorkType)) {
		score += 0.3
	}
	raw := strings.ToLower(item.RawText)
	for _, value := range interp.Specifications {
		if value != "" && strings.Contains(raw, strings.ToLower(value)) {
			score += 0.2
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func (r *CompositeRanker) identifierComponent(interp *interpret.Interpretation, item *models.CatalogItem) float64 {
	if interp.Identifier != "" && interp.Identifier == item.Identifier {
		return 1.0
	}
	return 0.0
}

// categoryComponent rewards items whose section matches a hint term found
// in the query text.
func (r *CompositeRanker) categoryComponent(queryText string, item *models.CatalogItem) float64 {
	hints, ok := categoryHints[strings.ToUpper(item.Category)]
	if !ok {
		return 0.0
	}
	query := strings.ToLower(queryText)
	for _, hint := range hints {
		if strings.Contains(query, hint) {
			return 1.0
		}
	}
	return 0.0
}

func (r *CompositeRanker) queryVector(ctx context.Context, queryText string, snap Snapshot) []float32 {
	if r.embedder == nil || queryText == "" || !snap.Indices().HasVectors() {
		return nil
	}
	if r.cache != nil {
		if vec, ok := r.cache.Get(queryText); ok {
			return vec
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.CapabilityTimeout)
	defer cancel()

	vec, err := r.embedder.EmbedText(ctx, queryText)
	if err != nil {
		r.logger.Warn("query embedding failed, semantic component disabled",
			zap.String("query", utils.Truncate(queryText, 80)),
			zap.Error(err))
		return nil
	}
	utils.NormalizeL2(vec)
	if r.cache != nil {
		r.cache.Set(queryText, vec)
	}
	return vec
}
