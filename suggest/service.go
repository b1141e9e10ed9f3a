// Package suggest provides the main multi-signal suggestion service.
package suggest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/mitsumori/catalog"
	"github.com/hyperjump/mitsumori/config"
	"github.com/hyperjump/mitsumori/embedding"
	"github.com/hyperjump/mitsumori/fuzzy"
	"github.com/hyperjump/mitsumori/index"
	"github.com/hyperjump/mitsumori/interpret"
	"github.com/hyperjump/mitsumori/models"
	"github.com/hyperjump/mitsumori/ranking"
)

// minQueryLen is the shortest query worth running the scorers for.
const minQueryLen = 2

// Service runs multi-signal suggestion queries over a loaded catalog.
type Service struct {
	scorers   []ranking.Scorer
	ranker    *ranking.Ranker
	composite *ranking.CompositeRanker
	builder   *index.Builder
	interp    interpret.Interpreter
	config    *ranking.Config
	logger    *zap.Logger

	snapshot atomic.Pointer[Snapshot]
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithInterpreter sets the query interpretation strategy used by
// catalog-wide ranking.
func WithInterpreter(interp interpret.Interpreter) Option {
	return func(s *Service) {
		s.interp = interp
	}
}

// NewService wires the scorers, ranker and index builder from the given
// configuration. The embedder may be nil to disable the semantic signal,
// and the ratio capability may be nil to disable the fuzzy signal.
func NewService(cfg *config.Config, embedder embedding.Embedder, ratio fuzzy.Ratio, opts ...Option) *Service {
	if cfg == nil {
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
	}
	rc := cfg.RankingConfig()

	s := &Service{
		ranker: ranking.NewRanker(rc),
		interp: interpret.NewRules(),
		config: rc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var cache *embedding.Cache
	if embedder != nil {
		cache = embedding.NewCache(cfg.Embedding.CacheSize)
	}

	// Scorer order is fixed. The ranker keeps the best score per item,
	// so order only breaks ties between equal scores.
	s.scorers = []ranking.Scorer{
		ranking.NewIdentifierScorer(),
		ranking.NewKeywordScorer(rc),
		ranking.NewFuzzyScorer(ratio, rc),
		ranking.NewPartialScorer(rc),
		ranking.NewSemanticScorer(embedder, cache, rc, s.logger),
	}
	s.composite = ranking.NewCompositeRanker(embedder, cache, rc, s.logger)

	builderOpts := []index.BuilderOption{index.WithLogger(s.logger)}
	if embedder != nil {
		builderOpts = append(builderOpts, index.WithEmbedder(embedder))
	}
	if cfg.Suggest.PoolSize > 0 {
		builderOpts = append(builderOpts, index.WithPoolSize(cfg.Suggest.PoolSize))
	}
	if cfg.Suggest.BatchSize > 0 {
		builderOpts = append(builderOpts, index.WithBatchSize(cfg.Suggest.BatchSize))
	}
	builderOpts = append(builderOpts, index.WithEmbedTimeout(rc.CapabilityTimeout))
	s.builder = index.NewBuilder(builderOpts...)

	return s
}

// Load builds a catalog store and its indices from raw line items and
// atomically swaps it in as the active snapshot. Rows without a
// description are skipped and counted, not treated as errors.
func (s *Service) Load(ctx context.Context, raws []models.RawItem) error {
	start := time.Now()
	items, skipped := catalog.BuildItems(raws)
	if skipped > 0 {
		s.logger.Info("skipped rows without description", zap.Int("skipped", skipped))
	}

	store, err := catalog.NewStore(items)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	indices, err := s.builder.Build(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to build indices: %w", err)
	}

	snap := newSnapshot(store, indices)
	s.snapshot.Store(snap)
	s.logger.Info("catalog loaded",
		zap.String("snapshot_id", snap.ID()),
		zap.Int("items", store.Len()),
		zap.Int("categories", len(indices.Categories())),
		zap.Bool("vectors", indices.HasVectors()),
		zap.Duration("took", time.Since(start)))
	return nil
}

// GetSuggestions runs every scorer against the query concurrently and
// merges the results. Queries shorter than two characters return an empty
// list without touching the scorers.
func (s *Service) GetSuggestions(ctx context.Context, queryText string, maxResults int) ([]*models.SearchSuggestion, error) {
	return s.suggest(ctx, queryText, "", maxResults)
}

// GetSuggestionsWithHint is GetSuggestions with a pre-extracted identifier,
// typically taken from a query interpretation. The hint is tried before
// identifier patterns are matched against the raw text.
func (s *Service) GetSuggestionsWithHint(ctx context.Context, queryText string, interp *interpret.Interpretation, maxResults int) ([]*models.SearchSuggestion, error) {
	hint := ""
	if interp != nil {
		hint = interp.Identifier
	}
	return s.suggest(ctx, queryText, hint, maxResults)
}

func (s *Service) suggest(ctx context.Context, queryText, identifierHint string, maxResults int) ([]*models.SearchSuggestion, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}

	query := ranking.NewQuery(queryText)
	if len(query.Text) < minQueryLen {
		return []*models.SearchSuggestion{}, nil
	}
	if identifierHint != "" {
		query = query.WithIdentifierHint(identifierHint)
	}

	start := time.Now()
	batches := make([][]*models.SearchSuggestion, len(s.scorers))
	var wg sync.WaitGroup
	for i, scorer := range s.scorers {
		wg.Add(1)
		go func(i int, scorer ranking.Scorer) {
			defer wg.Done()
			batches[i] = scorer.Score(ctx, query, snap)
		}(i, scorer)
	}
	wg.Wait()

	results := s.ranker.Rank(batches, maxResults)
	s.logger.Debug("suggestions ranked",
		zap.String("query", query.Text),
		zap.Int("results", len(results)),
		zap.Duration("took", time.Since(start)))
	return results, nil
}

// RankCatalog interprets the query and scores the entire catalog with the
// weighted composite ranker, committing to a single answer only when the
// best score is high enough.
func (s *Service) RankCatalog(ctx context.Context, queryText string) (*ranking.CompositeOutcome, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}

	queryText = strings.TrimSpace(queryText)
	interp, err := s.interp.Interpret(ctx, queryText)
	if err != nil {
		s.logger.Warn("query interpretation failed", zap.Error(err))
		interp = &interpret.Interpretation{}
	}
	return s.composite.Rank(ctx, queryText, interp, snap), nil
}

// GetItemDetails returns the full catalog item for an ID.
func (s *Service) GetItemDetails(id string) (*models.CatalogItem, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.Store().Get(id)
}

// SearchByFilters returns every item matching the structured filters, in
// catalog order.
func (s *Service) SearchByFilters(filters models.SearchFilters) ([]*models.CatalogItem, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.Store().Filter(filters.Matches), nil
}

// GetAllCategories returns the catalog sections in first-seen order.
func (s *Service) GetAllCategories() ([]string, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.Indices().Categories(), nil
}

// Snapshot returns the active snapshot, or nil when nothing is loaded.
func (s *Service) Snapshot() *Snapshot {
	return s.snapshot.Load()
}
