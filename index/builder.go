package index

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/hyperjump/mitsumori/catalog"
	"github.com/hyperjump/mitsumori/embedding"
	"github.com/hyperjump/mitsumori/models"
	"github.com/hyperjump/mitsumori/pkg/utils"
)

// Builder performs the one-shot indexing pass over a catalog. Building is
// the only place that inspects category and identifier metadata; everything
// downstream reads the frozen indices.
type Builder struct {
	embedder  embedding.Embedder
	poolSize  int
	batchSize int
	timeout   time.Duration
	logger    *zap.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithEmbedder sets the embedding capability used to precompute item
// vectors. Without an embedder the semantic signal is disabled.
func WithEmbedder(e embedding.Embedder) BuilderOption {
	return func(b *Builder) { b.embedder = e }
}

// WithPoolSize sets the worker pool size for embedding precompute.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BuilderOption {
	return func(b *Builder) {
		if size >= 1 {
			b.poolSize = size
		}
	}
}

// WithBatchSize sets how many items are embedded per batch call.
func WithBatchSize(size int) BuilderOption {
	return func(b *Builder) {
		if size >= 1 {
			b.batchSize = size
		}
	}
}

// WithEmbedTimeout sets the per-call timeout for the embedding capability.
func WithEmbedTimeout(d time.Duration) BuilderOption {
	return func(b *Builder) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// WithLogger sets a logger for build progress and degradation warnings.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates a builder with the given options.
func NewBuilder(opts ...BuilderOption) *Builder {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	b := &Builder{
		poolSize:  poolSize,
		batchSize: 32,
		timeout:   5 * time.Second,
		logger:    utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs a single pass over the store and returns the frozen indices.
// An embedding failure degrades the semantic signal (missing vectors) but
// never fails the build.
func (b *Builder) Build(ctx context.Context, store *catalog.Store) (*Indices, error) {
	items := store.All()

	x := &Indices{
		keyword:    make(map[string][]string),
		ngram:      make(map[string][]string),
		identifier: make(map[string]string),
		byCategory: make(map[string][]string),
		vectors:    make(map[string][]float32),
	}

	seenCategory := make(map[string]struct{})
	collided := make(map[string]struct{})
	keywordSeen := make(map[string]map[string]struct{})
	ngramSeen := make(map[string]map[string]struct{})

	for _, item := range items {
		// Category index preserves first-seen category order.
		if _, ok := seenCategory[item.Category]; !ok {
			seenCategory[item.Category] = struct{}{}
			x.categories = append(x.categories, item.Category)
		}
		x.byCategory[item.Category] = append(x.byCategory[item.Category], item.ID)

		// Identifier index: last write wins, collisions flagged.
		if item.Identifier != "" {
			if prev, exists := x.identifier[item.Identifier]; exists && prev != item.ID {
				if _, flagged := collided[item.Identifier]; !flagged {
					collided[item.Identifier] = struct{}{}
					x.ambiguous = append(x.ambiguous, item.Identifier)
				}
			}
			x.identifier[item.Identifier] = item.ID
		}

		// Keyword index over the item's generated keyword set.
		for _, kw := range item.Keywords {
			if len(kw) < minTokenLen {
				continue
			}
			addPosting(x.keyword, keywordSeen, kw, item.ID)
		}

		// N-gram index over description plus keywords.
		tokens := Tokenize(item.Description + " " + strings.Join(item.Keywords, " "))
		for _, phrase := range Ngrams(tokens) {
			addPosting(x.ngram, ngramSeen, phrase, item.ID)
		}
	}

	x.ngramKeys = make([]string, 0, len(x.ngram))
	for phrase := range x.ngram {
		x.ngramKeys = append(x.ngramKeys, phrase)
	}
	sort.Strings(x.ngramKeys)

	if len(x.ambiguous) > 0 {
		b.logger.Warn("identifier collisions during indexing; last write wins",
			zap.Int("count", len(x.ambiguous)),
			zap.Strings("identifiers", x.ambiguous))
	}

	if b.embedder != nil {
		b.embedItems(ctx, items, x)
	}

	b.logger.Info("indices built",
		zap.Int("items", len(items)),
		zap.Int("keywords", len(x.keyword)),
		zap.Int("ngrams", len(x.ngram)),
		zap.Int("categories", len(x.categories)),
		zap.Int("vectors", len(x.vectors)))

	return x, nil
}

// addPosting appends id to the posting list for key, skipping duplicates.
// Posting lists stay in catalog insertion order.
func addPosting(postings map[string][]string, seen map[string]map[string]struct{}, key, id string) {
	ids := seen[key]
	if ids == nil {
		ids = make(map[string]struct{})
		seen[key] = ids
	}
	if _, dup := ids[id]; dup {
		return
	}
	ids[id] = struct{}{}
	postings[key] = append(postings[key], id)
}

// embedItems precomputes one vector per item on a worker pool. Failed
// batches leave their vectors missing; the semantic scorer skips items
// without vectors.
func (b *Builder) embedItems(ctx context.Context, items []*models.CatalogItem, x *Indices) {
	pool, err := ants.NewPool(b.poolSize)
	if err != nil {
		b.logger.Warn("embedding pool unavailable; semantic scoring disabled", zap.Error(err))
		return
	}
	defer pool.Release()

	vectors := make([][]float32, len(items))
	var wg sync.WaitGroup
	var failures atomic.Int64

	for start := 0; start < len(items); start += b.batchSize {
		end := start + b.batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]
		offset := start

		wg.Add(1)
		task := func() {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			texts := make([]string, len(batch))
			for i, item := range batch {
				texts[i] = item.SearchText
			}
			embs, err := b.embedder.EmbedTexts(callCtx, texts)
			if err != nil || len(embs) != len(batch) {
				failures.Add(1)
				b.logger.Warn("embedding batch failed",
					zap.Int("offset", offset), zap.Int("size", len(batch)), zap.Error(err))
				return
			}
			for i, emb := range embs {
				utils.NormalizeL2(emb)
				vectors[offset+i] = emb
			}
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			failures.Add(1)
			b.logger.Warn("embedding task rejected", zap.Error(err))
		}
	}
	wg.Wait()

	for i, vec := range vectors {
		if vec != nil {
			x.vectors[items[i].ID] = vec
			x.dimensions = len(vec)
		}
	}
	if n := failures.Load(); n > 0 {
		b.logger.Warn("semantic signal degraded: some item embeddings missing",
			zap.Int64("failed_batches", n),
			zap.Int("embedded", len(x.vectors)),
			zap.Int("items", len(items)))
	}
}
