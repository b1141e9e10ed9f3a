// Package openai implements the embedding capability against any
// OpenAI-compatible embedding API.
package openai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"github.com/hyperjump/mitsumori/embedding"
	"github.com/hyperjump/mitsumori/pkg/utils"
)

// Embedder implements embedding.Embedder using an OpenAI-compatible API
// via langchaingo.
type Embedder struct {
	embedder   embeddings.Embedder
	dimensions int
	logger     *zap.Logger
}

// Option configures an Embedder.
type Option func(*Embedder)

// WithLogger sets a logger for request failures.
func WithLogger(l *zap.Logger) Option {
	return func(e *Embedder) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEmbedder creates an embedder against the given base URL and model.
// Pass token "none" for local OpenAI-compatible services without
// authentication. dimensions must match the model's output dimension.
func NewEmbedder(baseURL, model, token string, dimensions int, opts ...Option) (*Embedder, error) {
	if dimensions <= 0 {
		return nil, fmt.Errorf("embedding dimensions must be positive, got %d", dimensions)
	}
	if token == "" {
		token = "none"
	}
	client, err := openai.New(
		openai.WithBaseURL(baseURL),
		openai.WithToken(token),
		openai.WithEmbeddingModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}
	e := &Embedder{
		embedder:   embedder,
		dimensions: dimensions,
		logger:     utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// EmbedText generates an embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	embs, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		e.logger.Warn("embedding request failed", zap.Error(err))
		return nil, err
	}
	if len(embs) == 0 {
		return nil, embedding.ErrEmptyResult
	}
	return embs[0], nil
}

// EmbedTexts generates embeddings for multiple texts in a batch.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	embs, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Warn("batch embedding request failed", zap.Int("count", len(texts)), zap.Error(err))
		return nil, err
	}
	if len(embs) != len(texts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d texts", embedding.ErrEmptyResult, len(embs), len(texts))
	}
	return embs, nil
}

// Dimensions returns the configured embedding dimension.
func (e *Embedder) Dimensions() int {
	return e.dimensions
}
