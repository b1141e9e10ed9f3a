// Package embedding defines the text embedding capability and local
// implementations of it.
package embedding

import (
	"context"
	"errors"
)

// ErrEmptyResult is returned when the embedding backend responds without
// vectors.
var ErrEmptyResult = errors.New("embedder returned no vectors")

// Embedder produces vector embeddings for text. Implementations must be
// safe for concurrent use and deterministic for a given text.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)
	// EmbedTexts generates embeddings for multiple texts in a batch, in
	// input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	// Dimensions returns the embedding dimension.
	Dimensions() int
}
