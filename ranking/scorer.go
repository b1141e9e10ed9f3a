package ranking

import (
	"context"
	"strings"

	"github.com/hyperjump/mitsumori/catalog"
	"github.com/hyperjump/mitsumori/index"
	"github.com/hyperjump/mitsumori/models"
)

// Snapshot gives scorers read-only access to one frozen catalog and its
// indices. Nothing behind this interface mutates after construction, so
// scorers may run concurrently without locking.
type Snapshot interface {
	Store() *catalog.Store
	Indices() *index.Indices
}

// Query is the preprocessed form of a free-text lookup shared by all
// scorers for one request.
type Query struct {
	// Text is the trimmed, lowercased query.
	Text string
	// Words are the whitespace-separated words of Text.
	Words []string
	// IdentifierHint is an optional pre-parsed item identifier from an
	// external query interpreter; when set, the exact-identifier scorer
	// tries it before its own query shapes.
	IdentifierHint string
}

// NewQuery normalizes raw query text into a Query.
func NewQuery(raw string) *Query {
	text := strings.ToLower(strings.TrimSpace(raw))
	return &Query{
		Text:  text,
		Words: strings.Fields(text),
	}
}

// WithIdentifierHint returns a copy of q carrying the given identifier hint.
func (q *Query) WithIdentifierHint(identifier string) *Query {
	clone := *q
	clone.IdentifierHint = identifier
	return &clone
}

// Scorer is one independent relevance signal. Score is a pure function of
// its inputs: it reads the snapshot, never mutates shared state, and
// returns zero or more scored candidates. A scorer whose external
// dependency fails returns no candidates instead of an error; the query
// proceeds on the remaining signals.
type Scorer interface {
	Score(ctx context.Context, query *Query, snap Snapshot) []*models.SearchSuggestion
	// Name identifies the scorer in logs.
	Name() string
}
