// Package interpret extracts structured fields from free-text queries.
// Interpretation is optional enrichment: the scorers work on raw query text,
// but an interpretation drives the composite ranking mode and can
// short-circuit identifier lookups.
package interpret

import "context"

// Period selects which price column a query refers to.
const (
	// PeriodCurrent refers to the current-period price field.
	PeriodCurrent = "current"
	// PeriodPrior refers to the prior-period price field.
	PeriodPrior = "prior"
)

// Interpretation is the structured reading of a free-text query.
type Interpretation struct {
	Material       string            `json:"material,omitempty"`
	WorkType       string            `json:"work_type,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Identifier     string            `json:"identifier,omitempty"`
	Period         string            `json:"period"`
	Intent         string            `json:"intent"`
}

// Interpreter turns a free-text query into an Interpretation.
// Implementations must be safe for concurrent use.
type Interpreter interface {
	Interpret(ctx context.Context, query string) (*Interpretation, error)
}
