package interpret

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"

	"github.com/hyperjump/mitsumori/pkg/utils"
)

const llmSystemPrompt = `You extract structured fields from catalog price queries.
Return a JSON object with these keys:
- material: main material or item asked about (string, may be empty)
- work_type: type of work if mentioned (string, may be empty)
- specifications: object of spec name to value, e.g. {"size": "20mm"}
- identifier: item/serial number if mentioned (string, may be empty)
- period: "current" or "prior"
- intent: what the user wants (rate/price/cost/information)
Be precise and extract the exact terms used.`

// LLM is a model-backed interpreter against an OpenAI-compatible chat API.
// On malformed model output it falls back to the rule-based interpreter
// rather than failing the query.
type LLM struct {
	client   llms.Model
	fallback Rules
	logger   *zap.Logger
}

// LLMOption configures an LLM interpreter.
type LLMOption func(*LLM)

// WithLogger sets a logger for model failures.
func WithLogger(l *zap.Logger) LLMOption {
	return func(i *LLM) {
		if l != nil {
			i.logger = l
		}
	}
}

// NewLLM creates a model-backed interpreter. Pass token "none" for local
// OpenAI-compatible services without authentication.
func NewLLM(baseURL, model, token string, opts ...LLMOption) (*LLM, error) {
	if token == "" {
		token = "none"
	}
	client, err := openai.New(
		openai.WithBaseURL(baseURL),
		openai.WithToken(token),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	i := &LLM{
		client:   client,
		fallback: NewRules(),
		logger:   utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Interpret asks the model for a structured reading of the query and falls
// back to rule-based interpretation when the model is unavailable or
// returns malformed JSON.
func (i *LLM) Interpret(ctx context.Context, query string) (*Interpretation, error) {
	content := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(llmSystemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(query)},
		},
	}

	response, err := i.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		i.logger.Warn("query interpretation model failed; using rules", zap.Error(err))
		return i.fallback.Interpret(ctx, query)
	}
	if len(response.Choices) == 0 {
		return i.fallback.Interpret(ctx, query)
	}

	text := strings.TrimSpace(response.Choices[0].Content)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var result Interpretation
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		i.logger.Warn("query interpretation returned malformed JSON; using rules", zap.Error(err))
		return i.fallback.Interpret(ctx, query)
	}
	if result.Period != PeriodPrior {
		result.Period = PeriodCurrent
	}
	if result.Intent == "" {
		result.Intent = "rate"
	}
	if result.Specifications == nil {
		result.Specifications = make(map[string]string)
	}
	return &result, nil
}
